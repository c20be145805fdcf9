package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"golang.org/x/tools/go/packages"

	"transformer-generator/internal/common"
	"transformer-generator/internal/diagnostic"
	"transformer-generator/internal/match"
	"transformer-generator/internal/schema"
)

// LoadMode specifies what information to load from packages.
// Types are not needed: declarations are read from syntax alone.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax

// DefaultDirective marks a struct as a tagged-union declaration.
const DefaultDirective = "transform:union"

// declSuffix is trimmed from a declaration name to derive the union name.
const declSuffix = "Decl"

// Options configures an Analyzer.
type Options struct {
	// Directive is the comment marker, without the leading "//".
	Directive string
	// Schema is passed through to schema.NewUnion.
	Schema schema.Options
	// Types restricts extraction to the named unions. Empty means all.
	Types []string
	// Dir is the working directory for package patterns.
	Dir string
}

// Analyzer loads Go packages and extracts union declarations.
type Analyzer struct {
	opts  Options
	graph *UnionGraph
	log   *logrus.Entry
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts Options) *Analyzer {
	if opts.Directive == "" {
		opts.Directive = DefaultDirective
	}

	return &Analyzer{
		opts:  opts,
		graph: NewUnionGraph(),
		log:   logrus.WithField("component", "analyze"),
	}
}

// LoadPackages loads the specified packages and extracts their unions.
// Patterns are standard Go package patterns (e.g., "./ast", "./...").
//
// Every declaration is checked. If any is rejected, the returned graph
// carries the diagnostics but no unions, and the error joins the failures.
func (a *Analyzer) LoadPackages(patterns ...string) (*UnionGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.opts.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	// Process each package
	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	a.filterTypes()

	if a.graph.Diagnostics.HasErrors() {
		a.graph.Unions = make(map[UnionID]*UnionInfo)
		for _, p := range a.graph.Packages {
			p.Unions = nil
		}

		return a.graph, a.graph.Diagnostics.Error()
	}

	return a.graph, nil
}

// processPackage extracts union declarations from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	if len(pkg.GoFiles) > 0 {
		pkgInfo.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	log := a.log.WithField("package", pkg.PkgPath)

	var (
		unions []*schema.Union
		marked int
	)

	for _, file := range pkg.Syntax {
		imports := fileImports(file)

		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, spec := range gen.Specs {
				ts := spec.(*ast.TypeSpec)

				name, ok := a.directive(ts.Doc, gen.Doc, len(gen.Specs) == 1)
				if !ok {
					continue
				}

				marked++
				pos := pkg.Fset.Position(ts.Pos())

				u, err := a.extract(pkg.Name, ts, name, imports)
				if err != nil {
					log.WithField("decl", ts.Name.Name).Debugf("rejected: %v", err)
					a.graph.Diagnostics.Report(err, pos.String())

					continue
				}

				id := UnionID{PkgPath: pkg.PkgPath, Name: u.Name()}
				a.graph.Unions[id] = &UnionInfo{
					ID:     id,
					Schema: u,
					Decl:   ts.Name.Name,
					Pos:    pos,
				}
				pkgInfo.Unions = append(pkgInfo.Unions, id)
				unions = append(unions, u)

				log.WithFields(logrus.Fields{
					"union":    u.Name(),
					"variants": u.Len(),
				}).Debug("union declaration found")

				if logrus.IsLevelEnabled(logrus.TraceLevel) {
					log.Trace(spew.Sdump(u))
				}
			}
		}
	}

	if err := schema.CheckPackage(unions); err != nil {
		a.graph.Diagnostics.Report(err, pkg.PkgPath)
	}

	if marked == 0 {
		a.graph.Diagnostics.AddWarning(diagnostic.CodeNoUnions,
			fmt.Sprintf("package %s has no //%s declarations", pkg.PkgPath, a.opts.Directive), "", "")
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo
}

// directive looks for the union marker in the spec's own doc comment, or
// in the declaration's doc comment when the declaration holds one spec.
// It returns the directive argument, if any.
func (a *Analyzer) directive(specDoc, declDoc *ast.CommentGroup, single bool) (string, bool) {
	groups := []*ast.CommentGroup{specDoc}
	if single {
		groups = append(groups, declDoc)
	}

	marker := "//" + a.opts.Directive

	for _, g := range groups {
		if g == nil {
			continue
		}

		for _, c := range g.List {
			rest, ok := strings.CutPrefix(c.Text, marker)
			if !ok {
				continue
			}

			// "//transform:unionish" is a different directive.
			if rest != "" && !unicode.IsSpace(rune(rest[0])) {
				continue
			}

			arg, _ := common.First(strings.Fields(rest))

			return arg, true
		}
	}

	return "", false
}

// extract turns one marked type spec into a validated union.
func (a *Analyzer) extract(pkgName string, ts *ast.TypeSpec, name string, imports []schema.Import) (*schema.Union, error) {
	decl := ts.Name.Name
	if name == "" {
		name = unionName(decl)
	}

	if name == decl {
		return nil, &schema.ShapeError{
			Union:  decl,
			Reason: "union name must differ from its declaration; name it in the directive",
		}
	}

	if ts.TypeParams != nil && len(ts.TypeParams.List) > 0 {
		return nil, &schema.ShapeError{Union: name, Reason: "generic declarations are not supported"}
	}

	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		return nil, &schema.ShapeError{
			Union:  name,
			Reason: fmt.Sprintf("declaration %s must be a struct listing variants, got %s", decl, describe(ts.Type)),
		}
	}

	rename := map[string]string{decl: name}

	var variants []schema.Variant

	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			return nil, &schema.VariantShapeError{
				Union:   name,
				Variant: types.ExprString(field.Type),
				Err:     schema.ErrEmbedded,
			}
		}

		for _, ident := range field.Names {
			payload, err := fieldPayload(field.Type, rename)
			if err != nil {
				return nil, &schema.VariantShapeError{Union: name, Variant: ident.Name, Err: err}
			}

			variants = append(variants, schema.NewVariant(ident.Name, payload...))
		}
	}

	return schema.NewUnion(pkgName, name, variants, a.opts.Schema, imports...)
}

// fieldPayload reads the payload of one variant field. A func type lists
// the payload as its parameters; any other type is a single element.
func fieldPayload(expr ast.Expr, rename map[string]string) ([]schema.PayloadType, error) {
	fn, ok := expr.(*ast.FuncType)
	if !ok {
		p, err := schema.ParsePayload(expr, rename)
		if err != nil {
			return nil, err
		}

		return []schema.PayloadType{p}, nil
	}

	if fn.TypeParams != nil && len(fn.TypeParams.List) > 0 {
		return nil, schema.ErrUnsupportedSyntax
	}

	if fn.Results != nil && len(fn.Results.List) > 0 {
		return nil, schema.ErrResults
	}

	var payload []schema.PayloadType

	for _, param := range fn.Params.List {
		if len(param.Names) > 0 {
			return nil, schema.ErrNamedFields
		}

		if _, variadic := param.Type.(*ast.Ellipsis); variadic {
			return nil, schema.ErrVariadic
		}

		p, err := schema.ParsePayload(param.Type, rename)
		if err != nil {
			return nil, err
		}

		payload = append(payload, p)
	}

	return payload, nil
}

// unionName derives the union name from a declaration name:
// "exprDecl" -> "Expr".
func unionName(decl string) string {
	base := strings.TrimSuffix(decl, declSuffix)
	if base == "" {
		return decl
	}

	r, size := utf8.DecodeRuneInString(base)

	return string(unicode.ToUpper(r)) + base[size:]
}

// fileImports lists the imports of a file under the qualifier they bind.
func fileImports(file *ast.File) []schema.Import {
	var out []schema.Import

	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		name := common.PkgAlias(path)
		if spec.Name != nil {
			name = spec.Name.Name
		}

		if name == "_" || name == "." {
			continue
		}

		out = append(out, schema.Import{Name: name, Path: path})
	}

	return out
}

func describe(expr ast.Expr) string {
	switch expr.(type) {
	case *ast.InterfaceType:
		return "an interface"
	case *ast.FuncType:
		return "a func type"
	case *ast.Ident, *ast.SelectorExpr:
		return "named type " + types.ExprString(expr)
	default:
		return types.ExprString(expr)
	}
}

// filterTypes narrows the graph to the requested unions. Requested names
// that were not found are errors; unions left out are infos.
func (a *Analyzer) filterTypes() {
	if len(a.opts.Types) == 0 {
		return
	}

	known := a.graph.Names()

	for _, want := range a.opts.Types {
		if slices.Contains(known, want) {
			continue
		}

		a.graph.Diagnostics.AddError(diagnostic.CodeUnknownUnion,
			fmt.Sprintf("no union named %s in the loaded packages", want),
			want, "", match.Suggest(want, known)...)
	}

	for _, name := range known {
		if !slices.Contains(a.opts.Types, name) {
			a.graph.Diagnostics.AddInfo(diagnostic.CodeFiltered, "skipped by type filter", name, "")
		}
	}

	for id := range a.graph.Unions {
		if !slices.Contains(a.opts.Types, id.Name) {
			delete(a.graph.Unions, id)
		}
	}

	for _, pkg := range a.graph.Packages {
		pkg.Unions = slices.DeleteFunc(pkg.Unions, func(id UnionID) bool {
			return !slices.Contains(a.opts.Types, id.Name)
		})
	}
}
