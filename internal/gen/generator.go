package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"github.com/sirupsen/logrus"

	"transformer-generator/internal/schema"
)

// DefaultFileSuffix is appended to the canonical union name to form the
// generated file name.
const DefaultFileSuffix = "_transform.go"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName overrides the package clause of generated files.
	// Empty means the package the union was declared in.
	PackageName string
	// OutputDir is where unformatted sources are dumped when formatting fails.
	OutputDir string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
	// FileSuffix is appended to the canonical union name.
	FileSuffix string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		GenerateComments: true,
		FileSuffix:       DefaultFileSuffix,
	}
}

// Generator emits the dispatcher and transformer interface of unions.
type Generator struct {
	config GeneratorConfig
	log    *logrus.Entry
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.FileSuffix == "" {
		config.FileSuffix = DefaultFileSuffix
	}

	return &Generator{
		config: config,
		log:    logrus.WithField("component", "gen"),
	}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "expr_transform.go").
	Filename string
	// Union is the name of the union the file was generated for.
	Union string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate generates one file per union. The unions are written into one
// package, so they are checked against each other first; nothing is
// generated if any two of them collide.
func (g *Generator) Generate(unions []*schema.Union) ([]GeneratedFile, error) {
	if err := schema.CheckPackage(unions); err != nil {
		return nil, err
	}

	files := make([]GeneratedFile, 0, len(unions))

	for _, u := range unions {
		file, err := g.generateUnion(u)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", u.Name(), err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// filename returns the generated file name for u.
func (g *Generator) filename(u *schema.Union) string {
	return u.Canonical() + g.config.FileSuffix
}

func (g *Generator) generateUnion(u *schema.Union) (*GeneratedFile, error) {
	data := g.buildTemplateData(u)

	g.log.WithFields(logrus.Fields{
		"union":    u.Name(),
		"variants": u.Len(),
		"file":     data.Filename,
	}).Debug("generating union")

	var buf bytes.Buffer
	if err := unionTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.OutputDir != "" {
			if dErr := writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes()); dErr != nil {
				g.log.WithError(dErr).Warn("could not write unformatted source")
			}
		}

		return &GeneratedFile{
			Filename: data.Filename,
			Union:    u.Name(),
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Union:    u.Name(),
		Content:  formatted,
	}, nil
}

var unionTemplate = template.Must(template.New("union").Parse(`// Code generated by transformer-generator. DO NOT EDIT.

package {{.PackageName}}
{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
{{if .GenerateComments}}// {{.Union}} is a tagged union with variants {{.VariantList}}.
{{end}}type {{.Union}} interface {
	{{.Marker}}()
{{if .GenerateComments}}	// Transform dispatches the value to the matching hook of t.
{{end}}	Transform(t {{.Transformer}}) {{.Union}}
}
{{range .Variants}}
{{if $.GenerateComments}}// {{.Name}} is the {{.Name}} variant of {{$.Union}}.
{{end}}type {{.Name}} struct{{if .Fields}} {
{{range .Fields}}	{{.Name}} {{.Type}}
{{end}}}{{else}}{}{{end}}

func ({{.Name}}) {{$.Marker}}() {}

{{if $.GenerateComments}}// Transform calls t.{{.TransformHook}} with the payload of v.
{{end}}func (v {{.Name}}) Transform(t {{$.Transformer}}) {{$.Union}} {
	{{$.Bind}}(t)
	return t.{{.TransformHook}}({{.FieldArgs}})
}
{{end}}
{{if .GenerateComments}}// {{.Transformer}} has a Visit and a Transform hook per variant of {{.Union}}.
// Embed {{.Base}} to get the identity behavior and override
// only the hooks you need.
{{end}}type {{.Transformer}} interface {
{{range .Variants}}	{{.VisitHook}}({{.Params}})
	{{.TransformHook}}({{.Params}}) {{$.Union}}
{{end}}}

{{if .GenerateComments}}// {{.Base}} is the identity {{.Transformer}}. Its Transform hooks
// call the Visit hook of the outermost transformer, then rebuild the value
// unchanged.
{{end}}type {{.Base}} struct {
	self {{.Transformer}}
}

func ({{.Recv}} *{{.Base}}) {{.Bind}}(t {{.Transformer}}) { {{.Recv}}.self = t }

func ({{.Recv}} *{{.Base}}) outer() {{.Transformer}} {
	if {{.Recv}}.self != nil {
		return {{.Recv}}.self
	}

	return {{.Recv}}
}
{{range .Variants}}
{{if $.GenerateComments}}// {{.VisitHook}} does nothing.
{{end}}func ({{$.Recv}} *{{$.Base}}) {{.VisitHook}}({{.Params}}) {}

{{if $.GenerateComments}}// {{.TransformHook}} calls {{.VisitHook}} and returns the value unchanged.
{{end}}func ({{$.Recv}} *{{$.Base}}) {{.TransformHook}}({{.Params}}) {{$.Union}} {
	{{$.Recv}}.outer().{{.VisitHook}}({{.Args}})

	return {{.Literal}}
}
{{end}}
func {{.Bind}}(t {{.Transformer}}) {
	if b, ok := t.(interface{ {{.Bind}}({{.Transformer}}) }); ok {
		b.{{.Bind}}(t)
	}
}

var (
{{range .Variants}}	_ {{$.Union}} = {{.Name}}{}
{{end}}	_ {{.Transformer}} = (*{{.Base}})(nil)
)
`))
