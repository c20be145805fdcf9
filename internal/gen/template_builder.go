package gen

import (
	"fmt"
	"strings"

	"transformer-generator/internal/naming"
	"transformer-generator/internal/schema"
)

// receiverName is the receiver of the generated base methods.
const receiverName = "b"

// templateData holds all data needed for the union template.
type templateData struct {
	PackageName      string
	Filename         string
	Imports          []importSpec
	GenerateComments bool

	Union       string // Union interface name
	Marker      string // Unexported method sealing the union
	Transformer string // Transformer interface name
	Base        string // Embeddable identity transformer
	Bind        string // Binds the outer transformer to its base
	VariantList string // Variant names for the union doc comment
	Variants    []variantData
	Recv        string // Receiver of the base methods
}

// importSpec is one line of the import block.
type importSpec struct {
	Alias string
	Path  string
}

// variantData describes one variant: its struct, its dispatcher and its two hooks.
type variantData struct {
	Name          string
	Fields        []fieldData
	VisitHook     string
	TransformHook string
	Params        string // "expr1 Expr, expr2 Expr"
	Args          string // "expr1, expr2"
	FieldArgs     string // "v.P1, v.P2"
	Literal       string // "Add{P1: expr1, P2: expr2}"
}

// fieldData is one payload field of a variant struct.
type fieldData struct {
	Name string
	Type string
}

// buildTemplateData constructs the template data for one union.
func (g *Generator) buildTemplateData(u *schema.Union) *templateData {
	pkgName := u.Package()
	if g.config.PackageName != "" {
		pkgName = g.config.PackageName
	}

	data := &templateData{
		PackageName:      pkgName,
		Filename:         g.filename(u),
		GenerateComments: g.config.GenerateComments,
		Union:            u.Name(),
		Marker:           "is" + u.Name(),
		Transformer:      u.TransformerName(),
		Base:             u.BaseName(),
		Bind:             u.BindName(),
		Recv:             receiverName,
	}

	for _, imp := range u.Imports() {
		spec := importSpec{Path: imp.Path}
		if imp.NeedsAlias() {
			spec.Alias = imp.Name
		}

		data.Imports = append(data.Imports, spec)
	}

	reserved := reservedNames(u)

	names := make([]string, 0, u.Len())
	for _, v := range u.Variants() {
		names = append(names, v.Name())
		data.Variants = append(data.Variants, buildVariantData(v, reserved))
	}

	data.VariantList = strings.Join(names, ", ")

	return data
}

// reservedNames lists identifiers a hook parameter must not shadow.
func reservedNames(u *schema.Union) []string {
	reserved := []string{receiverName, u.Name()}

	for _, v := range u.Variants() {
		reserved = append(reserved, v.Name())
	}

	for _, imp := range u.Imports() {
		reserved = append(reserved, imp.Name)
	}

	return reserved
}

func buildVariantData(v schema.Variant, reserved []string) variantData {
	payload := v.Payload()
	hook := v.Hook()

	bases := make([]string, len(payload))
	for i, p := range payload {
		bases[i] = p.Base
	}

	params := naming.Params(bases, reserved...)

	vd := variantData{
		Name:          v.Name(),
		VisitHook:     "Visit" + hook,
		TransformHook: "Transform" + hook,
	}

	var (
		paramList []string
		fieldArgs []string
		inits     []string
	)

	for i, p := range payload {
		field := fieldName(i)

		vd.Fields = append(vd.Fields, fieldData{Name: field, Type: p.Expr})
		paramList = append(paramList, params[i]+" "+p.Expr)
		fieldArgs = append(fieldArgs, "v."+field)
		inits = append(inits, field+": "+params[i])
	}

	vd.Params = strings.Join(paramList, ", ")
	vd.Args = strings.Join(params, ", ")
	vd.FieldArgs = strings.Join(fieldArgs, ", ")
	vd.Literal = v.Name() + "{" + strings.Join(inits, ", ") + "}"

	return vd
}

// fieldName names the i-th payload field of a variant struct.
func fieldName(i int) string {
	return fmt.Sprintf("P%d", i+1)
}
