package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payload(t *testing.T, srcs ...string) []PayloadType {
	t.Helper()

	out := make([]PayloadType, 0, len(srcs))

	for _, src := range srcs {
		p, err := ParsePayloadString(src, nil)
		require.NoError(t, err)

		out = append(out, p)
	}

	return out
}

func exprVariants(t *testing.T) []Variant {
	t.Helper()

	return []Variant{
		NewVariant("Add", payload(t, "Expr", "Expr")...),
		NewVariant("AtomExpr", payload(t, "int")...),
	}
}

func TestNewUnion(t *testing.T) {
	u, err := NewUnion("expr", "Expr", exprVariants(t), Options{})
	require.NoError(t, err)

	assert.Equal(t, "expr", u.Package())
	assert.Equal(t, "Expr", u.Name())
	assert.Equal(t, "expr", u.Canonical())
	assert.Equal(t, "ExprTransformer", u.TransformerName())
	assert.Equal(t, "ExprTransformerBase", u.BaseName())
	assert.Equal(t, "bindExprTransformer", u.BindName())
	assert.Equal(t, 2, u.Len())

	variants := u.Variants()
	require.Len(t, variants, 2)
	assert.Equal(t, "Add", variants[0].Name())
	assert.Equal(t, "add", variants[0].Canonical())
	assert.Equal(t, 2, variants[0].Arity())
	assert.Equal(t, "atom_expr", variants[1].Canonical())
	assert.Equal(t, "AtomExpr", variants[1].Hook())
	assert.Equal(t, "BinOp", NewVariant("bin_op").Hook())

	v, ok := u.Variant("AtomExpr")
	require.True(t, ok)
	assert.Equal(t, "int", v.Payload()[0].Expr)

	_, ok = u.Variant("Missing")
	assert.False(t, ok)
}

func TestNewUnion_Immutable(t *testing.T) {
	variants := exprVariants(t)
	u, err := NewUnion("expr", "Expr", variants, Options{})
	require.NoError(t, err)

	variants[0] = NewVariant("Changed")
	got := u.Variants()
	got[1] = NewVariant("AlsoChanged")

	p := u.Variants()[0].Payload()
	p[0].Expr = "mutated"

	assert.Equal(t, "Add", u.Variants()[0].Name())
	assert.Equal(t, "AtomExpr", u.Variants()[1].Name())
	assert.Equal(t, "Expr", u.Variants()[0].Payload()[0].Expr)
}

func TestNewUnion_ZeroPayload(t *testing.T) {
	u, err := NewUnion("p", "Token", []Variant{NewVariant("EOF")}, Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, u.Variants()[0].Arity())
}

func TestNewUnion_ShapeErrors(t *testing.T) {
	_, err := NewUnion("p", "Empty", nil, Options{})

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "Empty", shapeErr.Union)

	_, err = NewUnion("p", "not valid", exprVariants(t), Options{})
	require.ErrorAs(t, err, &shapeErr)
}

func TestNewUnion_VariantShapeErrors(t *testing.T) {
	tests := []struct {
		name     string
		variants []Variant
		opts     Options
		variant  string
		reason   error
	}{
		{
			name:     "arity",
			variants: []Variant{NewVariant("Call", payload(t, "Expr", "Expr", "Expr")...)},
			opts:     Options{MaxArity: 2},
			variant:  "Call",
			reason:   ErrArity,
		},
		{
			name:     "default arity",
			variants: []Variant{NewVariant("Wide", payload(t, "a", "b", "c", "d", "e", "f", "g", "h", "i")...)},
			variant:  "Wide",
			reason:   ErrArity,
		},
		{
			name:     "blank name",
			variants: []Variant{NewVariant("_")},
			variant:  "_",
			reason:   ErrInvalidName,
		},
		{
			name:     "unknown qualifier",
			variants: []Variant{NewVariant("Lit", payload(t, "*big.Int")...)},
			variant:  "Lit",
			reason:   ErrUnknownQualifier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUnion("p", "Expr", tt.variants, tt.opts)
			assert.Nil(t, u)

			var vErr *VariantShapeError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, "Expr", vErr.Union)
			assert.Equal(t, tt.variant, vErr.Variant)
			assert.ErrorIs(t, err, tt.reason)
		})
	}
}

func TestNewUnion_NameCollisions(t *testing.T) {
	tests := []struct {
		name     string
		variants []Variant
		first    string
		second   string
	}{
		{"canonical", []Variant{NewVariant("AtomExpr"), NewVariant("Atom_Expr")}, "AtomExpr", "Atom_Expr"},
		{"duplicate", []Variant{NewVariant("Add"), NewVariant("Add")}, "Add", "Add"},
		{"union name", []Variant{NewVariant("Expr")}, "Expr", "Expr"},
		{"transformer name", []Variant{NewVariant("ExprTransformer")}, "ExprTransformer", "ExprTransformer"},
		{"bind function", []Variant{NewVariant("Lit"), NewVariant("bindExprTransformer")}, "bindExprTransformer", "bindExprTransformer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUnion("p", "Expr", tt.variants, Options{})

			var cErr *NameCollisionError
			require.ErrorAs(t, err, &cErr)
			assert.Equal(t, tt.first, cErr.First)
			assert.Equal(t, tt.second, cErr.Second)
		})
	}
}

func TestNewUnion_Imports(t *testing.T) {
	imports := []Import{
		{Name: "big", Path: "math/big"},
		{Name: "token", Path: "go/token"},
		{Name: "unused", Path: "example.com/unused"},
	}
	variants := []Variant{
		NewVariant("Lit", payload(t, "*big.Int")...),
		NewVariant("Pos", payload(t, "token.Pos", "big.Float")...),
	}

	u, err := NewUnion("p", "Expr", variants, Options{}, imports...)
	require.NoError(t, err)
	assert.Equal(t, []Import{{Name: "token", Path: "go/token"}, {Name: "big", Path: "math/big"}}, u.Imports())

	// A qualifier used only in an array length still needs its import.
	u, err = NewUnion("p", "Digits", []Variant{NewVariant("Buf", payload(t, "[big.MaxBase]int")...)}, Options{}, imports...)
	require.NoError(t, err)
	assert.Equal(t, []Import{{Name: "big", Path: "math/big"}}, u.Imports())
}

func TestImport_NeedsAlias(t *testing.T) {
	assert.False(t, Import{Name: "big", Path: "math/big"}.NeedsAlias())
	assert.False(t, Import{Name: "yaml", Path: "gopkg.in/yaml.v3"}.NeedsAlias())
	assert.True(t, Import{Name: "gotoken", Path: "go/token"}.NeedsAlias())
}

func TestCheckPackage(t *testing.T) {
	expr, err := NewUnion("p", "Expr", exprVariants(t), Options{})
	require.NoError(t, err)

	stmt, err := NewUnion("p", "Stmt", []Variant{NewVariant("Assign", payload(t, "string", "Expr")...)}, Options{})
	require.NoError(t, err)

	require.NoError(t, CheckPackage([]*Union{expr, stmt}))

	other, err := NewUnion("p", "Other", []Variant{NewVariant("Add")}, Options{})
	require.NoError(t, err)

	var cErr *NameCollisionError
	require.ErrorAs(t, CheckPackage([]*Union{expr, other}), &cErr)
	assert.Equal(t, "Add", cErr.Canonical)

	lower, err := NewUnion("p", "expr", []Variant{NewVariant("Lit")}, Options{})
	require.NoError(t, err)
	require.ErrorAs(t, CheckPackage([]*Union{expr, lower}), &cErr)
	assert.Equal(t, "expr", cErr.Canonical)
}

func TestErrors_Messages(t *testing.T) {
	err := &VariantShapeError{Union: "Expr", Variant: "Add", Err: ErrNamedFields}
	assert.Contains(t, err.Error(), "Add")
	assert.Contains(t, err.Error(), "Expr")
	assert.True(t, errors.Is(err, ErrNamedFields))

	shape := &ShapeError{Union: "Foo", Reason: "no variants declared"}
	assert.Equal(t, "Foo is not a tagged union: no variants declared", shape.Error())

	c := &NameCollisionError{Union: "Expr", First: "AtomExpr", Second: "atom_expr", Canonical: "atom_expr"}
	assert.Contains(t, c.Error(), `"AtomExpr" and "atom_expr"`)
}
