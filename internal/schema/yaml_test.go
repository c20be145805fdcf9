package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transformer-generator/internal/diagnostic"
)

const calcSchema = `
package: calc
imports:
  - math/big
  - gotoken go/token
unions:
  - name: Expr
    variants:
      - name: Add
        payload: [Expr, Expr]
      - name: Lit
        payload: ["*big.Int"]
      - name: Ident
        payload: [string, gotoken.Pos]
      - name: Unit
      - name: Empty
        payload: []
  - name: Stmt
    variants:
      - name: ExprStmt
        payload: [Expr]
`

func TestParseFile(t *testing.T) {
	file, diags, err := ParseFile([]byte(calcSchema), Options{})
	require.NoError(t, err)
	assert.True(t, diags.IsValid())

	assert.Equal(t, "calc", file.Package)
	require.Len(t, file.Unions, 2)

	expr := file.Unions[0]
	assert.Equal(t, "Expr", expr.Name())
	assert.Equal(t, "calc", expr.Package())
	require.Equal(t, 5, expr.Len())

	variants := expr.Variants()
	assert.Equal(t, []string{"Expr", "Expr"}, exprs(variants[0].Payload()))
	assert.Equal(t, []string{"*big.Int"}, exprs(variants[1].Payload()))
	assert.Equal(t, []string{"string", "gotoken.Pos"}, exprs(variants[2].Payload()))
	assert.Equal(t, 0, variants[3].Arity())
	assert.Equal(t, 0, variants[4].Arity())

	assert.Equal(t, []Import{{Name: "gotoken", Path: "go/token"}, {Name: "big", Path: "math/big"}}, expr.Imports())
	assert.Empty(t, file.Unions[1].Imports())

	if t.Failed() {
		t.Log(spew.Sdump(file))
	}
}

func exprs(ps []PayloadType) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Expr)
	}

	return out
}

func TestParseFile_RecordVariantRejected(t *testing.T) {
	src := `
package: calc
unions:
  - name: Expr
    variants:
      - name: Add
        payload:
          lhs: Expr
          rhs: Expr
      - name: Lit
        payload: [int]
`
	file, diags, err := ParseFile([]byte(src), Options{})
	assert.Nil(t, file)

	var vErr *VariantShapeError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Add", vErr.Variant)
	assert.ErrorIs(t, err, ErrNamedFields)

	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeVariantShape, diags.Errors[0].Code)
	assert.Equal(t, "Expr", diags.Errors[0].Union)
	assert.Equal(t, "Add", diags.Errors[0].Variant)
	assert.Contains(t, diags.Errors[0].Pos, "line ")
}

func TestParseFile_ShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"record type", "package: p\nunions:\n  - name: Point\n    fields:\n      x: int\n"},
		{"no variants", "package: p\nunions:\n  - name: Never\n"},
		{"variants mapping", "package: p\nunions:\n  - name: Bad\n    variants:\n      A: [int]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, diags, err := ParseFile([]byte(tt.src), Options{})
			assert.Nil(t, file)

			var shapeErr *ShapeError
			require.ErrorAs(t, err, &shapeErr)
			require.Len(t, diags.Errors, 1)
			assert.Equal(t, diagnostic.CodeShape, diags.Errors[0].Code)
		})
	}
}

func TestParseFile_ReportsEveryUnion(t *testing.T) {
	src := `
package: p
unions:
  - name: A
    variants:
      - name: X
        payload: scalar
  - name: B
  - name: C
    variants:
      - name: Ok
`
	_, diags, err := ParseFile([]byte(src), Options{})
	require.Error(t, err)
	require.Len(t, diags.Errors, 2)
	assert.ErrorIs(t, err, ErrNotList)
}

func TestParseFile_CrossUnionCollision(t *testing.T) {
	src := `
package: p
unions:
  - name: A
    variants:
      - name: Lit
  - name: B
    variants:
      - name: Lit
`
	_, _, err := ParseFile([]byte(src), Options{})

	var cErr *NameCollisionError
	require.ErrorAs(t, err, &cErr)
}

func TestParseFile_Invalid(t *testing.T) {
	_, _, err := ParseFile([]byte("unions: ["), Options{})
	require.Error(t, err)

	_, _, err = ParseFile([]byte("unions: []\n"), Options{})
	require.ErrorContains(t, err, "package is required")

	_, _, err = ParseFile([]byte("package: p\nimports: [\"a b c\"]\n"), Options{})
	require.ErrorContains(t, err, "invalid import entry")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(calcSchema), 0o644))

	file, _, err := LoadFile(path, Options{MaxArity: 2})
	require.NoError(t, err)
	assert.Len(t, file.Unions, 2)

	_, _, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), Options{})
	require.Error(t, err)
}
