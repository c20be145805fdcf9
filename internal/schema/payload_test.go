package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePayloadString(t *testing.T) {
	tests := []struct {
		src   string
		expr  string
		kind  PayloadKind
		base  string
		quals []string
	}{
		{"Expr", "Expr", PayloadKindNamed, "Expr", nil},
		{"int", "int", PayloadKindNamed, "int", nil},
		{"*big.Int", "*big.Int", PayloadKindPointer, "Int", []string{"big"}},
		{"[]Expr", "[]Expr", PayloadKindSlice, "Expr", nil},
		{"[4]byte", "[4]byte", PayloadKindArray, "byte", nil},
		{"[big.MaxBase]int", "[big.MaxBase]int", PayloadKindArray, "int", []string{"big"}},
		{"map[string]ast.Node", "map[string]ast.Node", PayloadKindMap, "Node", []string{"ast"}},
		{"<-chan Expr", "<-chan Expr", PayloadKindChan, "Expr", nil},
		{"chan<- int", "chan<- int", PayloadKindChan, "int", nil},
		{"token.Pos", "token.Pos", PayloadKindQualified, "Pos", []string{"token"}},
		{"List[Expr]", "List[Expr]", PayloadKindNamed, "List", nil},
		{"Pair[a.X, b.Y]", "Pair[a.X, b.Y]", PayloadKindNamed, "Pair", []string{"a", "b"}},
		{"func(int) bool", "func(int) bool", PayloadKindOther, "", nil},
		{"struct{}", "struct{}", PayloadKindOther, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			p, err := ParsePayloadString(tt.src, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expr, p.Expr)
			assert.Equal(t, tt.kind, p.Kind)
			assert.Equal(t, tt.base, p.Base)
			assert.Equal(t, tt.quals, p.Qualifiers)
		})
	}
}

func TestParsePayloadString_Rename(t *testing.T) {
	rename := map[string]string{"exprDecl": "Expr"}

	p, err := ParsePayloadString("[]*exprDecl", rename)
	require.NoError(t, err)
	assert.Equal(t, "[]*Expr", p.Expr)
	assert.Equal(t, "Expr", p.Base)

	p, err = ParsePayloadString("map[exprDecl]exprDecl", rename)
	require.NoError(t, err)
	assert.Equal(t, "map[Expr]Expr", p.Expr)
}

func TestParsePayloadString_Rejects(t *testing.T) {
	_, err := ParsePayloadString("struct{ X int }", nil)
	assert.ErrorIs(t, err, ErrNamedFields)

	_, err = ParsePayloadString("[...]int", nil)
	assert.ErrorIs(t, err, ErrUnsupportedSyntax)

	_, err = ParsePayloadString("a.b.C", nil)
	assert.ErrorIs(t, err, ErrUnsupportedSyntax)

	_, err = ParsePayloadString("not a type", nil)
	assert.ErrorIs(t, err, ErrUnsupportedSyntax)
}

func TestPayloadKind_String(t *testing.T) {
	assert.Equal(t, "named", PayloadKindNamed.String())
	assert.Equal(t, "qualified", PayloadKindQualified.String())
	assert.Equal(t, "chan", PayloadKindChan.String())
	assert.Equal(t, "other", PayloadKindOther.String())
	assert.Equal(t, "PayloadKind(42)", PayloadKind(42).String())
}
