package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	candidates := []string{"Expr", "Stmt", "Decl", "TypeExpr", "AtomExpr"}

	assert.Equal(t, []string{"Expr"}, Suggest("Exprr", candidates))
	assert.Equal(t, []string{"AtomExpr"}, Suggest("atom-expr", candidates))
	assert.Equal(t, []string{"Stmt"}, Suggest("stmt", candidates))
	assert.Empty(t, Suggest("Completely", candidates))
	assert.Empty(t, Suggest("Expr", []string{"Expr"}))
}

func TestSuggestN_OrderAndCap(t *testing.T) {
	candidates := []string{"Exprc", "Exprb", "Expra", "Ex"}

	// Equal scores fall back to lexical order.
	assert.Equal(t, []string{"Expra", "Exprb"}, SuggestN("Expr", candidates, 2, 0.5))
	assert.Equal(t, []string{"Expra", "Exprb", "Exprc", "Ex"}, SuggestN("Expr", candidates, 10, 0.5))
}
