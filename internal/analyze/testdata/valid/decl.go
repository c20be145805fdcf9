package valid

import (
	"go/token"
	mb "math/big"
)

//transform:union Expr
type exprDecl struct {
	Add      func(exprDecl, exprDecl)
	AtomExpr int
	Lit      *mb.Int
	Ident    func(string, token.Pos)
	Nil      func()
	Call     func(Expr, []Expr)
}

// Stmt takes its name from the declaration.
//
//transform:union
type stmtDecl struct {
	Assign, Compare func(string, Expr)
}

type (
	// plain is not a union.
	plain struct{ A int }

	//transform:union Lambda
	lambdaDecl struct {
		Abs func(string, lambdaDecl)
		App func(lambdaDecl, lambdaDecl)
	}
)

//transform:unionish
type notADirective struct{ X int }
