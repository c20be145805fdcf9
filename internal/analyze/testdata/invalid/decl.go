package invalid

//transform:union Expr
type exprDecl struct {
	Add func(lhs, rhs exprDecl)
	Lit int
}

//transform:union Shape
type shapeDecl int

//transform:union Point
type pointDecl struct {
	Move func(int) int
}
