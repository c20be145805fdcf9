// Package analyze finds tagged-union declarations in Go packages.
//
// It uses golang.org/x/tools/go/packages to load package syntax (no type
// checking, so declarations may refer to union types that are generated
// later) and turns every struct marked with the union directive into a
// validated schema.Union:
//
//	//transform:union Expr
//	type exprDecl struct {
//		Add      func(exprDecl, exprDecl) // two payload elements
//		AtomExpr int                      // one payload element
//		Nil      func()                   // no payload
//	}
//
// Each field is a variant. A func-typed field lists the payload as
// unnamed parameters; any other type is a single-element payload.
// References to the declaration type stand for the union type.
//
// Key types:
//   - UnionID: package import path + union name
//   - UnionInfo: validated schema plus declaration position
//   - UnionGraph: everything found in the loaded packages
package analyze
