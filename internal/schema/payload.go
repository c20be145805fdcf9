package schema

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/types"
	"slices"
	"strings"
)

// PayloadType describes one element of a variant payload.
type PayloadType struct {
	// Expr is the Go type expression as it appears in generated code,
	// e.g. "Expr", "*big.Int", "[]Expr".
	Expr string
	// Kind is the top-level form of Expr.
	Kind PayloadKind
	// Base is the type name parameter names are derived from, e.g. "Int"
	// for "*big.Int". Empty when the expression has no name.
	Base string
	// Qualifiers lists the package qualifiers Expr references, sorted.
	Qualifiers []string
}

// String returns the type expression.
func (p PayloadType) String() string {
	return p.Expr
}

// ParsePayload builds a PayloadType from a type expression. Identifiers
// found in rename are replaced, which lets a declaration refer to itself
// where the union type is meant.
func ParsePayload(expr ast.Expr, rename map[string]string) (PayloadType, error) {
	b := &payloadBuilder{rename: rename}

	text, err := b.render(expr)
	if err != nil {
		return PayloadType{}, err
	}

	slices.Sort(b.quals)

	return PayloadType{
		Expr:       text,
		Kind:       kindOf(expr),
		Base:       b.base(expr),
		Qualifiers: slices.Compact(b.quals),
	}, nil
}

// ParsePayloadString parses src as a Go type expression and builds a
// PayloadType from it.
func ParsePayloadString(src string, rename map[string]string) (PayloadType, error) {
	expr, err := parser.ParseExpr(strings.TrimSpace(src))
	if err != nil {
		return PayloadType{}, fmt.Errorf("%w: %q: %v", ErrUnsupportedSyntax, src, err)
	}

	return ParsePayload(expr, rename)
}

type payloadBuilder struct {
	rename map[string]string
	quals  []string
}

func (b *payloadBuilder) render(e ast.Expr) (string, error) {
	switch t := e.(type) {
	case *ast.Ident:
		if to, ok := b.rename[t.Name]; ok {
			return to, nil
		}

		return t.Name, nil

	case *ast.SelectorExpr:
		x, ok := t.X.(*ast.Ident)
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrUnsupportedSyntax, types.ExprString(e))
		}

		b.quals = append(b.quals, x.Name)

		return x.Name + "." + t.Sel.Name, nil

	case *ast.StarExpr:
		return b.prefixed("*", t.X)

	case *ast.ParenExpr:
		inner, err := b.render(t.X)
		if err != nil {
			return "", err
		}

		return "(" + inner + ")", nil

	case *ast.ArrayType:
		if t.Len == nil {
			return b.prefixed("[]", t.Elt)
		}

		if _, ok := t.Len.(*ast.Ellipsis); ok {
			return "", fmt.Errorf("%w: %s", ErrUnsupportedSyntax, types.ExprString(e))
		}

		b.collectQualifiers(t.Len)

		return b.prefixed("["+types.ExprString(t.Len)+"]", t.Elt)

	case *ast.MapType:
		key, err := b.render(t.Key)
		if err != nil {
			return "", err
		}

		return b.prefixed("map["+key+"]", t.Value)

	case *ast.ChanType:
		switch t.Dir {
		case ast.SEND:
			return b.prefixed("chan<- ", t.Value)
		case ast.RECV:
			return b.prefixed("<-chan ", t.Value)
		default:
			return b.prefixed("chan ", t.Value)
		}

	case *ast.IndexExpr:
		return b.instance(t.X, []ast.Expr{t.Index})

	case *ast.IndexListExpr:
		return b.instance(t.X, t.Indices)

	case *ast.StructType:
		if t.Fields != nil && len(t.Fields.List) > 0 {
			return "", ErrNamedFields
		}

		return "struct{}", nil

	case *ast.Ellipsis:
		return "", ErrVariadic

	case *ast.FuncType, *ast.InterfaceType:
		// Rendered verbatim; identifiers inside are not renamed.
		b.collectQualifiers(t)

		return types.ExprString(e), nil

	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedSyntax, types.ExprString(e))
	}
}

func (b *payloadBuilder) prefixed(prefix string, elem ast.Expr) (string, error) {
	inner, err := b.render(elem)
	if err != nil {
		return "", err
	}

	return prefix + inner, nil
}

func (b *payloadBuilder) instance(generic ast.Expr, args []ast.Expr) (string, error) {
	head, err := b.render(generic)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(args))

	for _, a := range args {
		s, err := b.render(a)
		if err != nil {
			return "", err
		}

		parts = append(parts, s)
	}

	return head + "[" + strings.Join(parts, ", ") + "]", nil
}

func (b *payloadBuilder) collectQualifiers(n ast.Node) {
	ast.Inspect(n, func(n ast.Node) bool {
		if sel, ok := n.(*ast.SelectorExpr); ok {
			if x, ok := sel.X.(*ast.Ident); ok {
				b.quals = append(b.quals, x.Name)
			}
		}

		return true
	})
}

// base finds the name the parameter for e is derived from.
func (b *payloadBuilder) base(e ast.Expr) string {
	switch t := e.(type) {
	case *ast.Ident:
		if to, ok := b.rename[t.Name]; ok {
			return to
		}

		return t.Name
	case *ast.SelectorExpr:
		return t.Sel.Name
	case *ast.StarExpr:
		return b.base(t.X)
	case *ast.ParenExpr:
		return b.base(t.X)
	case *ast.ArrayType:
		return b.base(t.Elt)
	case *ast.MapType:
		return b.base(t.Value)
	case *ast.ChanType:
		return b.base(t.Value)
	case *ast.IndexExpr:
		return b.base(t.X)
	case *ast.IndexListExpr:
		return b.base(t.X)
	default:
		return ""
	}
}

func kindOf(e ast.Expr) PayloadKind {
	switch t := e.(type) {
	case *ast.Ident, *ast.IndexExpr, *ast.IndexListExpr:
		return PayloadKindNamed
	case *ast.SelectorExpr:
		return PayloadKindQualified
	case *ast.StarExpr:
		return PayloadKindPointer
	case *ast.ParenExpr:
		return kindOf(t.X)
	case *ast.ArrayType:
		if t.Len == nil {
			return PayloadKindSlice
		}

		return PayloadKindArray
	case *ast.MapType:
		return PayloadKindMap
	case *ast.ChanType:
		return PayloadKindChan
	default:
		return PayloadKindOther
	}
}
