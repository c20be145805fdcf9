// Package transform holds helpers shared by generated transformers.
//
// Every generated union U satisfies Transformable[U, UTransformer], so the
// helpers below work on any of them:
//
//	folded := transform.All[expr.Expr, expr.ExprTransformer](exprs, &expr.Folder{})
package transform

// Transformable is a union value that dispatches itself to a transformer.
type Transformable[T, Tr any] interface {
	Transform(t Tr) T
}

// All dispatches every value to t and returns the results in order.
func All[T Transformable[T, Tr], Tr any](values []T, t Tr) []T {
	if values == nil {
		return nil
	}

	out := make([]T, len(values))
	for i, v := range values {
		out[i] = v.Transform(t)
	}

	return out
}

// Apply runs v through each transformer in turn, feeding each result to
// the next one.
func Apply[T Transformable[T, Tr], Tr any](v T, passes ...Tr) T {
	for _, t := range passes {
		v = v.Transform(t)
	}

	return v
}
