package schema

import (
	"errors"
	"fmt"

	"transformer-generator/internal/diagnostic"
)

// Reasons a variant payload is rejected. They are wrapped by
// *VariantShapeError.
var (
	ErrNamedFields       = errors.New("payload has named fields; use an ordered list of types")
	ErrResults           = errors.New("payload func must not declare results")
	ErrVariadic          = errors.New("payload must not be variadic")
	ErrEmbedded          = errors.New("embedded field cannot name a variant")
	ErrInvalidName       = errors.New("variant name is not a valid identifier")
	ErrNotList           = errors.New("payload is not a list")
	ErrArity             = errors.New("payload exceeds the maximum arity")
	ErrUnknownQualifier  = errors.New("payload references a package that is not imported")
	ErrUnsupportedSyntax = errors.New("payload type expression is not supported")
)

// ShapeError reports that a declared type is not a tagged union.
type ShapeError struct {
	Union  string
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s is not a tagged union: %s", e.Union, e.Reason)
}

// DiagnosticCode implements diagnostic.Coded.
func (e *ShapeError) DiagnosticCode() string { return diagnostic.CodeShape }

// Subject implements diagnostic.Coded.
func (e *ShapeError) Subject() (string, string) { return e.Union, "" }

// VariantShapeError reports a variant whose payload is not a plain ordered
// list of types, or whose arity is out of range.
type VariantShapeError struct {
	Union   string
	Variant string
	Err     error
}

func (e *VariantShapeError) Error() string {
	return fmt.Sprintf("variant %s of %s: %v", e.Variant, e.Union, e.Err)
}

func (e *VariantShapeError) Unwrap() error {
	return e.Err
}

// DiagnosticCode implements diagnostic.Coded.
func (e *VariantShapeError) DiagnosticCode() string { return diagnostic.CodeVariantShape }

// Subject implements diagnostic.Coded.
func (e *VariantShapeError) Subject() (string, string) { return e.Union, e.Variant }

// NameCollisionError reports two identifiers that map to the same generated
// name, either the same canonical token or the same Go type name.
type NameCollisionError struct {
	Union     string
	First     string
	Second    string
	Canonical string
}

func (e *NameCollisionError) Error() string {
	if e.First == e.Second {
		return fmt.Sprintf("%s: %q is declared more than once", e.Union, e.First)
	}

	return fmt.Sprintf("%s: %q and %q both derive the name %q", e.Union, e.First, e.Second, e.Canonical)
}

// DiagnosticCode implements diagnostic.Coded.
func (e *NameCollisionError) DiagnosticCode() string { return diagnostic.CodeNameCollision }

// Subject implements diagnostic.Coded.
func (e *NameCollisionError) Subject() (string, string) { return e.Union, e.Second }
