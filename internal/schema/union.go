package schema

import (
	"fmt"
	"go/token"
	"slices"
	"strings"

	"transformer-generator/internal/common"
	"transformer-generator/internal/naming"
)

// DefaultMaxArity is the payload arity limit used when Options.MaxArity is 0.
const DefaultMaxArity = 8

// Options tune validation.
type Options struct {
	// MaxArity bounds the number of payload elements per variant.
	MaxArity int
}

func (o Options) maxArity() int {
	if o.MaxArity <= 0 {
		return DefaultMaxArity
	}

	return o.MaxArity
}

// Import is a package referenced by payload types.
type Import struct {
	// Name is the qualifier used in type expressions.
	Name string
	// Path is the import path.
	Path string
}

// NeedsAlias reports whether the import spec must spell out Name.
func (i Import) NeedsAlias() bool {
	return i.Name != common.PkgAlias(i.Path)
}

// Variant is one named alternative of a tagged union.
type Variant struct {
	name      string
	canonical string
	payload   []PayloadType
}

// NewVariant creates a variant. It is validated by NewUnion.
func NewVariant(name string, payload ...PayloadType) Variant {
	return Variant{
		name:      name,
		canonical: naming.Canonical(name),
		payload:   slices.Clone(payload),
	}
}

// Name returns the declared variant name.
func (v Variant) Name() string { return v.name }

// Canonical returns the canonical token of the variant name.
func (v Variant) Canonical() string { return v.canonical }

// Hook returns the suffix of the generated Visit and Transform hooks,
// e.g. "AtomExpr" for both "AtomExpr" and "atom_expr".
func (v Variant) Hook() string { return naming.Exported(v.canonical) }

// Payload returns a copy of the ordered payload types.
func (v Variant) Payload() []PayloadType { return slices.Clone(v.payload) }

// Arity returns the number of payload elements.
func (v Variant) Arity() int { return len(v.payload) }

// Union is a validated tagged-union schema. It is immutable.
type Union struct {
	pkg       string
	name      string
	canonical string
	imports   []Import
	variants  []Variant
}

// NewUnion validates variants and builds a Union named name in package pkg.
// imports lists the packages available to payload types; only those
// actually referenced are kept.
func NewUnion(pkg, name string, variants []Variant, opts Options, imports ...Import) (*Union, error) {
	if !token.IsIdentifier(name) || name == "_" {
		return nil, &ShapeError{Union: name, Reason: "union name is not a valid identifier"}
	}

	if len(variants) == 0 {
		return nil, &ShapeError{Union: name, Reason: "no variants declared"}
	}

	byQualifier := make(map[string]Import, len(imports))
	for _, imp := range imports {
		byQualifier[imp.Name] = imp
	}

	// Package-level names the generated file declares besides the variants.
	taken := map[string]string{
		name:                     name,
		name + "Transformer":     name + "Transformer",
		name + "TransformerBase": name + "TransformerBase",
		bindName(name):           bindName(name),
	}
	canonicals := make(map[string]string, len(variants))
	used := make(map[string]Import)

	for _, v := range variants {
		if !token.IsIdentifier(v.name) || v.name == "_" {
			return nil, &VariantShapeError{Union: name, Variant: v.name, Err: ErrInvalidName}
		}

		if len(v.payload) > opts.maxArity() {
			return nil, &VariantShapeError{
				Union:   name,
				Variant: v.name,
				Err:     fmt.Errorf("%w: %d > %d", ErrArity, len(v.payload), opts.maxArity()),
			}
		}

		if prev, ok := taken[v.name]; ok {
			return nil, &NameCollisionError{Union: name, First: prev, Second: v.name, Canonical: v.name}
		}

		if prev, ok := canonicals[v.canonical]; ok {
			return nil, &NameCollisionError{Union: name, First: prev, Second: v.name, Canonical: v.canonical}
		}

		taken[v.name] = v.name
		canonicals[v.canonical] = v.name

		for _, p := range v.payload {
			for _, q := range p.Qualifiers {
				imp, ok := byQualifier[q]
				if !ok {
					return nil, &VariantShapeError{
						Union:   name,
						Variant: v.name,
						Err:     fmt.Errorf("%w: %s", ErrUnknownQualifier, q),
					}
				}

				used[imp.Path] = imp
			}
		}
	}

	u := &Union{
		pkg:       pkg,
		name:      name,
		canonical: naming.Canonical(name),
		variants:  slices.Clone(variants),
	}

	for _, imp := range used {
		u.imports = append(u.imports, imp)
	}

	slices.SortFunc(u.imports, func(a, b Import) int {
		return strings.Compare(a.Path, b.Path)
	})

	return u, nil
}

// Package returns the Go package name the union belongs to.
func (u *Union) Package() string { return u.pkg }

// Name returns the union type name.
func (u *Union) Name() string { return u.name }

// Canonical returns the canonical token of the union name.
func (u *Union) Canonical() string { return u.canonical }

// TransformerName returns the name of the generated transformer interface.
func (u *Union) TransformerName() string { return u.name + "Transformer" }

// BindName returns the name of the generated function that binds an outer
// transformer to its embedded base.
func (u *Union) BindName() string { return bindName(u.name) }

func bindName(union string) string { return "bind" + union + "Transformer" }

// BaseName returns the name of the generated identity transformer.
func (u *Union) BaseName() string { return u.name + "TransformerBase" }

// Imports returns the imports referenced by payload types, sorted by path.
func (u *Union) Imports() []Import { return slices.Clone(u.imports) }

// Variants returns a copy of the ordered variants.
func (u *Union) Variants() []Variant { return slices.Clone(u.variants) }

// Len returns the number of variants.
func (u *Union) Len() int { return len(u.variants) }

// Variant looks up a variant by declared name.
func (u *Union) Variant(name string) (Variant, bool) {
	for _, v := range u.variants {
		if v.name == name {
			return v, true
		}
	}

	return Variant{}, false
}

// CheckPackage verifies that unions generated into one package do not
// collide: canonical union names must differ, and no Go type name may be
// declared twice across the generated files.
func CheckPackage(unions []*Union) error {
	canonicals := make(map[string]string, len(unions))
	types := make(map[string]string)

	for _, u := range unions {
		if prev, ok := canonicals[u.canonical]; ok {
			return &NameCollisionError{Union: u.name, First: prev, Second: u.name, Canonical: u.canonical}
		}

		canonicals[u.canonical] = u.name

		names := []string{u.name, u.TransformerName(), u.BaseName(), u.BindName()}
		for _, v := range u.variants {
			names = append(names, v.name)
		}

		for _, n := range names {
			if owner, ok := types[n]; ok {
				return &NameCollisionError{
					Union:     u.name,
					First:     owner + "." + n,
					Second:    u.name + "." + n,
					Canonical: n,
				}
			}

			types[n] = u.name
		}
	}

	return nil
}
