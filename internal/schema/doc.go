// Package schema holds the validated description of tagged unions and the
// errors raised while extracting it.
//
// A Union is a non-empty ordered list of Variants; each Variant carries an
// ordered list of unnamed payload types. Schemas come from two front-ends:
// Go declarations (see package analyze) and YAML schema files (ParseFile).
// Both funnel through NewUnion, which enforces the shape rules:
//
//   - at least one variant
//   - payloads are plain ordered lists, never record-style named fields
//   - payload arity is bounded by Options.MaxArity
//   - variant names are unique, also after canonicalization
//
// Violations are reported as *ShapeError, *VariantShapeError or
// *NameCollisionError. No partial schema is ever returned.
//
// # YAML schema
//
//	package: calc
//	imports:
//	  - math/big
//	  - alias example.com/some/pkg
//	unions:
//	  - name: Expr
//	    variants:
//	      - name: Add
//	        payload: [Expr, Expr]
//	      - name: Lit
//	        payload: ["*big.Int"]
//	      - name: Unit
package schema
