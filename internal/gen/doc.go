// Package gen emits Go source for tagged unions.
//
// For a union U with variants V1..Vn it writes one file, named after the
// canonical form of U, holding:
//   - the sealed interface U with the dispatcher method Transform
//   - one struct per variant, with payload fields P1..Pk
//   - UTransformer, with VisitV and TransformV hooks per variant
//   - UTransformerBase, the identity transformer meant for embedding
//
// Generation uses text/template + go/format. Source that fails to format
// is returned unformatted along with the error, and dumped next to the
// output directory when one is configured.
package gen
