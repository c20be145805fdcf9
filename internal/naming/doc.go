// Package naming derives the identifiers used by generated transformer code.
//
// Every variant and union name is first reduced to a canonical token: a
// lowercase, underscore separated spelling ("AtomExpr" -> "atom_expr").
// Canonical tokens are what uniqueness checks compare; the Go spellings of
// generated methods and parameters are built back from them.
//
// Key functions:
//   - Canonical: identifier -> canonical token
//   - Exported / Local: canonical token -> Go identifier
//   - Params: payload base type names -> parameter names
package naming
