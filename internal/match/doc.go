// Package match ranks known names against a misspelled one.
//
// It backs the "did you mean" hints attached to diagnostics when a union
// requested on the command line does not exist. Names are compared on
// their canonical tokens, so "atomExpr", "AtomExpr" and "atom-expr" are
// equally close to "AtomExpr".
package match
