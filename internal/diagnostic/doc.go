// Package diagnostic provides structured warnings and errors collected while
// extracting tagged-union schemas.
//
// Key capabilities:
//   - Coded errors naming the offending union and variant
//   - Source positions for declarations
//   - "did you mean" suggestions for unknown union names
//   - Joining the underlying typed errors so errors.As keeps working
package diagnostic
