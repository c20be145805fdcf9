package naming

import (
	"strings"
	"unicode"
)

// Separator joins the words of a canonical token.
const Separator = '_'

// Canonical converts an identifier into its canonical token.
//
// Rules, applied left to right:
//  1. An uppercase letter starts a new word unless the previous character
//     was already a separator or punctuation; it is appended lowercased.
//  2. '-' and ' ' become a single separator.
//  3. Anything else is appended unchanged.
//
// Leading and trailing separators are trimmed and the result is lowercased.
// Examples:
//   - "AtomExpr" -> "atom_expr"
//   - "Add" -> "add"
//   - "multi-word value" -> "multi_word_value"
func Canonical(s string) string {
	var sb strings.Builder

	sb.Grow(len(s) + 4)

	prev := Separator
	lastSep := false

	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			if !isBoundary(prev) {
				sb.WriteRune(Separator)
			}

			sb.WriteRune(unicode.ToLower(r))

			lastSep = false
		case r == '-' || r == ' ':
			if !lastSep {
				sb.WriteRune(Separator)
			}

			lastSep = true
		default:
			sb.WriteRune(r)

			lastSep = r == Separator
		}

		prev = r
	}

	return strings.ToLower(strings.Trim(sb.String(), string(Separator)))
}

// isBoundary reports whether r already separates two words.
func isBoundary(r rune) bool {
	if r == Separator || r == ' ' {
		return true
	}

	return r <= unicode.MaxASCII && (unicode.IsPunct(r) || unicode.IsSymbol(r))
}

// Words splits a canonical token into its non-empty words.
func Words(token string) []string {
	return strings.FieldsFunc(token, func(r rune) bool { return r == Separator })
}
