package naming

import (
	"go/token"
	"go/types"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// fallbackParam names a parameter whose type offers no usable word.
const fallbackParam = "p"

// Exported spells a canonical token as an exported Go identifier fragment.
// "atom_expr" -> "AtomExpr", "h_t_t_p" -> "HTTP".
func Exported(tok string) string {
	var sb strings.Builder

	for _, w := range Words(tok) {
		sb.WriteString(upperFirst(w))
	}

	return sb.String()
}

// Local spells a canonical token as an unexported Go identifier.
// "atom_expr" -> "atomExpr". Keywords ("func") are returned as is, so
// callers can tell them apart from tokens that spell no identifier at all,
// for which "" is returned.
func Local(tok string) string {
	words := Words(tok)
	if len(words) == 0 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(words[0])

	for _, w := range words[1:] {
		sb.WriteString(upperFirst(w))
	}

	name := sb.String()
	if !token.IsIdentifier(name) && !token.IsKeyword(name) {
		return ""
	}

	return name
}

func upperFirst(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}

	return string(unicode.ToUpper(r)) + w[size:]
}

// Params derives one parameter name per payload element from the base type
// names of the payload. Repeated bases are numbered from 1 ("expr1",
// "expr2"); names that would shadow keywords, predeclared identifiers or
// one of reserved get a "Val" suffix. The result is always a list of
// distinct valid identifiers of the same length as bases.
func Params(bases []string, reserved ...string) []string {
	stems := make([]string, len(bases))
	counts := make(map[string]int, len(bases))

	for i, base := range bases {
		stem := Local(Canonical(base))
		if stem == "" {
			stem = fallbackParam
		}

		stems[i] = stem
		counts[stem]++
	}

	blocked := make(map[string]bool, len(reserved))
	for _, r := range reserved {
		blocked[r] = true
	}

	used := make(map[string]bool, len(bases))
	seen := make(map[string]int, len(bases))
	names := make([]string, len(bases))

	for i, stem := range stems {
		name := stem
		if counts[stem] > 1 {
			seen[stem]++
			name = stem + strconv.Itoa(seen[stem])
		}

		if shadows(name) || blocked[name] {
			name += "Val"
		}

		for n := len(bases) + 1; used[name] || shadows(name) || blocked[name]; n++ {
			name = stem + strconv.Itoa(n)
		}

		used[name] = true
		names[i] = name
	}

	return names
}

// shadows reports whether name is a Go keyword or predeclared identifier.
func shadows(name string) bool {
	return token.IsKeyword(name) || types.Universe.Lookup(name) != nil
}
