package match

import (
	"slices"
	"strings"

	"transformer-generator/internal/naming"
)

// DefaultThreshold is the minimum similarity for a suggestion.
const DefaultThreshold = 0.6

// DefaultMaxSuggestions caps the number of suggestions returned.
const DefaultMaxSuggestions = 3

type scored struct {
	name  string
	score float64
}

// Suggest returns up to DefaultMaxSuggestions candidates similar to name,
// best first. Ties keep lexical order so output is deterministic.
func Suggest(name string, candidates []string) []string {
	return SuggestN(name, candidates, DefaultMaxSuggestions, DefaultThreshold)
}

// SuggestN is Suggest with an explicit cap and similarity threshold.
func SuggestN(name string, candidates []string, n int, threshold float64) []string {
	want := naming.Canonical(name)

	var ranked []scored

	for _, c := range candidates {
		score := LevenshteinNormalized(want, naming.Canonical(c))
		if score >= threshold && c != name {
			ranked = append(ranked, scored{name: c, score: score})
		}
	}

	slices.SortStableFunc(ranked, func(a, b scored) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		default:
			return strings.Compare(a.name, b.name)
		}
	})

	out := make([]string, 0, min(n, len(ranked)))
	for _, r := range ranked {
		if len(out) == n {
			break
		}

		out = append(out, r.name)
	}

	return out
}
