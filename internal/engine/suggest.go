package engine

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the candidate closest to word by edit distance, or ""
// when nothing is close enough to be a plausible typo.
func Suggest(word string, candidates []string) string {
	word = strings.ToLower(word)
	best := ""
	bestDist := 0
	for _, cand := range candidates {
		dist := levenshtein.ComputeDistance(word, strings.ToLower(cand))
		if dist > suggestLimit(len(cand)) {
			continue
		}
		if best == "" || dist < bestDist || (dist == bestDist && cand < best) {
			best = cand
			bestDist = dist
		}
	}
	return best
}

func suggestLimit(n int) int {
	switch {
	case n <= 3:
		return 1
	case n <= 8:
		return 2
	}
	return 3
}

// DidYouMean formats a suggestion suffix for error messages.
func DidYouMean(word string, candidates []string) string {
	if s := Suggest(word, candidates); s != "" {
		return " (did you mean " + s + "?)"
	}
	return ""
}
