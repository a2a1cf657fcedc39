package planner

import (
	"strings"
	"unicode"
)

// minTokenOverlap guards against trivially short tokens ("a", "up")
// matching inside longer ones.
const minTokenOverlap = 3

// NameMatcher decides whether a logged exercise name refers to a plan item.
// A strategy interface so the heuristic can be swapped or tested on its own.
type NameMatcher interface {
	Match(logged, planned string) bool
}

// TokenNameMatcher matches case-insensitively by substring in either
// direction, then by whole-word token overlap where tokens also match when
// one is contained in the other ("walk" ~ "walking").
type TokenNameMatcher struct{}

// Match implements NameMatcher.
func (TokenNameMatcher) Match(logged, planned string) bool {
	a := strings.ToLower(strings.TrimSpace(logged))
	b := strings.ToLower(strings.TrimSpace(planned))
	if a == "" || b == "" {
		return false
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	for _, ta := range splitWords(a) {
		for _, tb := range splitWords(b) {
			if tokensOverlap(ta, tb) {
				return true
			}
		}
	}
	return false
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func tokensOverlap(a, b string) bool {
	if a == b {
		return true
	}
	if len(a) < minTokenOverlap || len(b) < minTokenOverlap {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
