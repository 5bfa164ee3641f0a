// Package ingredient contains the canonicalization rules shared by the
// recipe matcher, the pantry, and the shopping list generator. All
// functions here are pure.
package ingredient

import (
	"regexp"
	"strings"
)

// quantityPattern strips a leading quantity token (integer, fraction, or
// decimal) optionally followed by a recognized unit word.
var quantityPattern = regexp.MustCompile(`^(?i)\d+(?:[\s/.]\d+)*\s*(?:cups?|tbsp|tsp|oz|lbs?|g|kg|ml|l|cloves?|pieces?|cans?|packages?|bunch(?:es)?|heads?|stalks?|slices?)?\b\s*`)

// punctuationPattern removes everything outside word characters and
// whitespace.
var punctuationPattern = regexp.MustCompile(`[^\w\s]`)

// Normalize reduces a free-text ingredient description to a best-effort
// comparison key: lower-cased, quantity and unit prefix removed,
// punctuation removed, one trailing "s" removed. The trailing-s strip is a
// naive pluralization heuristic carried over for compatibility; unrelated
// words ending in "s" collapse too and that is accepted.
//
// Total function: empty or whitespace-only input yields "".
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}

	// Preparation notes after the first comma ("1 onion, diced") are not
	// part of the ingredient identity.
	if idx := strings.IndexByte(s, ','); idx >= 0 {
		s = s[:idx]
	}

	s = quantityPattern.ReplaceAllString(s, "")
	s = punctuationPattern.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "s")

	return strings.TrimSpace(s)
}
