// Package matching judges raw player input against a question's acceptable
// answers. Matching is deliberately strict: trim, lowercase, exact set
// membership. No edit distance, no partial credit.
package matching

import "strings"

// Normalize trims surrounding whitespace and lowercases the input.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Matches reports whether raw, after normalization, equals any of the
// acceptable answers. An empty submission never matches.
func Matches(raw string, acceptable []string) bool {
	normalized := Normalize(raw)
	if normalized == "" {
		return false
	}
	for _, answer := range acceptable {
		if Normalize(answer) == normalized {
			return true
		}
	}
	return false
}
