package match

import (
	"strings"
	"unicode"
)

// NormalizeToken normalizes a token for fuzzy matching.
// The normalization pipeline:
// 1. Trim surrounding whitespace.
// 2. Case-fold to lower.
// 3. Strip separators (_, -, spaces).
// 4. Fold ё to е, which Russian texts use interchangeably.
func NormalizeToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = stripSeparators(s)

	return strings.ReplaceAll(s, "ё", "е")
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

// stripSeparators removes common separators from a string.
func stripSeparators(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if !isSeparator(r) {
			result.WriteRune(r)
		}
	}

	return result.String()
}
