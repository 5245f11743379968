package listing

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases s and strips diacritics (NFD decomposition followed
// by combining-mark removal). It is the sole basis for search matching: both
// haystack and needle pass through it, so "cafe" matches "Café".
// Normalize("") == "" and the function is idempotent.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(stripper, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// containsNormalized reports whether the normalized haystack contains the
// normalized needle. Matching is pure boolean substring, no ranking.
func containsNormalized(haystack, needle string) bool {
	return strings.Contains(Normalize(haystack), Normalize(needle))
}
