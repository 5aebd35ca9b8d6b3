package engine

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// normalizeText brings free text (Korean titles, mixed-case mail headers)
// into a canonical lowercase form before substring comparison. NFC keeps
// composed and decomposed Hangul equal.
func normalizeText(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

// containsFold reports whether haystack contains needle, case-insensitive
// and normalization-insensitive.
func containsFold(haystack, needle string) bool {
	return strings.Contains(normalizeText(haystack), normalizeText(needle))
}
