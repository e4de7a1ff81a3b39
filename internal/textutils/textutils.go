// Package textutils provides text sanitization for the restricted SEPA
// character set used in pain.001 name and remittance fields.
package textutils

import (
	"regexp"
	"strings"
)

// MaxNameLength is the pain.001 limit for name and unstructured text fields.
const MaxNameLength = 70

// disallowed matches every character outside the SEPA restricted set:
// Latin letters (including accented), digits, the punctuation
// / - ? : ( ) . , ' + and space.
var disallowed = regexp.MustCompile(`[^0-9A-Za-zÀ-ÿ/\-?:().,'+ ]`)

// allowedOnly matches strings made entirely of allowed characters.
var allowedOnly = regexp.MustCompile(`^[0-9A-Za-zÀ-ÿ/\-?:().,'+ ]+$`)

// whitespaceRuns collapses any run of whitespace to a single space.
var whitespaceRuns = regexp.MustCompile(`\s+`)

// Sanitize replaces every character outside the allowed set with a space,
// collapses repeated whitespace, trims, and clamps the result to
// MaxNameLength runes. Empty input returns the empty string.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	cleaned := disallowed.ReplaceAllString(s, " ")
	cleaned = whitespaceRuns.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)
	return Clamp(cleaned, MaxNameLength)
}

// IsAllowed reports whether s contains only characters from the restricted
// set. The empty string is not allowed.
func IsAllowed(s string) bool {
	return allowedOnly.MatchString(s)
}

// Clamp truncates s to at most limit runes. Multi-byte characters are never
// split.
func Clamp(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
