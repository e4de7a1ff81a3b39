// Package iban provides structural and checksum validation for Belgian IBANs.
package iban

import (
	"regexp"
	"strings"
)

// belgianPattern matches a normalized Belgian IBAN: BE followed by 14 digits.
var belgianPattern = regexp.MustCompile(`^BE\d{14}$`)

// Normalize returns the IBAN in canonical form: uppercase with all
// whitespace removed. Free-form input with arbitrary casing and spacing is
// accepted.
func Normalize(raw string) string {
	return strings.ToUpper(strings.Join(strings.Fields(raw), ""))
}

// Validate reports whether raw is a valid Belgian IBAN. The input is
// normalized first; the structural rule (BE + 14 digits) is checked before
// the mod-97 checksum. Invalid or empty input returns false, never an error.
func Validate(raw string) bool {
	normalized := Normalize(raw)
	if !belgianPattern.MatchString(normalized) {
		return false
	}
	return mod97(normalized) == 1
}

// mod97 computes the ISO 7064 mod-97 remainder of an IBAN. The first four
// characters are moved to the end, letters are mapped to 10..35, and the
// resulting numeric string is reduced digit by digit so arbitrarily long
// IBANs never overflow.
func mod97(normalized string) int {
	rearranged := normalized[4:] + normalized[:4]

	remainder := 0
	for _, ch := range rearranged {
		switch {
		case ch >= '0' && ch <= '9':
			remainder = (remainder*10 + int(ch-'0')) % 97
		case ch >= 'A' && ch <= 'Z':
			// A=10 .. Z=35, two digits at a time
			value := int(ch) - 55
			remainder = (remainder*100 + value) % 97
		default:
			return -1
		}
	}
	return remainder
}
