// Package isbn provides normalization and format checks for ISBN-10 and
// ISBN-13 identifiers.
package isbn

import (
	"regexp"
	"strings"
)

// formatRX matches a normalized ISBN-10 ("123456789X") or ISBN-13
// ("9781234567890"). The check digit of an ISBN-10 may be X.
var formatRX = regexp.MustCompile(`^(?:\d{9}[\dXx]|\d{13})$`)

// Normalize strips hyphens and uppercases the value. An empty input stays
// empty. Normalize is idempotent.
func Normalize(raw string) string {
	return strings.ToUpper(strings.ReplaceAll(raw, "-", ""))
}

// IsValidFormat reports whether a normalized value has the shape of an
// ISBN-10 or ISBN-13. It does not verify the check digit.
func IsValidFormat(normalized string) bool {
	return formatRX.MatchString(normalized)
}
