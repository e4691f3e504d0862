package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeName cleans a display name: control characters are dropped,
// whitespace runs collapse to one space and the result is NFC-composed so
// length checks count what the user sees.
var NormalizeName = Compose(
	RemoveControlChars,
	NormalizeWhitespace,
	norm.NFC.String,
)

// NormalizeWhitespace prevents layout issues from multiple spaces, tabs, and newlines.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// RemoveControlChars strips non-printable characters but keeps whitespace
// so NormalizeWhitespace can fold it.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
