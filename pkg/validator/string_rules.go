package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Required fails for empty or whitespace-only values.
func Required(field, value string) Rule {
	return newRule(field, "required", "field is required", func() bool {
		return strings.TrimSpace(value) != ""
	})
}

// MinLen counts characters, not bytes.
func MinLen(field, value string, n int) Rule {
	return newRule(field, "min_length", fmt.Sprintf("must be at least %d characters long", n), func() bool {
		return utf8.RuneCountInString(value) >= n
	})
}

func MaxLen(field, value string, n int) Rule {
	return newRule(field, "max_length", fmt.Sprintf("must be at most %d characters long", n), func() bool {
		return utf8.RuneCountInString(value) <= n
	})
}
