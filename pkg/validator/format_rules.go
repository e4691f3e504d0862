package validator

import (
	"net/mail"
	"strings"
)

// ValidEmail accepts a bare address with a dotted domain, as typed into a
// sign-in form. Display-name forms such as "Jane <jane@example.com>" fail.
func ValidEmail(field, value string) Rule {
	return newRule(field, "email", "must be a valid email address", func() bool {
		return isEmail(value)
	})
}

func isEmail(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}

	local, domain, _ := strings.Cut(s, "@")
	if local == "" {
		return false
	}
	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}
	for _, l := range labels {
		if l == "" {
			return false
		}
	}
	return true
}
