package validator

// Matches fails when value differs from other, e.g. a password and its
// confirmation. The error is reported against field.
func Matches[T comparable](field string, value, other T) Rule {
	return newRule(field, "match", "values do not match", func() bool {
		return value == other
	})
}
