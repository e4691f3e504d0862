package validator

import (
	"errors"
	"strings"
)

// ValidationError is one failed rule. Code is a stable identifier such as
// "required" or "min_length"; Message is shown to the user.
type ValidationError struct {
	Field   string
	Code    string
	Message string
}

// ValidationErrors is the error returned by Apply, in rule order.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, e := range ve {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.Field + ": " + e.Message)
	}
	return b.String()
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	return ve.First(field) != ""
}

// Get returns every message recorded for field in rule order.
func (ve ValidationErrors) Get(field string) []string {
	var out []string
	for _, e := range ve {
		if e.Field == field {
			out = append(out, e.Message)
		}
	}
	return out
}

// First returns the first message recorded for field, or "".
func (ve ValidationErrors) First(field string) string {
	for _, e := range ve {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

// Messages flattens the collection into field -> first message, the shape
// forms render next to their inputs.
func (ve ValidationErrors) Messages() map[string]string {
	out := make(map[string]string, len(ve))
	for _, e := range ve {
		if _, seen := out[e.Field]; !seen {
			out[e.Field] = e.Message
		}
	}
	return out
}

func (ve ValidationErrors) IsEmpty() bool { return len(ve) == 0 }

// Rule is a deferred check and the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

func newRule(field, code, message string, check func() bool) Rule {
	return Rule{Check: check, Error: ValidationError{Field: field, Code: code, Message: message}}
}

// WithMessage returns a copy of the rule reporting msg instead of its default message.
func (r Rule) WithMessage(msg string) Rule {
	r.Error.Message = msg
	return r
}

// Apply runs every rule and returns ValidationErrors for the failed ones,
// or nil.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, r := range rules {
		if !r.Check() {
			errs.Add(r.Error)
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ExtractValidationErrors returns the ValidationErrors wrapped in err, or nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}
