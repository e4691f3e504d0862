// Package validator provides small declarative validation rules for form input.
//
// Each rule constructor returns a Rule: a Check function plus the field, code
// and message reported when it fails. Apply evaluates a list of rules and
// collects every failure into ValidationErrors, which satisfies the error
// interface so a whole form can be rejected with a single error return.
//
//	err := validator.Apply(
//	    validator.MinLen("name", in.Name, 3),
//	    validator.ValidEmail("email", in.Email),
//	    validator.Matches("password_confirmation", in.PasswordConfirmation, in.Password).
//	        WithMessage("Passwords do not match."),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//	    // render errs.First("email") next to the email input
//	}
//
// Rules are plain values without hidden global state, so the package is safe
// for concurrent use.
package validator
