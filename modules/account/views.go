package account

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/starterkit/pkg/session"
)

// Views holds the templ components the account pages render. Each Page
// renders the full document; each Form renders only the fragment patched
// into the page on DataStar requests.
type Views struct {
	SignInPage func(SignInParams) templ.Component
	SignInForm func(SignInParams) templ.Component

	SignUpPage func(SignUpParams) templ.Component
	SignUpForm func(SignUpParams) templ.Component

	HomePage func(HomePageParams) templ.Component
}

// Flash is a one-shot notice carried across a redirect.
type Flash struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// SignInParams contains data for rendering the sign-in page and form.
type SignInParams struct {
	Email  string
	Next   string
	Error  string            // form-level callout
	Errors map[string]string // field -> first message
	Flash  *Flash
}

// SignUpParams contains data for rendering the sign-up page and form.
// Passwords are never echoed back.
type SignUpParams struct {
	Name   string
	Email  string
	Error  string
	Errors map[string]string
}

// HomePageParams contains data for rendering the home page.
type HomePageParams struct {
	AppName string
	User    *session.User // nil when signed out
}
