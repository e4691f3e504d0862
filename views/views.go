// Package views holds the HTML components of the app. Components are plain
// templ.Component values so they compose with handler.Templ and DataStar
// element patches.
package views

import (
	"github.com/dmitrymomot/starterkit/handler"
	"github.com/dmitrymomot/starterkit/modules/account"
)

// Account returns the component set the account module renders.
func Account() account.Views {
	return account.Views{
		SignInPage: SignInPage,
		SignInForm: SignInForm,
		SignUpPage: SignUpPage,
		SignUpForm: SignUpForm,
		HomePage:   HomePage,
	}
}

// ErrorHandlerConfig returns the error page and toast for handler.NewErrorHandler.
func ErrorHandlerConfig() handler.ErrorHandlerConfig {
	return handler.ErrorHandlerConfig{
		ErrorPage:  ErrorPage,
		ErrorToast: ErrorToast,
	}
}
