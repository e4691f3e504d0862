package views

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/starterkit/modules/account"
)

const (
	signInFormID = "sign-in-form"
	signUpFormID = "sign-up-form"
)

// SignInPage renders the full sign-in document.
func SignInPage(p account.SignInParams) templ.Component {
	return Layout("Sign in", render(func(h *html) {
		h.raw(`<div class="card"><h1>Sign in to your account</h1>`)
		h.raw(`<p class="muted">Enter your email and password to sign in to your account.</p>`)
		if p.Flash != nil {
			callout(h, "success", p.Flash.Title, p.Flash.Message)
		}
		h.component(SignInForm(p))
		h.raw(`<p class="muted">Don't have an account?</p>`)
		h.raw(`<a class="button outline" href="/auth/sign-up">Create an account</a></div>`)
	}))
}

// SignInForm is the fragment re-rendered on failed attempts.
func SignInForm(p account.SignInParams) templ.Component {
	return render(func(h *html) {
		postForm(h, signInFormID, "/auth/sign-in")
		if p.Next != "" {
			h.raw(`<input type="hidden" name="next" value="`)
			h.text(p.Next)
			h.raw(`">`)
		}
		input(h, "email", "Email", "email", p.Email, p.Errors["email"])
		input(h, "password", "Password", "password", "", p.Errors["password"])
		if p.Error != "" {
			callout(h, "error", "An error occurred.", p.Error)
		}
		h.raw(`<button type="submit">Sign in</button></form>`)
	})
}

// SignUpPage renders the full sign-up document.
func SignUpPage(p account.SignUpParams) templ.Component {
	return Layout("Create an account", render(func(h *html) {
		h.raw(`<div class="card"><h1>Create an account</h1>`)
		h.raw(`<p class="muted">Enter your details below to create your account.</p>`)
		h.component(SignUpForm(p))
		h.raw(`<p class="muted">Already have an account?</p>`)
		h.raw(`<a class="button outline" href="/auth/sign-in">Back to sign in</a></div>`)
	}))
}

// SignUpForm is the fragment re-rendered on failed registrations.
func SignUpForm(p account.SignUpParams) templ.Component {
	return render(func(h *html) {
		postForm(h, signUpFormID, "/auth/sign-up")
		input(h, "name", "Full Name", "text", p.Name, p.Errors["name"])
		input(h, "email", "Email", "email", p.Email, p.Errors["email"])
		input(h, "password", "Password", "password", "", p.Errors["password"])
		input(h, "password_confirmation", "Confirm Password", "password", "", p.Errors["password_confirmation"])
		if p.Error != "" {
			callout(h, "error", "An error occurred.", p.Error)
		}
		h.raw(`<button type="submit">Create account</button>`)
		h.raw(`<p class="muted">By signing up, you agree to our Terms of Service and Privacy Policy.</p></form>`)
	})
}
