package views

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/starterkit/modules/account"
)

// HomePage greets the signed-in user or links to the auth pages.
func HomePage(p account.HomePageParams) templ.Component {
	return Layout(p.AppName, render(func(h *html) {
		h.raw(`<div class="card"><h1>`)
		h.text(p.AppName)
		h.raw(`</h1>`)

		if p.User == nil {
			h.raw(`<p class="muted">You are not signed in.</p>`)
			h.raw(`<a class="button" href="/auth/sign-in">Sign in</a>`)
			h.raw(`<a class="button outline" href="/auth/sign-up">Create an account</a></div>`)
			return
		}

		h.raw(`<p>Signed in as <strong>`)
		h.text(p.User.Name)
		h.raw(`</strong> (`)
		h.text(p.User.Email)
		h.raw(`)</p>`)
		postForm(h, "sign-out-form", "/auth/sign-out")
		h.raw(`<button type="submit" class="button outline">Sign Out</button></form></div>`)
	}))
}
