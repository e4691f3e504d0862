package views

import (
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/starterkit/handler"
)

// ErrorPage renders a full page for a failed regular request.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	title := http.StatusText(p.StatusCode)
	if title == "" {
		title = "Error"
	}

	return Layout(title, render(func(h *html) {
		h.raw(`<div class="card"><h1>`)
		h.text(strconv.Itoa(p.StatusCode))
		h.raw(` `)
		h.text(title)
		h.raw(`</h1><p>`)
		h.text(p.Error)
		h.raw(`</p>`)
		if p.RequestID != "" {
			h.raw(`<p class="muted">Request ID: `)
			h.text(p.RequestID)
			h.raw(`</p>`)
		}
		if p.RetryURL != "" {
			h.raw(`<a class="button outline" href="`)
			h.text(p.RetryURL)
			h.raw(`">Try again</a>`)
		}
		h.raw(`<a class="button" href="/">Go home</a></div>`)
	}))
}

// ErrorToast renders a toast patched into #toast-container.
func ErrorToast(p handler.ErrorToastParams) templ.Component {
	return render(func(h *html) {
		h.raw(`<div class="toast toast-`)
		h.text(p.Type)
		h.raw(`" role="alert">`)
		h.text(p.Message)
		h.raw(`</div>`)
	})
}
