package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption tunes how a component is patched into a DataStar page.
type TemplOption = datastar.PatchElementOption

// WithTarget patches the element matching selector instead of the one
// matching the component's root id.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the component is merged into the DOM.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

type templResponse struct {
	full    templ.Component
	partial templ.Component // sent to DataStar requests
	opts    []TemplOption
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return datastar.NewSSE(w, r).PatchElementTempl(t.partial, t.opts...)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.full.Render(r.Context(), w)
}

// Templ renders c as a page, or patches it into the current page for
// DataStar requests.
//
//	return handler.Templ(views.HomePage(params))
func Templ(c templ.Component, opts ...TemplOption) Response {
	return templResponse{full: c, partial: c, opts: opts}
}

// TemplPartial patches only partial for DataStar requests and renders full
// otherwise. A form re-rendered with errors is the usual case:
//
//	return handler.TemplPartial(views.SignInForm(form), views.SignInPage(form))
func TemplPartial(partial, full templ.Component, opts ...TemplOption) Response {
	return templResponse{full: full, partial: partial, opts: opts}
}
