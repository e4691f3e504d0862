package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

type redirectResponse struct {
	to     string
	status int
}

// DataStar requests get an SSE redirect script; the status is not used.
func (rr redirectResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		http.Redirect(w, r, rr.to, rr.status)
		return nil
	}
	return datastar.NewSSE(w, r).Redirect(rr.to)
}

// Redirect answers with 303 See Other, so a POST form lands on a GET page.
// Cookies already set on the writer travel with the redirect:
//
//	if _, err := sessions.SignIn(ctx, ctx.ResponseWriter(), user.ID); err != nil {
//		return handler.Error(err)
//	}
//	return handler.Redirect("/")
func Redirect(to string) Response { return RedirectWithCode(to, http.StatusSeeOther) }

func RedirectWithCode(to string, status int) Response {
	return redirectResponse{to: to, status: status}
}

// SafeRedirectPath returns target if it is a local absolute path, otherwise
// fallback. Use it for user-supplied "next" parameters.
func SafeRedirectPath(target, fallback string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.ContainsRune(target, '\\') {
		return fallback
	}
	if u, err := url.Parse(target); err != nil || u.Scheme != "" || u.Host != "" {
		return fallback
	}
	return target
}
