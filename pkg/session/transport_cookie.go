package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrymomot/starterkit/pkg/cookie"
)

// CookieTransport carries the raw token in an HttpOnly cookie.
type CookieTransport struct {
	cookieMgr     *cookie.Manager
	cookieName    string
	options       []cookie.Option
	secureCookies bool
}

// NewCookieTransport creates a cookie-based transport. Extra options are applied
// after the defaults, e.g. cookie.WithDomain.
func NewCookieTransport(cookieMgr *cookie.Manager, cookieName string, secureCookies bool, opts ...cookie.Option) *CookieTransport {
	return &CookieTransport{
		cookieMgr:     cookieMgr,
		cookieName:    cookieName,
		options:       opts,
		secureCookies: secureCookies,
	}
}

// GetToken returns the cookie value or ErrNoToken.
func (t *CookieTransport) GetToken(r *http.Request) (string, error) {
	token, err := t.cookieMgr.Get(r, t.cookieName)
	if err != nil {
		if errors.Is(err, cookie.ErrCookieNotFound) {
			return "", ErrNoToken
		}
		return "", err
	}
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// SetToken writes the cookie with Expires pinned to the session expiry.
func (t *CookieTransport) SetToken(w http.ResponseWriter, token string, expiresAt time.Time) error {
	opts := append(t.baseOptions(), cookie.WithExpires(expiresAt), cookie.WithMaxAge(0))
	return t.cookieMgr.Set(w, t.cookieName, token, opts...)
}

// ClearToken overwrites the cookie with an empty value and Max-Age=0,
// keeping the attributes it was set with so browsers match and drop it.
func (t *CookieTransport) ClearToken(w http.ResponseWriter) error {
	t.cookieMgr.Delete(w, t.cookieName, t.baseOptions()...)
	return nil
}

func (t *CookieTransport) baseOptions() []cookie.Option {
	opts := []cookie.Option{
		cookie.WithPath("/"),
		cookie.WithHTTPOnly(true),
		cookie.WithSameSite(http.SameSiteLaxMode),
		cookie.WithSecure(t.secureCookies),
	}
	return append(opts, t.options...)
}
