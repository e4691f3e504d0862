package cookie

import (
	"net/http"
	"time"
)

// Options are the attributes written with a cookie.
type Options struct {
	Path     string
	Domain   string
	Expires  time.Time
	MaxAge   int
	Secure   bool
	HttpOnly bool
	SameSite http.SameSite
}

func (o Options) cookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     o.Path,
		Domain:   o.Domain,
		Expires:  o.Expires,
		MaxAge:   o.MaxAge,
		Secure:   o.Secure,
		HttpOnly: o.HttpOnly,
		SameSite: o.SameSite,
	}
}

// Option overrides one attribute.
type Option func(*Options)

func WithPath(path string) Option { return func(o *Options) { o.Path = path } }
func WithDomain(domain string) Option { return func(o *Options) { o.Domain = domain } }
func WithMaxAge(seconds int) Option { return func(o *Options) { o.MaxAge = seconds } }
func WithSecure(secure bool) Option { return func(o *Options) { o.Secure = secure } }
func WithHTTPOnly(httpOnly bool) Option { return func(o *Options) { o.HttpOnly = httpOnly } }
func WithSameSite(mode http.SameSite) Option { return func(o *Options) { o.SameSite = mode } }

// WithExpires sets an absolute expiry. Zero means a browser-session cookie
// unless MaxAge is set.
func WithExpires(t time.Time) Option {
	return func(o *Options) { o.Expires = t }
}

func applyOptions(base Options, opts []Option) Options {
	for _, opt := range opts {
		opt(&base)
	}
	return base
}
