package session

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/starterkit/pkg/cookie"
)

// Option configures a Manager.
type Option func(*Manager)

// WithStore is required.
func WithStore(store Store) Option { return func(m *Manager) { m.store = store } }

// WithTransport replaces the cookie transport built from WithCookieManager.
func WithTransport(t Transport) Option { return func(m *Manager) { m.transport = t } }

func WithConfig(cfg Config) Option { return func(m *Manager) { m.config = cfg } }

func WithCookieName(name string) Option { return func(m *Manager) { m.config.CookieName = name } }

func WithSecureCookies(secure bool) Option {
	return func(m *Manager) { m.config.SecureCookies = secure }
}

// WithLifetime sets how long a new session lives and how close to expiry a
// validated session has to be before it is extended.
func WithLifetime(lifetime, renewalWindow time.Duration) Option {
	return func(m *Manager) {
		m.config.Lifetime = lifetime
		m.config.RenewalWindow = renewalWindow
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithCookieManager makes the Manager carry the token in a cookie written by
// cookies; opts are applied on top of the session cookie attributes.
func WithCookieManager(cookies *cookie.Manager, opts ...cookie.Option) Option {
	return func(m *Manager) {
		m.cookieManager = cookies
		m.cookieOptions = opts
	}
}
