package session

import (
	"net/http"

	"github.com/dmitrymomot/starterkit/pkg/logger"
)

// Middleware installs a lazy Accessor for the request's token. Nothing is
// validated until a handler calls Current. When validation renews the
// session the cookie is re-issued with the new expiry, provided the response
// headers have not been written yet.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := m.TokenFromRequest(r)

		acc := NewAccessor(m, token, func(s *Session) {
			if err := m.SetSessionCookie(w, token, s.ExpiresAt); err != nil {
				m.logger.ErrorContext(r.Context(), "failed to refresh session cookie", logger.Error(err))
			}
		})

		next.ServeHTTP(w, r.WithContext(WithAccessor(r.Context(), acc)))
	})
}

// RequireAuth is a middleware that requires an authenticated session.
// Must run after Middleware.
func (m *Manager) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res, err := Current(r.Context())
		if err != nil {
			m.logger.ErrorContext(r.Context(), "session lookup failed", logger.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		if !res.Valid() {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
