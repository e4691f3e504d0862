package session_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/starterkit/pkg/cookie"
	"github.com/dmitrymomot/starterkit/pkg/session"
)

func newTransport(t *testing.T, secure bool) *session.CookieTransport {
	t.Helper()
	cookieMgr, err := cookie.New([]string{"test-secret-key-that-is-long-enough"})
	require.NoError(t, err)
	return session.NewCookieTransport(cookieMgr, "session", secure)
}

func TestCookieTransport_SetToken(t *testing.T) {
	expiresAt := time.Date(2025, time.April, 1, 10, 30, 0, 0, time.UTC)

	t.Run("development", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, newTransport(t, false).SetToken(w, "tok", expiresAt))

		header := w.Header().Get("Set-Cookie")
		assert.True(t, strings.HasPrefix(header, "session=tok;"))
		assert.Contains(t, header, "Path=/")
		assert.Contains(t, header, "Expires="+expiresAt.Format(http.TimeFormat))
		assert.Contains(t, header, "HttpOnly")
		assert.Contains(t, header, "SameSite=Lax")
		assert.NotContains(t, header, "Secure")
		assert.NotContains(t, header, "Max-Age")
	})

	t.Run("production sets Secure", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, newTransport(t, true).SetToken(w, "tok", expiresAt))
		assert.Contains(t, w.Header().Get("Set-Cookie"), "Secure")
	})
}

func TestCookieTransport_ClearToken(t *testing.T) {
	w := httptest.NewRecorder()
	require.NoError(t, newTransport(t, true).ClearToken(w))

	header := w.Header().Get("Set-Cookie")
	assert.True(t, strings.HasPrefix(header, "session=;"))
	assert.Contains(t, header, "Max-Age=0")
	assert.Contains(t, header, "Path=/")
	assert.Contains(t, header, "HttpOnly")
	assert.Contains(t, header, "SameSite=Lax")
	assert.Contains(t, header, "Secure")
}

func TestCookieTransport_GetToken(t *testing.T) {
	tr := newTransport(t, false)

	t.Run("present", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "session", Value: "tok"})
		token, err := tr.GetToken(r)
		require.NoError(t, err)
		assert.Equal(t, "tok", token)
	})

	t.Run("absent", func(t *testing.T) {
		_, err := tr.GetToken(httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, err, session.ErrNoToken)
	})

	t.Run("empty value", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "session", Value: ""})
		_, err := tr.GetToken(r)
		assert.ErrorIs(t, err, session.ErrNoToken)
	})
}
