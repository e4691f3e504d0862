package account_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/starterkit/handler"
	"github.com/dmitrymomot/starterkit/modules/account"
	"github.com/dmitrymomot/starterkit/pkg/auth"
	"github.com/dmitrymomot/starterkit/pkg/cookie"
	"github.com/dmitrymomot/starterkit/pkg/ratelimiter"
	"github.com/dmitrymomot/starterkit/pkg/session"
)

const (
	testEmail    = "jane@example.com"
	testPassword = "correct-horse"
)

func signInView(label string) func(account.SignInParams) templ.Component {
	return func(p account.SignInParams) templ.Component {
		return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
			flash := ""
			if p.Flash != nil {
				flash = p.Flash.Title
			}
			_, err := fmt.Fprintf(w, "%s|email=%s|next=%s|error=%s|errors=%v|flash=%s", label, p.Email, p.Next, p.Error, p.Errors, flash)
			return err
		})
	}
}

func signUpView(label string) func(account.SignUpParams) templ.Component {
	return func(p account.SignUpParams) templ.Component {
		return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
			_, err := fmt.Fprintf(w, "%s|name=%s|email=%s|error=%s|errors=%v", label, p.Name, p.Email, p.Error, p.Errors)
			return err
		})
	}
}

func homeView(p account.HomePageParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if p.User == nil {
			_, err := fmt.Fprintf(w, "%s|anonymous", p.AppName)
			return err
		}
		_, err := fmt.Fprintf(w, "%s|signed in as %s", p.AppName, p.User.Name)
		return err
	})
}

type testApp struct {
	router   http.Handler
	accounts auth.PasswordAuthenticator
	store    *session.MemoryStore
}

func newTestApp(t *testing.T, opts ...account.PasswordOption) *testApp {
	t.Helper()

	users := auth.NewMemoryStorage()
	accounts := auth.NewPasswordService(users, auth.WithBcryptCost(bcrypt.MinCost))

	cookies, err := cookie.New([]string{strings.Repeat("k", 32)})
	require.NoError(t, err)

	store := session.NewMemoryStore(auth.IdentityFinder(users))
	sessions := session.New(session.WithStore(store), session.WithCookieManager(cookies))

	log := slog.New(slog.DiscardHandler)
	errorHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{})
	views := account.Views{
		SignInPage: signInView("sign-in page"),
		SignInForm: signInView("sign-in form"),
		SignUpPage: signUpView("sign-up page"),
		SignUpForm: signUpView("sign-up form"),
		HomePage:   homeView,
	}

	r := chi.NewRouter()
	r.Use(sessions.Middleware)
	r.Mount("/", account.Router(account.RouterOptions{
		Password: account.NewPasswordService(accounts, sessions, cookies, views,
			append([]account.PasswordOption{
				account.WithErrorHandler(errorHandler),
				account.WithLogger(log),
			}, opts...)...,
		),
		Session: account.NewSessionAPI(),
		Home:    account.NewHomePage("Starter Kit", views, errorHandler),
	}))

	return &testApp{router: r, accounts: accounts, store: store}
}

func (a *testApp) seedUser(t *testing.T) *auth.User {
	t.Helper()
	u, err := a.accounts.Register(context.Background(), "Jane Doe", testEmail, testPassword, testPassword)
	require.NoError(t, err)
	return u
}

func (a *testApp) do(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) signIn(t *testing.T) *http.Cookie {
	t.Helper()
	w := a.do(formRequest("/auth/sign-in", url.Values{"email": {testEmail}, "password": {testPassword}}))
	require.Equal(t, http.StatusSeeOther, w.Code)
	c := findCookie(w, "session")
	require.NotNil(t, c)
	return c
}

func formRequest(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestSignUp(t *testing.T) {
	t.Parallel()

	t.Run("renders the page", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(t)

		w := app.do(httptest.NewRequest(http.MethodGet, "/auth/sign-up", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "sign-up page")
	})

	t.Run("validation errors re-render the form", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(t)

		w := app.do(formRequest("/auth/sign-up", url.Values{
			"name":                  {"Jo"},
			"email":                 {"not-an-email"},
			"password":              {"password123"},
			"password_confirmation": {"password124"},
		}))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "sign-up page")
		assert.Contains(t, body, "Name must be at least 3 characters.")
		assert.Contains(t, body, "Invalid email address.")
		assert.Contains(t, body, "Passwords do not match.")
		assert.NotContains(t, body, "password123")
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(t)
		app.seedUser(t)

		w := app.do(formRequest("/auth/sign-up", url.Values{
			"name":                  {"Jane Again"},
			"email":                 {"JANE@example.com"},
			"password":              {testPassword},
			"password_confirmation": {testPassword},
		}))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "An account with that email already exists.")
	})

	t.Run("success redirects to sign-in with a flash", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(t)

		w := app.do(formRequest("/auth/sign-up", url.Values{
			"name":                  {"Jane Doe"},
			"email":                 {testEmail},
			"password":              {testPassword},
			"password_confirmation": {testPassword},
		}))

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/auth/sign-in", w.Header().Get("Location"))
		assert.Nil(t, findCookie(w, "session"), "sign-up must not start a session")

		var flash *http.Cookie
		for _, c := range w.Result().Cookies() {
			if strings.Contains(c.Name, "flash") {
				flash = c
			}
		}
		require.NotNil(t, flash)

		page := app.do(httptest.NewRequest(http.MethodGet, "/auth/sign-in", nil), flash)
		assert.Equal(t, http.StatusOK, page.Code)
		assert.Contains(t, page.Body.String(), "flash="+account.MsgAccountCreatedTitle)

		cleared := findCookie(page, flash.Name)
		require.NotNil(t, cleared)
		assert.Negative(t, cleared.MaxAge)
	})
}

func TestSignIn(t *testing.T) {
	t.Parallel()

	t.Run("renders the page with next", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(t)

		w := app.do(httptest.NewRequest(http.MethodGet, "/auth/sign-in?next=%2Fsettings", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "sign-in page")
		assert.Contains(t, w.Body.String(), "next=/settings")
	})

	t.Run("failures share one generic message", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(t)
		app.seedUser(t)

		for _, creds := range []url.Values{
			{"email": {testEmail}, "password": {"wrong-password"}},
			{"email": {"nobody@example.com"}, "password": {testPassword}},
		} {
			w := app.do(formRequest("/auth/sign-in", creds))

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Contains(t, w.Body.String(), "error="+account.MsgInvalidCredentials)
			assert.Nil(t, findCookie(w, "session"))
		}
		assert.Zero(t, app.store.Len())
	})

	t.Run("malformed input shows field errors", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(t)

		w := app.do(formRequest("/auth/sign-in", url.Values{"email": {"nope"}, "password": {"short"}}))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "Email is invalid.")
	})

	t.Run("datastar failure patches the form only", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(t)
		app.seedUser(t)

		req := formRequest("/auth/sign-in", url.Values{"email": {testEmail}, "password": {"wrong-password"}})
		req.Header.Set(handler.DataStarRequestHeader, "true")
		w := app.do(req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "sign-in form")
		assert.NotContains(t, w.Body.String(), "sign-in page")
	})

	t.Run("success sets the session cookie and redirects", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(t)
		app.seedUser(t)

		w := app.do(formRequest("/auth/sign-in?next=%2Fsettings", url.Values{
			"email":    {" Jane@Example.com "},
			"password": {testPassword},
		}))

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/settings", w.Header().Get("Location"))

		c := findCookie(w, "session")
		require.NotNil(t, c)
		assert.True(t, c.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
		assert.Equal(t, "/", c.Path)
		assert.False(t, c.Expires.IsZero())
		assert.Equal(t, 1, app.store.Len())
	})

	t.Run("open redirect is ignored", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(t)
		app.seedUser(t)

		w := app.do(formRequest("/auth/sign-in?next=%2F%2Fevil.example.com", url.Values{
			"email":    {testEmail},
			"password": {testPassword},
		}))

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})

	t.Run("signed-in visitors skip the form", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(t)
		app.seedUser(t)
		c := app.signIn(t)

		w := app.do(httptest.NewRequest(http.MethodGet, "/auth/sign-in", nil), c)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})
}

func TestSignInRateLimit(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	t.Cleanup(store.Close)
	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Hour})
	require.NoError(t, err)

	app := newTestApp(t, account.WithSignInLimiter(limiter))
	app.seedUser(t)

	attempt := func(remoteAddr string) *httptest.ResponseRecorder {
		req := formRequest("/auth/sign-in", url.Values{"email": {testEmail}, "password": {"wrong-password"}})
		req.RemoteAddr = remoteAddr
		return app.do(req)
	}

	for range 2 {
		w := attempt("198.51.100.1:4000")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
	}

	w := attempt("198.51.100.1:4001")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), account.MsgTooManyAttempts)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	// Correct credentials are throttled too.
	req := formRequest("/auth/sign-in", url.Values{"email": {testEmail}, "password": {testPassword}})
	req.RemoteAddr = "198.51.100.1:4002"
	w = app.do(req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Nil(t, findCookie(w, "session"))

	// Another client and the sign-in page are unaffected.
	assert.Equal(t, http.StatusUnprocessableEntity, attempt("198.51.100.2:4000").Code)

	getReq := httptest.NewRequest(http.MethodGet, "/auth/sign-in", nil)
	getReq.RemoteAddr = "198.51.100.1:4003"
	assert.Equal(t, http.StatusOK, app.do(getReq).Code)
}

func TestSignOut(t *testing.T) {
	t.Parallel()

	t.Run("requires a session", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(t)

		w := app.do(httptest.NewRequest(http.MethodPost, "/auth/sign-out", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), account.MsgNotSignedIn)
	})

	t.Run("invalidates the session and clears the cookie", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(t)
		app.seedUser(t)
		c := app.signIn(t)

		w := app.do(httptest.NewRequest(http.MethodPost, "/auth/sign-out", nil), c)
		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		assert.Zero(t, app.store.Len())

		cleared := findCookie(w, "session")
		require.NotNil(t, cleared)
		assert.Empty(t, cleared.Value)
		assert.Negative(t, cleared.MaxAge)

		again := app.do(httptest.NewRequest(http.MethodGet, "/api/auth/session", nil), c)
		assert.JSONEq(t, `{"user":null}`, again.Body.String())
	})
}

func TestSessionAPI(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	user := app.seedUser(t)

	w := app.do(httptest.NewRequest(http.MethodGet, "/api/auth/session", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":null}`, w.Body.String())

	c := app.signIn(t)
	w = app.do(httptest.NewRequest(http.MethodGet, "/api/auth/session", nil), c)
	require.Equal(t, http.StatusOK, w.Code)

	var body account.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.User)
	assert.Equal(t, user.ID, body.User.ID)
	assert.Equal(t, testEmail, body.User.Email)
	assert.NotContains(t, w.Body.String(), "password")
}

// brokenStore fails every lookup.
type brokenStore struct{ session.Store }

func (brokenStore) FindByID(context.Context, string) (*session.Session, *session.User, error) {
	return nil, nil, errors.Join(session.ErrStore, errors.New("connection refused"))
}

func TestSessionAPI_StoreFailure(t *testing.T) {
	t.Parallel()

	cookies, err := cookie.New([]string{strings.Repeat("k", 32)})
	require.NoError(t, err)
	sessions := session.New(session.WithStore(brokenStore{}), session.WithCookieManager(cookies))

	r := chi.NewRouter()
	r.Use(sessions.Middleware)
	r.Mount("/", account.Router(account.RouterOptions{Session: account.NewSessionAPI()}))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "some-token"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"code":"internal_error","message":"Internal Server Error"}}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestHomePage(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	app.seedUser(t)

	w := app.do(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Starter Kit|anonymous", w.Body.String())

	c := app.signIn(t)
	w = app.do(httptest.NewRequest(http.MethodGet, "/", nil), c)
	assert.Equal(t, "Starter Kit|signed in as Jane Doe", w.Body.String())
}
