package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/starterkit/pkg/cookie"
	"github.com/dmitrymomot/starterkit/pkg/logger"
)

// Manager owns the session lifecycle: issue, validate with lazy expiry and
// sliding renewal, and revoke.
type Manager struct {
	store         Store
	transport     Transport
	config        Config
	now           func() time.Time
	logger        *slog.Logger
	cookieManager *cookie.Manager
	cookieOptions []cookie.Option
}

// New creates a new session manager with the given options.
// It panics when no store is configured, when the default cookie transport
// has no cookie manager, or when the config is invalid.
func New(opts ...Option) *Manager {
	m := &Manager{
		config: DefaultConfig(),
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(m)
	}

	if err := m.config.Validate(); err != nil {
		panic("session: " + err.Error())
	}

	if m.store == nil {
		panic("session: " + ErrNoStore.Error())
	}

	if m.transport == nil {
		if m.cookieManager == nil {
			panic("session: cookie manager is required when using default cookie transport")
		}
		m.transport = NewCookieTransport(m.cookieManager, m.config.CookieName, m.config.SecureCookies, m.cookieOptions...)
	}

	m.logger = m.logger.With(logger.Component("session"))

	return m
}

// Config returns the effective configuration.
func (m *Manager) Config() Config {
	return m.config
}

// CreateSession persists a session for userID keyed by SessionID(token),
// expiring Lifetime from now. No cookie is written.
func (m *Manager) CreateSession(ctx context.Context, token string, userID uuid.UUID) (*Session, error) {
	sess := &Session{
		ID:        SessionID(token),
		UserID:    userID,
		ExpiresAt: m.now().Add(m.config.Lifetime),
	}

	if err := m.store.Insert(ctx, *sess); err != nil {
		return nil, err
	}

	m.logger.InfoContext(ctx, "session created",
		logger.Event("session.created"),
		logger.UserID(userID.String()),
		logger.SessionID(sess.ID),
	)

	return sess, nil
}

// ValidateSessionToken resolves token to an authenticated result or the empty
// result. It is not a pure read: an expired record is deleted, and a record
// inside its renewal window gets a new expiry persisted before returning.
// Unknown and expired tokens are not errors; store failures are.
func (m *Manager) ValidateSessionToken(ctx context.Context, token string) (ValidationResult, error) {
	res, _, err := m.validate(ctx, token)
	return res, err
}

func (m *Manager) validate(ctx context.Context, token string) (ValidationResult, bool, error) {
	id := SessionID(token)

	sess, user, err := m.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return ValidationResult{}, false, nil
		}
		return ValidationResult{}, false, err
	}
	if sess == nil || user == nil {
		return ValidationResult{}, false, nil
	}

	now := m.now()

	if sess.expired(now) {
		if err := m.store.DeleteByID(ctx, id); err != nil {
			return ValidationResult{}, false, err
		}
		m.logger.DebugContext(ctx, "expired session removed",
			logger.Event("session.expired"),
			logger.SessionID(id),
		)
		return ValidationResult{}, false, nil
	}

	renewed := false
	if sess.dueForRenewal(now, m.config.RenewalWindow) {
		expiresAt := now.Add(m.config.Lifetime)
		if err := m.store.UpdateExpiry(ctx, id, expiresAt); err != nil {
			return ValidationResult{}, false, err
		}
		sess.ExpiresAt = expiresAt
		renewed = true
		m.logger.DebugContext(ctx, "session renewed",
			logger.Event("session.renewed"),
			logger.SessionID(id),
		)
	}

	return ValidationResult{Session: sess, User: user}, renewed, nil
}

// InvalidateSession deletes the record regardless of its state. Idempotent.
func (m *Manager) InvalidateSession(ctx context.Context, sessionID string) error {
	if err := m.store.DeleteByID(ctx, sessionID); err != nil {
		return err
	}
	m.logger.InfoContext(ctx, "session invalidated",
		logger.Event("session.invalidated"),
		logger.SessionID(sessionID),
	)
	return nil
}

// SignIn issues a token, persists its session and only then sets the cookie.
// On any failure nothing is written to w.
func (m *Manager) SignIn(ctx context.Context, w http.ResponseWriter, userID uuid.UUID) (*Session, error) {
	token, err := GenerateToken()
	if err != nil {
		return nil, err
	}

	sess, err := m.CreateSession(ctx, token, userID)
	if err != nil {
		return nil, err
	}

	if err := m.SetSessionCookie(w, token, sess.ExpiresAt); err != nil {
		// The cookie never reached the client; don't leave an orphan behind.
		_ = m.store.DeleteByID(ctx, sess.ID)
		return nil, err
	}

	return sess, nil
}

// SignOut invalidates the session and clears the cookie.
// The cookie is left untouched when the store delete fails.
func (m *Manager) SignOut(ctx context.Context, w http.ResponseWriter, sessionID string) error {
	if err := m.InvalidateSession(ctx, sessionID); err != nil {
		return err
	}
	return m.ClearSessionCookie(w)
}

// SetSessionCookie writes token with Expires = expiresAt.
func (m *Manager) SetSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) error {
	return m.transport.SetToken(w, token, expiresAt)
}

// ClearSessionCookie instructs the client to drop the session cookie.
func (m *Manager) ClearSessionCookie(w http.ResponseWriter) error {
	return m.transport.ClearToken(w)
}

// TokenFromRequest returns the inbound token, or "" when there is none.
func (m *Manager) TokenFromRequest(r *http.Request) string {
	token, err := m.transport.GetToken(r)
	if err != nil {
		return ""
	}
	return token
}
