package session

import (
	"time"

	"github.com/google/uuid"
)

// Session is the persisted record. ID is SessionID(token), never the token.
type Session struct {
	ID        string    `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// User is the identity projection returned alongside a live session.
// It deliberately has no credential fields.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidationResult is either authenticated (both set) or empty (both nil).
type ValidationResult struct {
	Session *Session `json:"session"`
	User    *User    `json:"user"`
}

// Valid reports whether the result carries an authenticated session.
func (r ValidationResult) Valid() bool {
	return r.Session != nil && r.User != nil
}

// expired reports now >= ExpiresAt.
func (s *Session) expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// dueForRenewal reports now >= ExpiresAt - window.
func (s *Session) dueForRenewal(now time.Time, window time.Duration) bool {
	return !now.Before(s.ExpiresAt.Add(-window))
}
