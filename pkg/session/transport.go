package session

import (
	"net/http"
	"time"
)

// Transport defines how session tokens travel between client and server
type Transport interface {
	// GetToken extracts the session token from the request.
	// Returns ErrNoToken when the request carries none.
	GetToken(r *http.Request) (string, error)

	// SetToken sends the token, valid until expiresAt.
	SetToken(w http.ResponseWriter, token string, expiresAt time.Time) error

	// ClearToken instructs the client to drop the token immediately.
	ClearToken(w http.ResponseWriter) error
}
