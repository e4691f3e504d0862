package session

import "errors"

var (
	// ErrSessionNotFound indicates the store has no live record for the id.
	// The manager never surfaces it: an unknown token is simply "no session".
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrDuplicateSession indicates an insert collided with an existing id.
	ErrDuplicateSession = errors.New("session.duplicate")

	// ErrUserNotFound is returned by a UserFinder when the owner no longer exists.
	ErrUserNotFound = errors.New("session.user_not_found")

	// ErrTokenGeneration indicates the system CSPRNG could not be read
	ErrTokenGeneration = errors.New("session.token_generation_failed")

	// ErrNoToken indicates the request carried no session credential
	ErrNoToken = errors.New("session.no_token")

	// ErrStore wraps every backend failure so callers can tell outages from misses.
	ErrStore = errors.New("session.store_failure")

	// ErrNoStore indicates no store is configured
	ErrNoStore = errors.New("session.no_store")

	// ErrNoTransport indicates no transport is configured
	ErrNoTransport = errors.New("session.no_transport")

	// ErrInvalidConfig indicates lifetime and renewal window are inconsistent
	ErrInvalidConfig = errors.New("session.invalid_config")
)
