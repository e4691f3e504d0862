package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Store persists session records. Implementations must be safe for concurrent use.
//
// Backend failures are returned joined with ErrStore. FindByID returns
// ErrSessionNotFound when the id is unknown or its owner no longer exists;
// expired records are returned as-is so the manager can apply lazy expiry.
type Store interface {
	// Insert persists a new record. The caller guarantees id uniqueness.
	Insert(ctx context.Context, s Session) error

	// FindByID returns the record together with its owner's identity.
	FindByID(ctx context.Context, id string) (*Session, *User, error)

	// UpdateExpiry overwrites the expiry of an existing record.
	// Updating an unknown id is a no-op.
	UpdateExpiry(ctx context.Context, id string, expiresAt time.Time) error

	// DeleteByID removes the record. Deleting an unknown id succeeds.
	DeleteByID(ctx context.Context, id string) error
}

// UserFinder resolves identities for stores that cannot join in the backend.
type UserFinder interface {
	FindUser(ctx context.Context, id uuid.UUID) (*User, error)
}

// UserFinderFunc adapts a function to UserFinder.
type UserFinderFunc func(ctx context.Context, id uuid.UUID) (*User, error)

func (f UserFinderFunc) FindUser(ctx context.Context, id uuid.UUID) (*User, error) {
	return f(ctx, id)
}
