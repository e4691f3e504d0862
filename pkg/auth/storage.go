package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dmitrymomot/starterkit/pkg/session"
)

// Storage persists accounts. GetUserByEmail and GetUserByID return
// ErrUserNotFound for unknown keys; CreateUser returns ErrEmailAlreadyExists
// when the email is taken.
type Storage interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
}

// IdentityFinder lets session stores without a backend join resolve owners through storage.
func IdentityFinder(storage Storage) session.UserFinder {
	return session.UserFinderFunc(func(ctx context.Context, id uuid.UUID) (*session.User, error) {
		user, err := storage.GetUserByID(ctx, id)
		if err != nil {
			if errors.Is(err, ErrUserNotFound) {
				return nil, session.ErrUserNotFound
			}
			return nil, err
		}
		return user.Identity(), nil
	})
}
