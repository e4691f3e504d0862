package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/starterkit/pkg/session"
)

// User is an account record. PasswordHash never leaves this package's storage layer.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity projects the account onto the safe fields exposed with a session.
func (u *User) Identity() *session.User {
	if u == nil {
		return nil
	}
	return &session.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
