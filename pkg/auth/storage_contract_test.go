package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runStorageContract(t *testing.T, storage Storage) {
	t.Helper()

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	user := &User{
		ID:           uuid.New(),
		Email:        uuid.NewString()[:8] + "@example.com",
		Name:         "Jane Doe",
		PasswordHash: []byte("$2a$04$hash"),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	t.Run("create and read back", func(t *testing.T) {
		require.NoError(t, storage.CreateUser(ctx, user))

		byEmail, err := storage.GetUserByEmail(ctx, user.Email)
		require.NoError(t, err)
		assert.Equal(t, user.ID, byEmail.ID)
		assert.Equal(t, user.Name, byEmail.Name)
		assert.Equal(t, user.PasswordHash, byEmail.PasswordHash)
		assert.True(t, user.CreatedAt.Equal(byEmail.CreatedAt))

		byID, err := storage.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, byID.Email)
	})

	t.Run("duplicate email", func(t *testing.T) {
		dup := *user
		dup.ID = uuid.New()
		assert.ErrorIs(t, storage.CreateUser(ctx, &dup), ErrEmailAlreadyExists)
	})

	t.Run("unknown keys", func(t *testing.T) {
		_, err := storage.GetUserByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, ErrUserNotFound)

		_, err = storage.GetUserByID(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
