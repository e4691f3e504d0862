package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/starterkit/pkg/session"
)

// runStoreContract checks the behaviour every Store implementation shares.
// owner must already exist in the backing user storage.
func runStoreContract(t *testing.T, store session.Store, owner session.User) {
	t.Helper()
	ctx := context.Background()

	newID := func(t *testing.T) string {
		token, err := session.GenerateToken()
		require.NoError(t, err)
		return session.SessionID(token)
	}

	// Millisecond precision survives every backend.
	expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Millisecond)

	t.Run("unknown id", func(t *testing.T) {
		sess, user, err := store.FindByID(ctx, newID(t))
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
		assert.Nil(t, sess)
		assert.Nil(t, user)
	})

	t.Run("insert and find with owner", func(t *testing.T) {
		id := newID(t)
		require.NoError(t, store.Insert(ctx, session.Session{ID: id, UserID: owner.ID, ExpiresAt: expiresAt}))

		sess, user, err := store.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, sess.ID)
		assert.Equal(t, owner.ID, sess.UserID)
		assert.True(t, expiresAt.Equal(sess.ExpiresAt), "expires_at %s != %s", sess.ExpiresAt, expiresAt)
		assert.Equal(t, owner.ID, user.ID)
		assert.Equal(t, owner.Email, user.Email)
		assert.Equal(t, owner.Name, user.Name)
	})

	t.Run("duplicate insert", func(t *testing.T) {
		id := newID(t)
		s := session.Session{ID: id, UserID: owner.ID, ExpiresAt: expiresAt}
		require.NoError(t, store.Insert(ctx, s))
		assert.ErrorIs(t, store.Insert(ctx, s), session.ErrDuplicateSession)
	})

	t.Run("update expiry", func(t *testing.T) {
		id := newID(t)
		require.NoError(t, store.Insert(ctx, session.Session{ID: id, UserID: owner.ID, ExpiresAt: expiresAt}))

		later := expiresAt.Add(24 * time.Hour)
		require.NoError(t, store.UpdateExpiry(ctx, id, later))

		sess, _, err := store.FindByID(ctx, id)
		require.NoError(t, err)
		assert.True(t, later.Equal(sess.ExpiresAt), "expires_at %s != %s", sess.ExpiresAt, later)
	})

	t.Run("update unknown id is a no-op", func(t *testing.T) {
		id := newID(t)
		require.NoError(t, store.UpdateExpiry(ctx, id, expiresAt))

		_, _, err := store.FindByID(ctx, id)
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		id := newID(t)
		require.NoError(t, store.Insert(ctx, session.Session{ID: id, UserID: owner.ID, ExpiresAt: expiresAt}))

		require.NoError(t, store.DeleteByID(ctx, id))
		require.NoError(t, store.DeleteByID(ctx, id))

		_, _, err := store.FindByID(ctx, id)
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})
}
