package session

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/starterkit/pkg/pg"
)

// PostgresStore keeps sessions in the sessions table and joins users on read.
// Schema lives in db/migrations.
type PostgresStore struct {
	db pg.DBTX
}

func NewPostgresStore(db pg.DBTX) *PostgresStore {
	return &PostgresStore{db: db}
}

const (
	insertSessionQuery = `INSERT INTO sessions (id, user_id, expires_at) VALUES ($1, $2, $3)`

	findSessionQuery = `
SELECT s.id, s.user_id, s.expires_at, u.id, u.email, u.name, u.created_at, u.updated_at
FROM sessions s
INNER JOIN users u ON u.id = s.user_id
WHERE s.id = $1`

	updateSessionExpiryQuery = `UPDATE sessions SET expires_at = $2 WHERE id = $1`

	deleteSessionQuery = `DELETE FROM sessions WHERE id = $1`
)

func (s *PostgresStore) Insert(ctx context.Context, sess Session) error {
	_, err := s.db.Exec(ctx, insertSessionQuery, sess.ID, sess.UserID, sess.ExpiresAt)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return ErrDuplicateSession
		}
		return errors.Join(ErrStore, err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id string) (*Session, *User, error) {
	var (
		sess Session
		user User
	)

	err := s.db.QueryRow(ctx, findSessionQuery, id).Scan(
		&sess.ID, &sess.UserID, &sess.ExpiresAt,
		&user.ID, &user.Email, &user.Name, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, nil, ErrSessionNotFound
		}
		return nil, nil, errors.Join(ErrStore, err)
	}

	return &sess, &user, nil
}

func (s *PostgresStore) UpdateExpiry(ctx context.Context, id string, expiresAt time.Time) error {
	if _, err := s.db.Exec(ctx, updateSessionExpiryQuery, id, expiresAt); err != nil {
		return errors.Join(ErrStore, err)
	}
	return nil
}

func (s *PostgresStore) DeleteByID(ctx context.Context, id string) error {
	if _, err := s.db.Exec(ctx, deleteSessionQuery, id); err != nil {
		return errors.Join(ErrStore, err)
	}
	return nil
}
