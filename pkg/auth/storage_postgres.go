package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dmitrymomot/starterkit/pkg/pg"
)

// PostgresStorage reads and writes the users table created by db/migrations.
type PostgresStorage struct {
	db pg.DBTX
}

func NewPostgresStorage(db pg.DBTX) *PostgresStorage {
	return &PostgresStorage{db: db}
}

const (
	insertUserQuery = `
INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	selectUserColumns = `SELECT id, email, name, password_hash, created_at, updated_at FROM users`

	userByEmailQuery = selectUserColumns + ` WHERE email = $1`
	userByIDQuery    = selectUserColumns + ` WHERE id = $1`
)

func (s *PostgresStorage) CreateUser(ctx context.Context, user *User) error {
	_, err := s.db.Exec(ctx, insertUserQuery,
		user.ID, user.Email, user.Name, string(user.PasswordHash), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return ErrEmailAlreadyExists
		}
		return errors.Join(ErrStorage, err)
	}
	return nil
}

func (s *PostgresStorage) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return s.getUser(ctx, userByEmailQuery, email)
}

func (s *PostgresStorage) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.getUser(ctx, userByIDQuery, id)
}

func (s *PostgresStorage) getUser(ctx context.Context, query string, arg any) (*User, error) {
	var (
		u    User
		hash string
	)
	err := s.db.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.Name, &hash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Join(ErrStorage, err)
	}
	u.PasswordHash = []byte(hash)
	return &u, nil
}
