package pg

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrConnect            = errors.New("pg.connect_failed")
	ErrInvalidConfig      = errors.New("pg.invalid_config")
	ErrPingFailed         = errors.New("pg.ping_failed")
	ErrMigrate            = errors.New("pg.migrate_failed")
	ErrMigrationsNotFound = errors.New("pg.migrations_not_found")
	ErrMigrationsDirEmpty = errors.New("pg.migrations_dir_empty")
)

// uniqueViolation is SQLSTATE 23505.
const uniqueViolation = "23505"

// IsNotFoundError reports whether err wraps pgx.ErrNoRows.
func IsNotFoundError(err error) bool {
	return err != nil && errors.Is(err, pgx.ErrNoRows)
}

// IsDuplicateKeyError reports a unique constraint violation, e.g. a taken email.
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
