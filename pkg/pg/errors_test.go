package pg_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/starterkit/pkg/pg"
)

func TestIsNotFoundError(t *testing.T) {
	assert.False(t, pg.IsNotFoundError(nil))
	assert.True(t, pg.IsNotFoundError(pgx.ErrNoRows))
	assert.True(t, pg.IsNotFoundError(fmt.Errorf("find user: %w", pgx.ErrNoRows)))
	assert.False(t, pg.IsNotFoundError(errors.New("boom")))
}

func TestIsDuplicateKeyError(t *testing.T) {
	assert.False(t, pg.IsDuplicateKeyError(nil))
	assert.True(t, pg.IsDuplicateKeyError(&pgconn.PgError{Code: "23505"}))
	assert.True(t, pg.IsDuplicateKeyError(errors.Join(errors.New("insert"), &pgconn.PgError{Code: "23505"})))
	assert.False(t, pg.IsDuplicateKeyError(&pgconn.PgError{Code: "23503"}))
	assert.False(t, pg.IsDuplicateKeyError(pgx.ErrNoRows))
}

func TestSentinels(t *testing.T) {
	sentinels := []error{
		pg.ErrConnect,
		pg.ErrInvalidConfig,
		pg.ErrPingFailed,
		pg.ErrMigrate,
		pg.ErrMigrationsNotFound,
		pg.ErrMigrationsDirEmpty,
	}
	for i, want := range sentinels {
		err := errors.Join(want, errors.New("dial tcp: refused"))
		for j, other := range sentinels {
			assert.Equal(t, i == j, errors.Is(err, other), "%v vs %v", want, other)
		}
	}
}
