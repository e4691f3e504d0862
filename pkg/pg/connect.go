package pg

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens a pool and pings it. Attempt n waits n*RetryInterval first,
// so the service can start while the database is still booting.
func Connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	poolCfg, err := poolConfig(cfg)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	var lastErr error
	for attempt := range max(cfg.RetryAttempts, 1) {
		if err := wait(ctx, time.Duration(attempt)*cfg.RetryInterval); err != nil {
			return nil, errors.Join(ErrConnect, err)
		}

		var pool *pgxpool.Pool
		if pool, lastErr = dial(ctx, poolCfg); lastErr == nil {
			return pool, nil
		}
	}
	return nil, errors.Join(ErrConnect, lastErr)
}

func poolConfig(cfg Config) (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(cfg.ConnectionString)
	if err != nil {
		return nil, err
	}
	pc.MaxConns = cfg.MaxOpenConns
	pc.MinConns = cfg.MaxIdleConns
	pc.HealthCheckPeriod = cfg.HealthCheckPeriod
	pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	pc.MaxConnLifetime = cfg.MaxConnLifetime
	return pc, nil
}

// dial pings the new pool so bad credentials fail here, not on first query.
func dial(ctx context.Context, pc *pgxpool.Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
