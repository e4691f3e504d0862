// Package pg bootstraps PostgreSQL access on top of pgx/v5 and goose/v3.
//
// Connect opens a *pgxpool.Pool from Config (PG_* environment variables),
// retrying while the database comes up. Migrate runs the goose migrations
// embedded in the binary through the same pool. Healthcheck returns a probe
// for the readiness endpoint. IsNotFoundError and IsDuplicateKeyError classify
// driver errors for storage adapters.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, db.Migrations, cfg, log); err != nil {
//	    return err
//	}
package pg
