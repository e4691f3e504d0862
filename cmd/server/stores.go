package main

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/starterkit/db"
	"github.com/dmitrymomot/starterkit/pkg/auth"
	"github.com/dmitrymomot/starterkit/pkg/config"
	"github.com/dmitrymomot/starterkit/pkg/httpserver"
	"github.com/dmitrymomot/starterkit/pkg/logger"
	"github.com/dmitrymomot/starterkit/pkg/mongo"
	"github.com/dmitrymomot/starterkit/pkg/pg"
	"github.com/dmitrymomot/starterkit/pkg/ratelimiter"
	"github.com/dmitrymomot/starterkit/pkg/redis"
	"github.com/dmitrymomot/starterkit/pkg/session"
)

// stores bundles the account, session and rate limit backends with their
// readiness checks and shutdown hooks.
type stores struct {
	users    auth.Storage
	sessions session.Store
	checks   []httpserver.Check
	limiter  ratelimiter.Store

	closers   []func(context.Context) error
	closeOnce sync.Once
}

func (s *stores) close(log *slog.Logger) {
	s.closeOnce.Do(func() {
		ctx := context.Background()
		for i := len(s.closers) - 1; i >= 0; i-- {
			if err := s.closers[i](ctx); err != nil {
				log.Error("failed to close store", logger.Error(err))
			}
		}
	})
}

func openStores(ctx context.Context, cfg appConfig, log *slog.Logger) (*stores, error) {
	s := &stores{}

	switch cfg.StoreDriver {
	case "memory", "":
		users := auth.NewMemoryStorage()
		s.users = users
		s.sessions = session.NewMemoryStore(auth.IdentityFinder(users))

	case "postgres":
		var pgCfg pg.Config
		if err := config.Load(&pgCfg); err != nil {
			return nil, err
		}
		pool, err := pg.Connect(ctx, pgCfg)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func(context.Context) error { pool.Close(); return nil })

		if err := pg.Migrate(ctx, pool, db.Migrations, pgCfg, log); err != nil {
			s.close(log)
			return nil, err
		}

		s.users = auth.NewPostgresStorage(pool)
		s.sessions = session.NewPostgresStore(pool)
		s.checks = append(s.checks, httpserver.Check{Name: "postgres", Probe: pg.Healthcheck(pool)})

	case "mongo":
		var mongoCfg mongo.Config
		if err := config.Load(&mongoCfg); err != nil {
			return nil, err
		}
		database, err := mongo.NewWithDatabase(ctx, mongoCfg)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func(ctx context.Context) error { return database.Client().Disconnect(ctx) })

		users := auth.NewMongoStorage(database)
		if err := users.EnsureIndexes(ctx); err != nil {
			s.close(log)
			return nil, err
		}

		s.users = users
		s.sessions = session.NewMongoStore(database)
		s.checks = append(s.checks, httpserver.Check{Name: "mongo", Probe: mongo.Healthcheck(database.Client())})

	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	if cfg.SessionStore == "redis" {
		var redisCfg redis.Config
		if err := config.Load(&redisCfg); err != nil {
			s.close(log)
			return nil, err
		}
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			s.close(log)
			return nil, err
		}
		s.closers = append(s.closers, func(context.Context) error { return client.Close() })

		s.sessions = session.NewRedisStore(client, auth.IdentityFinder(s.users),
			session.WithRedisKeyPrefix(redisCfg.SessionPrefix),
		)
		s.checks = append(s.checks, httpserver.Check{Name: "redis", Probe: redis.Healthcheck(client)})
		s.limiter = ratelimiter.NewRedisStore(client, "ratelimit:")
	} else {
		mem := ratelimiter.NewMemoryStore()
		s.closers = append(s.closers, func(context.Context) error { mem.Close(); return nil })
		s.limiter = mem
	}

	return s, nil
}
