// Package redis connects to Redis with go-redis/v9 and exposes a health probe.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	store := session.NewRedisStore(client, users, session.WithRedisKeyPrefix(cfg.SessionPrefix))
//	checks = append(checks, redis.Healthcheck(client))
package redis
