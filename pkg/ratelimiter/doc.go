// Package ratelimiter provides a token bucket limiter with in-memory and
// Redis storage.
//
// A bucket holds up to Capacity tokens and regains RefillRate tokens every
// RefillInterval. Each request takes one token; a request that finds the
// bucket short is denied without draining it further, so a throttled client
// recovers at the normal refill pace.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       10,
//		RefillRate:     1,
//		RefillInterval: time.Minute,
//	})
//
//	res, err := limiter.Allow(ctx, ratelimiter.ByRemoteIP("sign-in:")(r))
//	if err == nil && !res.Allowed() {
//		ratelimiter.SetHeaders(w, res, time.Now())
//		// answer 429
//	}
//
// Use RedisStore when several instances must share the same budget.
package ratelimiter
