package ratelimiter_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/starterkit/pkg/ratelimiter"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var testConfig = ratelimiter.Config{
	Capacity:       3,
	RefillRate:     1,
	RefillInterval: time.Minute,
}

func newLimiter(t *testing.T) (*ratelimiter.Bucket, *ratelimiter.MemoryStore, *clock) {
	t.Helper()

	clk := &clock{now: time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)}
	store := ratelimiter.NewMemoryStore(ratelimiter.WithClock(clk.Now), ratelimiter.WithCleanupInterval(0))
	t.Cleanup(store.Close)

	limiter, err := ratelimiter.NewBucket(store, testConfig)
	require.NoError(t, err)
	return limiter, store, clk
}

func TestNewBucket_InvalidConfig(t *testing.T) {
	t.Parallel()

	for _, cfg := range []ratelimiter.Config{
		{Capacity: 0, RefillRate: 1, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 0, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 1, RefillInterval: 0},
	} {
		_, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0)), cfg)
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
	}
}

func TestBucket_AllowN_InvalidCount(t *testing.T) {
	t.Parallel()

	limiter, _, _ := newLimiter(t)
	_, err := limiter.AllowN(context.Background(), "k", 0)
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)
}

func TestBucket_BurstThenDeny(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	limiter, _, clk := newLimiter(t)

	for i := range testConfig.Capacity {
		res, err := limiter.Allow(ctx, "client")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
		assert.Equal(t, testConfig.Capacity-1-i, res.Remaining)
	}

	res, err := limiter.Allow(ctx, "client")
	require.NoError(t, err)
	assert.False(t, res.Allowed())
	assert.Equal(t, time.Minute, res.RetryAfter(clk.Now()))

	// Other keys have their own bucket.
	res, err = limiter.Allow(ctx, "someone-else")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
}

func TestBucket_DeniedRequestsDoNotDrain(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	limiter, _, clk := newLimiter(t)

	for range testConfig.Capacity {
		_, err := limiter.Allow(ctx, "client")
		require.NoError(t, err)
	}
	for range 10 {
		res, err := limiter.Allow(ctx, "client")
		require.NoError(t, err)
		assert.False(t, res.Allowed())
	}

	clk.Advance(time.Minute)

	res, err := limiter.Allow(ctx, "client")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
	assert.Equal(t, 0, res.Remaining)
}

func TestBucket_RefillCapsAtCapacity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	limiter, _, clk := newLimiter(t)

	_, err := limiter.AllowN(ctx, "client", testConfig.Capacity)
	require.NoError(t, err)

	clk.Advance(24 * time.Hour)

	res, err := limiter.Allow(ctx, "client")
	require.NoError(t, err)
	assert.Equal(t, testConfig.Capacity-1, res.Remaining)
}

func TestBucket_Reset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	limiter, store, _ := newLimiter(t)

	_, err := limiter.AllowN(ctx, "client", testConfig.Capacity)
	require.NoError(t, err)
	require.Equal(t, 1, store.Len())

	require.NoError(t, limiter.Reset(ctx, "client"))
	assert.Zero(t, store.Len())

	res, err := limiter.Allow(ctx, "client")
	require.NoError(t, err)
	assert.Equal(t, testConfig.Capacity-1, res.Remaining)
}

func TestMemoryStore_Concurrent(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	defer store.Close()
	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 50, RefillRate: 1, RefillInterval: time.Hour})
	require.NoError(t, err)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := limiter.Allow(context.Background(), "shared")
			if err == nil && res.Allowed() {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}

func TestMemoryStore_CloseIsIdempotent(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(time.Millisecond))
	store.Close()
	assert.NotPanics(t, store.Close)
}

func TestByRemoteIP(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/auth/sign-in", nil)
	req.RemoteAddr = "203.0.113.7:52100"
	assert.Equal(t, "sign-in:203.0.113.7", ratelimiter.ByRemoteIP("sign-in:")(req))

	req.RemoteAddr = "203.0.113.7"
	assert.Equal(t, "sign-in:203.0.113.7", ratelimiter.ByRemoteIP("sign-in:")(req))

	long := ratelimiter.ByRemoteIP(strings.Repeat("p", 80))(req)
	assert.LessOrEqual(t, len(long), 64)
}

func TestSetHeaders(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

	w := httptest.NewRecorder()
	ratelimiter.SetHeaders(w, &ratelimiter.Result{Limit: 10, Remaining: 4, ResetAt: now.Add(time.Minute)}, now)
	assert.Equal(t, "10", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))
	assert.Empty(t, w.Header().Get("Retry-After"))

	w = httptest.NewRecorder()
	ratelimiter.SetHeaders(w, &ratelimiter.Result{Limit: 10, Remaining: -1, ResetAt: now.Add(30 * time.Second)}, now)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "30", w.Header().Get("Retry-After"))
}
