package httpserver

import (
	"log/slog"
	"time"
)

// Option configures a Server. Invalid values panic at construction time.
type Option func(*config)

func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver: empty addr")
	}
	return func(c *config) { c.addr = addr }
}

// positive guards the timeout options.
func positive(name string, d time.Duration) time.Duration {
	if d <= 0 {
		panic("httpserver: " + name + " must be > 0")
	}
	return d
}

func WithReadTimeout(d time.Duration) Option {
	d = positive("read timeout", d)
	return func(c *config) { c.readTimeout = d }
}

func WithReadHeaderTimeout(d time.Duration) Option {
	d = positive("read header timeout", d)
	return func(c *config) { c.readHeaderTimeout = d }
}

func WithWriteTimeout(d time.Duration) Option {
	d = positive("write timeout", d)
	return func(c *config) { c.writeTimeout = d }
}

func WithIdleTimeout(d time.Duration) Option {
	d = positive("idle timeout", d)
	return func(c *config) { c.idleTimeout = d }
}

// WithShutdownTimeout bounds graceful shutdown, stop hooks excluded.
func WithShutdownTimeout(d time.Duration) Option {
	d = positive("shutdown timeout", d)
	return func(c *config) { c.shutdownTimeout = d }
}

// WithLogger sets the logger; nil discards server logs.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithStopHook runs h after shutdown, e.g. to close database pools. Hooks run
// in registration order.
func WithStopHook(h func(*slog.Logger)) Option {
	if h == nil {
		panic("httpserver: nil stop hook")
	}
	return func(c *config) { c.stopHooks = append(c.stopHooks, h) }
}
