package logger

import (
	"log/slog"

	"github.com/dmitrymomot/starterkit/pkg/environment"
)

// Config holds logger settings loaded from the environment.
type Config struct {
	// Level overrides the environment preset level when set.
	Level string `env:"LOG_LEVEL"`
	// Format overrides the environment preset format when set ("json" or "text").
	Format string `env:"LOG_FORMAT"`
}

// NewFromConfig builds a logger from the environment preset, then applies
// Config overrides and any extra options.
func NewFromConfig(cfg Config, env environment.Environment, service string, opts ...Option) *slog.Logger {
	all := []Option{WithEnvironment(env, service), WithLevelName(cfg.Level)}
	if cfg.Format != "" {
		all = append(all, WithFormat(Format(cfg.Format)))
	}
	return New(append(all, opts...)...)
}
