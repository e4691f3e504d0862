// Package config loads typed configuration from the environment.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: Load
// reads an optional ".env" file once, parses the environment into a struct
// using `env` / `envDefault` tags and caches the result per type, so every
// package can declare its own Config and load it independently:
//
//	var cfg struct {
//		Session session.Config
//		PG      pg.Config
//	}
//	config.MustLoad(&cfg)
//
// LoadEnv loads explicit dotenv files instead of the default one, and
// ResetCache clears the per-type cache between tests.
package config
