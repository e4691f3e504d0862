package session

import (
	"fmt"
	"time"
)

// Config holds session configuration
type Config struct {
	// CookieName is the name of the session cookie (default: "session")
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"session"`

	// Lifetime is how long a freshly created or renewed session stays valid.
	Lifetime time.Duration `env:"SESSION_LIFETIME" envDefault:"720h"`

	// RenewalWindow: validation inside the last RenewalWindow of a session's
	// life pushes its expiry to now + Lifetime.
	RenewalWindow time.Duration `env:"SESSION_RENEWAL_WINDOW" envDefault:"360h"`

	// SecureCookies enables the Secure flag on session cookies (always on in production)
	SecureCookies bool `env:"SESSION_SECURE_COOKIES" envDefault:"false"`
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		CookieName:    "session",
		Lifetime:      30 * 24 * time.Hour,
		RenewalWindow: 15 * 24 * time.Hour,
	}
}

// Validate rejects configurations where every validation would renew.
func (c Config) Validate() error {
	switch {
	case c.CookieName == "":
		return fmt.Errorf("%w: empty cookie name", ErrInvalidConfig)
	case c.Lifetime <= 0:
		return fmt.Errorf("%w: lifetime must be positive", ErrInvalidConfig)
	case c.RenewalWindow < 0 || c.RenewalWindow >= c.Lifetime:
		return fmt.Errorf("%w: renewal window must be within [0, lifetime)", ErrInvalidConfig)
	}
	return nil
}

// NewFromConfig creates a new Manager from the provided Config.
// Requires Store via options. Cookie manager required for default cookie transport.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	configOpts := []Option{
		WithConfig(cfg),
	}

	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
