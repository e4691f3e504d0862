package cookie

import (
	"net/http"
	"strings"
)

// Config is read from COOKIE_* variables. Secrets is a comma-separated
// list, newest first; each must be at least 32 characters.
type Config struct {
	Secrets  string        `env:"COOKIE_SECRETS,required"`
	Path     string        `env:"COOKIE_PATH" envDefault:"/"`
	Domain   string        `env:"COOKIE_DOMAIN"`
	Secure   bool          `env:"COOKIE_SECURE"`
	HttpOnly bool          `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"2"` // 2 = Lax, 3 = Strict
}

// DefaultConfig mirrors the env defaults, without secrets.
func DefaultConfig() Config {
	return Config{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode}
}

// NewFromConfig builds a Manager from cfg; opts are applied last.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	var secrets []string
	for s := range strings.SplitSeq(cfg.Secrets, ",") {
		secrets = append(secrets, strings.TrimSpace(s))
	}

	base := []Option{
		WithDomain(cfg.Domain),
		WithSecure(cfg.Secure),
		WithHTTPOnly(cfg.HttpOnly),
	}
	if cfg.Path != "" {
		base = append(base, WithPath(cfg.Path))
	}
	if cfg.SameSite != 0 {
		base = append(base, WithSameSite(cfg.SameSite))
	}

	return New(secrets, append(base, opts...)...)
}
