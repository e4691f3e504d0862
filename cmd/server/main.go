package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/starterkit/handler"
	"github.com/dmitrymomot/starterkit/modules/account"
	"github.com/dmitrymomot/starterkit/pkg/auth"
	"github.com/dmitrymomot/starterkit/pkg/config"
	"github.com/dmitrymomot/starterkit/pkg/cookie"
	"github.com/dmitrymomot/starterkit/pkg/environment"
	"github.com/dmitrymomot/starterkit/pkg/httpserver"
	"github.com/dmitrymomot/starterkit/pkg/logger"
	"github.com/dmitrymomot/starterkit/pkg/ratelimiter"
	"github.com/dmitrymomot/starterkit/pkg/session"
	"github.com/dmitrymomot/starterkit/views"
)

// appConfig is the process configuration. Datastore settings are loaded
// separately, only for the selected driver.
type appConfig struct {
	Env          string `env:"APP_ENV" envDefault:"development"`
	Name         string `env:"APP_NAME" envDefault:"Starter Kit"`
	StoreDriver  string `env:"STORE_DRIVER" envDefault:"memory"` // memory, postgres or mongo
	SessionStore string `env:"SESSION_STORE"`                    // optional override: redis

	Log       logger.Config
	Cookie    cookie.Config
	Session   session.Config
	Auth      auth.Config
	RateLimit ratelimiter.Config
	HTTP      httpserver.Config
}

func main() {
	if err := config.LoadEnv(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Error("failed to load .env", logger.Error(err))
	}

	var cfg appConfig
	config.MustLoad(&cfg)

	env := environment.Parse(cfg.Env)
	log := logger.NewFromConfig(cfg.Log, env, cfg.Name,
		logger.WithContextExtractors(logger.RequestIDExtractor()),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, env, log); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, env environment.Environment, log *slog.Logger) error {
	stores, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer stores.close(log)

	cookies, err := cookie.NewFromConfig(cfg.Cookie, cookie.WithSecure(env.IsProduction() || cfg.Cookie.Secure))
	if err != nil {
		return err
	}

	sessCfg := cfg.Session
	sessCfg.SecureCookies = sessCfg.SecureCookies || env.IsProduction()
	sessions := session.NewFromConfig(sessCfg,
		session.WithStore(stores.sessions),
		session.WithCookieManager(cookies),
		session.WithLogger(log),
	)

	accounts := auth.NewPasswordServiceFromConfig(stores.users, cfg.Auth, auth.WithPasswordLogger(log))

	limiter, err := ratelimiter.NewBucket(stores.limiter, cfg.RateLimit)
	if err != nil {
		return err
	}

	errorHandler := handler.NewErrorHandler(log, views.ErrorHandlerConfig())
	pages := views.Account()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(environment.Middleware(env))

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, stores.checks...))

	r.Group(func(r chi.Router) {
		r.Use(sessions.Middleware)
		r.Mount("/", account.Router(account.RouterOptions{
			Password: account.NewPasswordService(accounts, sessions, cookies, pages,
				account.WithErrorHandler(errorHandler),
				account.WithLogger(log),
				account.WithSignInLimiter(limiter),
			),
			Session: account.NewSessionAPI(),
			Home:    account.NewHomePage(cfg.Name, pages, errorHandler),
		}))
	})

	r.NotFound(handler.Wrap(func(ctx handler.Context, _ struct{}) handler.Response {
		return handler.Error(handler.ErrNotFound)
	}, handler.WithErrorHandler[handler.Context, struct{}](errorHandler)))

	server := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStopHook(func(l *slog.Logger) {
			stores.close(l)
		}),
	)

	log.Info("starting server",
		slog.String("addr", cfg.HTTP.Addr),
		slog.String("env", env.String()),
		slog.String("store", cfg.StoreDriver),
	)

	return server.Run(ctx, r)
}
