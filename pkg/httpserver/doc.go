// Package httpserver runs an http.Handler with sane timeouts and graceful
// shutdown, and provides liveness/readiness handlers.
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.NewFromConfig(cfg.HTTP,
//		httpserver.WithLogger(log),
//		httpserver.WithStopHook(func(*slog.Logger) { pool.Close() }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Run returns once the context is cancelled and in-flight requests have
// drained or ShutdownTimeout elapsed.
//
// HealthCheckHandler with no checks is a liveness probe. With checks such as
// pg.Healthcheck or redis.Healthcheck it reports readiness as JSON and
// answers 503 when any dependency is down.
package httpserver
