package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/starterkit/pkg/logger"
)

// Check is a named readiness probe, e.g. pg.Healthcheck(pool).
type Check struct {
	Name  string
	Probe func(context.Context) error
}

// HealthStatus is the JSON body written by HealthCheckHandler.
type HealthStatus struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

const checkTimeout = 3 * time.Second

// HealthCheckHandler serves liveness when no checks are given ("alive", 200)
// and readiness otherwise: every check runs with a short timeout and any
// failure answers 503 with the failing check marked "unavailable".
// Error details are logged, never returned to the client.
func HealthCheckHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if len(checks) == 0 {
			writeHealth(w, http.StatusOK, HealthStatus{Status: "alive"})
			return
		}

		body := HealthStatus{Status: "ready", Checks: make(map[string]string, len(checks))}
		code := http.StatusOK

		for _, c := range checks {
			ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
			err := c.Probe(ctx)
			cancel()

			if err != nil {
				log.ErrorContext(r.Context(), "readiness check failed",
					logger.Component("healthcheck"),
					slog.String("check", c.Name),
					logger.Error(err),
				)
				body.Checks[c.Name] = "unavailable"
				body.Status = "not_ready"
				code = http.StatusServiceUnavailable
				continue
			}
			body.Checks[c.Name] = "ok"
		}

		writeHealth(w, code, body)
	}
}

func writeHealth(w http.ResponseWriter, code int, body HealthStatus) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
