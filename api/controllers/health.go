package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/afromanapp/afroman-backend/api/responses"
	"github.com/afromanapp/afroman-backend/pkg/config"
	"github.com/afromanapp/afroman-backend/pkg/logger"
)

// Pinger is the readiness surface of an infrastructure client.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Afroman-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports per-dependency readiness. Any failing dependency flips
// the response to 503 with the individual check results attached.
func HealthReady(cfg *config.Config, logg *logger.Logger, db Pinger, redis Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		w.Header().Set("X-Afroman-Env", cfg.App.Env)

		checks := map[string]string{}
		healthy := true

		for name, p := range map[string]Pinger{"db": db, "redis": redis} {
			if p == nil {
				checks[name] = "not configured"
				healthy = false
				continue
			}
			if err := p.Ping(ctx); err != nil {
				if logg != nil {
					logg.Error(ctx, "health check failed: "+name, err)
				}
				checks[name] = err.Error()
				healthy = false
				continue
			}
			checks[name] = "ok"
		}

		status := http.StatusOK
		label := "ready"
		if !healthy {
			status = http.StatusServiceUnavailable
			label = "degraded"
		}
		responses.WriteSuccessStatus(w, status, map[string]any{
			"status": label,
			"checks": checks,
		})
	}
}
