// Package httptransport assembles the HTTP surface: feature handlers mounted
// on a shared chi router with the platform middleware chain.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"apptrust/internal/platform/middleware"
	registryhandler "apptrust/internal/registry/handler"
	trusthandler "apptrust/internal/trust/handler"
	"apptrust/pkg/platform/httputil"
)

// HealthChecker reports readiness of a backing dependency.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Deps collects everything the router mounts. Nil optional fields are skipped.
type Deps struct {
	Logger    *slog.Logger
	Trust     *trusthandler.Handler
	Registry  *registryhandler.Handler
	Validator middleware.TokenValidator

	// RateLimit guards the API routes when set. Health endpoints stay
	// unmetered so probes never get throttled.
	RateLimit func(http.Handler) http.Handler

	// Health dependencies probed by /healthz, keyed by component name.
	Health map[string]HealthChecker
}

// NewRouter builds the full route tree. Trust read endpoints are public;
// descriptor evaluation and the package index admin API require a valid
// bearer token.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.Logger))

	r.Get("/healthz", handleHealth(deps.Health))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		if deps.RateLimit != nil {
			r.Use(deps.RateLimit)
		}
		deps.Trust.Register(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(deps.Validator, deps.Logger))
			deps.Trust.RegisterProtected(r)
			deps.Registry.Register(r)
		})
	})

	return r
}

func handleHealth(checks map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		status := http.StatusOK
		components := make(map[string]string, len(checks))
		for name, check := range checks {
			if err := check.Health(ctx); err != nil {
				components[name] = err.Error()
				status = http.StatusServiceUnavailable
				continue
			}
			components[name] = "ok"
		}

		httputil.WriteJSON(w, status, map[string]any{
			"status":     httpStatusLabel(status),
			"components": components,
		})
	}
}

func httpStatusLabel(status int) string {
	if status == http.StatusOK {
		return "healthy"
	}
	return "degraded"
}
