package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/philly/showcase/backend/internal/adapters/rest"
	"github.com/philly/showcase/backend/internal/adapters/rest/middleware"
	"github.com/philly/showcase/backend/internal/platform/logger"
	"github.com/philly/showcase/backend/internal/platform/metrics"
)

// NewHTTPServer creates and configures the HTTP server with all routes
func NewHTTPServer(
	config Config,
	showcaseHandler *rest.ShowcaseHandler,
	healthHandler *rest.HealthHandler,
	rateLimiter *middleware.RateLimiter,
	recorder *metrics.Recorder,
	log logger.Logger,
) *http.Server {
	return &http.Server{
		Addr:         config.ServerAddress,
		Handler:      newRouter(showcaseHandler, healthHandler, rateLimiter, recorder, log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func newRouter(
	showcaseHandler *rest.ShowcaseHandler,
	healthHandler *rest.HealthHandler,
	rateLimiter *middleware.RateLimiter,
	recorder *metrics.Recorder,
	log logger.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(withObservability(recorder, log))
	r.Use(chimw.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteJSONError(w, "NOT_FOUND", "", "route not found", http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteJSONError(w, "BAD_REQUEST", "", "method not allowed", http.StatusMethodNotAllowed)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health/live", healthHandler.GetLiveness)
		r.Get("/health/ready", healthHandler.GetReadiness)

		r.Route("/showcase", func(r chi.Router) {
			r.Get("/", showcaseHandler.ListListings)
			r.With(rateLimiter.Middleware).Post("/", showcaseHandler.PublishListing)
			r.Get("/{id}", showcaseHandler.GetListing)
			r.Delete("/{id}", showcaseHandler.DeleteListing)
		})
	})

	r.Method(http.MethodGet, "/metrics", recorder.Handler())

	return r
}

// withObservability adds request logging and metrics. It runs inside the
// router so the matched route pattern and request id are visible.
func withObservability(recorder *metrics.Recorder, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Use chi's response writer wrapper to capture status code and bytes written
			wrr := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(wrr, r)

			duration := time.Since(start)

			// The route pattern is only known once chi has matched the request
			route := ""
			if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
				route = routeCtx.RoutePattern()
			}

			status := wrr.Status()
			if status == 0 {
				status = http.StatusOK
			}

			recorder.ObserveHTTPRequest(r.Method, route, status, duration)

			log.Info(r.Context(), "HTTP request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"route", route,
				"status", status,
				"duration_ms", duration.Milliseconds(),
				"request_id", chimw.GetReqID(r.Context()),
				"remote_addr", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		})
	}
}
