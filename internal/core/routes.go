package core

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// defaultRequestTimeout is the soft timeout applied to request contexts when
// the config does not specify one.
const defaultRequestTimeout = 29 * time.Second

// MountRoutes defines the top-level routing hierarchy: the global middleware
// chain, the /v1 API group, and the operational endpoints.
func (s *Server) MountRoutes() {
	s.registerGlobalMiddleware()

	s.router.Route("/v1", s.mountV1)

	s.router.Get("/health", s.HandleHealth)
	s.router.Handle("/metrics", promhttp.Handler())
}

// registerGlobalMiddleware applies middleware in strict order:
//  1. Recoverer      - catches panics; outermost to catch all failures.
//  2. ContextTimeout - sets a soft deadline on every request.
//  3. RequestID      - generates/propagates a correlation ID.
//  4. RequestLogger  - structured request logging.
//  5. Metrics        - request latency and count recording.
func (s *Server) registerGlobalMiddleware() {
	s.router.Use(s.Recoverer)
	s.router.Use(ContextTimeoutMiddleware(s.requestTimeout()))
	s.router.Use(RequestIDMiddleware)
	s.router.Use(RequestLogger(s.Logger))
	s.router.Use(s.MetricsMiddleware)
}

func (s *Server) mountV1(r chi.Router) {
	for _, registrar := range s.V1RouteRegistrars {
		registrar(r)
	}
}

func (s *Server) requestTimeout() time.Duration {
	if s.Config != nil && s.Config.Server.RequestTimeout > 0 {
		return s.Config.Server.RequestTimeout
	}
	return defaultRequestTimeout
}
