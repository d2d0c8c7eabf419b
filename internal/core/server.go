// Package core provides the API chassis: a chi router with the cross-cutting
// middleware chain (recovery, timeouts, request IDs, logging, metrics), the
// standard JSON response envelopes, and the health endpoint.
package core

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blaketime/woodsmoke/internal/config"
	"github.com/blaketime/woodsmoke/internal/observability"
)

// Server encapsulates all dependencies for the API, allowing for easy
// injection during testing.
type Server struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *observability.Metrics

	// V1RouteRegistrars are called while mounting /v1. Populated by the
	// application entry point; the indirection avoids import cycles between
	// core and handler packages.
	V1RouteRegistrars []func(chi.Router)

	router *chi.Mux
}

// NewServer initializes the chassis. The caller mounts routes (MountRoutes)
// after registering handlers.
func NewServer(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}

	return &Server{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics,
		router:  chi.NewRouter(),
	}, nil
}

// Handler returns the http.Handler for the router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Router returns the underlying chi.Mux for route registration in tests.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Shutdown performs a graceful termination of server resources.
func (s *Server) Shutdown(_ context.Context) error {
	s.Logger.Info("server shutdown complete")
	return nil
}
