// Package main is the entry point for the Woodsmoke API server.
//
// It loads configuration, builds the weather pipeline (upstream client,
// forecast/historical service), loads the park dataset, wires the HTTP
// handlers onto the core chassis (middleware, routing, health, metrics),
// and listens for requests until an OS signal requests shutdown.
//
// Graceful shutdown is handled via OS signal interception (SIGINT, SIGTERM).
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/blaketime/woodsmoke/internal/api/handlers"
	"github.com/blaketime/woodsmoke/internal/config"
	"github.com/blaketime/woodsmoke/internal/core"
	"github.com/blaketime/woodsmoke/internal/external"
	"github.com/blaketime/woodsmoke/internal/observability"
	"github.com/blaketime/woodsmoke/internal/parks"
	"github.com/blaketime/woodsmoke/internal/weather"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// run encapsulates the startup lifecycle so that main() can cleanly exit on error.
func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)
	logger.Info("woodsmoke API starting",
		"environment", cfg.Environment,
		"service", cfg.Service,
		"port", cfg.Server.Port,
	)

	repo, err := parks.NewRepository()
	if err != nil {
		return fmt.Errorf("loading park dataset: %w", err)
	}
	logger.Info("park dataset loaded", "parks", repo.Len())

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

	retryPolicy := external.DefaultRetryPolicy()
	retryPolicy.MaxRetries = cfg.Weather.MaxRetries
	baseClient := external.NewBaseClient(
		&http.Client{Timeout: cfg.Weather.FetchTimeout},
		"open-meteo",
		retryPolicy,
		cfg.Weather.UserAgent,
	)

	weatherClient := weather.NewClient(baseClient, cfg.Weather.ForecastBaseURL, cfg.Weather.ArchiveBaseURL)
	weatherService := weather.NewService(weatherClient, logger,
		weather.WithHorizonDays(cfg.Weather.ForecastHorizonDays),
		weather.WithHistoricalYears(cfg.Weather.HistoricalYears),
		weather.WithFetchTimeout(cfg.Weather.FetchTimeout),
		weather.WithMetrics(metrics),
	)

	srv, err := core.NewServer(cfg, logger, metrics)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	parksHandler := handlers.NewParksHandler(repo, weatherService, logger)
	srv.V1RouteRegistrars = append(srv.V1RouteRegistrars, func(r chi.Router) {
		parksHandler.RegisterRoutes(r)
	})

	srv.MountRoutes()

	return runHTTPServer(srv, cfg, logger)
}

// runHTTPServer starts the server in standard HTTP mode with graceful shutdown.
func runHTTPServer(srv *core.Server, cfg *config.Config, logger *slog.Logger) error {
	addr := ":" + cfg.Server.Port

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErr := make(chan error, 1)

	go func() {
		logger.Info("HTTP server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-shutdown:
		logger.Info("shutdown signal received", "signal", sig.String())
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	logger.Info("initiating graceful shutdown")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("server stopped cleanly")
	return nil
}

// newLogger creates a structured slog.Logger configured for the given log level.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
