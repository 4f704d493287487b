// Sentiment Pipeline - Review Intelligence Dashboard
// Copyright 2026 Rutuja S. (rutuja395)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rutuja395/sentiment-pipelinev1

// Package main is the entry point for the review intelligence dashboard.
//
// The dashboard is a server-rendered control panel over a Review
// Intelligence backend API. It consumes the backend's locations, stats,
// insights, chat, and review-search endpoints and renders an HTML
// dashboard with an explore mode (stats, insights, filtered review
// results) and a chat mode (conversational Q&A over reviews).
//
// # Application Architecture
//
// Components initialize in the following order:
//
//  1. Configuration: Koanf v2 layered loading (env vars, config.yaml, defaults)
//  2. Review API client: rate-limited HTTP client wrapped in a circuit breaker
//  3. Dashboard state: in-memory store plus the controller that drives it
//  4. Renderer: embedded html/template set for the page and its fragments
//  5. HTTP router: chi with CORS, rate limiting, Prometheus, Swagger
//  6. Supervisor tree: suture tree running bootstrap and the HTTP server
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins): environment variables, config file (config.yaml),
// built-in defaults. The only required setting is the backend URL:
//
//	export REVIEW_API_URL=http://localhost:8000
//	./dashboard
//
// # Signal Handling
//
// The process shuts down gracefully on SIGINT and SIGTERM: the HTTP
// server stops accepting connections and drains in-flight requests
// within the configured shutdown timeout.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/rutuja395/sentiment-pipelinev1/docs" // generated swagger docs
	"github.com/rutuja395/sentiment-pipelinev1/internal/api"
	"github.com/rutuja395/sentiment-pipelinev1/internal/cache"
	"github.com/rutuja395/sentiment-pipelinev1/internal/config"
	"github.com/rutuja395/sentiment-pipelinev1/internal/dashboard"
	"github.com/rutuja395/sentiment-pipelinev1/internal/logging"
	"github.com/rutuja395/sentiment-pipelinev1/internal/render"
	"github.com/rutuja395/sentiment-pipelinev1/internal/reviewapi"
	"github.com/rutuja395/sentiment-pipelinev1/internal/supervisor"
	"github.com/rutuja395/sentiment-pipelinev1/internal/supervisor/services"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configPath := flag.String("config", "", "path to config file (overrides CONFIG_PATH)")
	flag.Parse()
	if *showVersion {
		fmt.Println(version)
		return
	}
	if *configPath != "" {
		os.Setenv(config.ConfigPathEnvVar, *configPath)
	}

	// Load configuration first to get logging settings.
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("upstream_url", cfg.Upstream.URL).
		Str("default_mode", cfg.Dashboard.DefaultMode).
		Msg("Starting review intelligence dashboard")

	// Review API client with client-side rate limiting, wrapped in a
	// circuit breaker so a failing backend degrades the dashboard
	// instead of hammering the upstream.
	httpClient := reviewapi.NewHTTPClient(&cfg.Upstream)
	breaker := reviewapi.NewBreakerClient(httpClient)

	store := dashboard.NewStore(cfg.Dashboard.DefaultMode)
	responseCache := cache.New("dashboard", cfg.Dashboard.CacheTTL)
	controller := dashboard.NewController(breaker, store, responseCache, &cfg.Dashboard)

	renderer, err := render.New()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to parse templates")
	}

	router := api.NewRouter(cfg, controller, renderer, breaker, responseCache)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for sutureslog.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	// Bootstrap runs under supervision so the server can come up while
	// the backend is still unreachable; suture retries the initial load
	// with backoff until it succeeds.
	tree.AddUpstreamService(services.NewBootstrapService(controller))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain until the supervisor has fully stopped.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Dashboard stopped gracefully")
}
