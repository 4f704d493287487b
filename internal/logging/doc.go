// Sentiment Pipeline - Review Intelligence Dashboard
// Copyright 2026 Rutuja S. (rutuja395)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rutuja395/sentiment-pipelinev1

// Package logging provides centralized zerolog-based structured logging
// for the dashboard service.
//
// All packages log through the global logger configured here. JSON output
// for production, console output for development.
//
// # Quick Start
//
//	// Initialize at application startup
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	// Log messages with structured fields
//	logging.Info().Str("location", id).Msg("Stats loaded")
//	logging.Error().Err(err).Msg("Upstream request failed")
//
//	// Request-scoped logging with request/correlation IDs
//	logging.Ctx(ctx).Warn().Msg("Insight regeneration slow")
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
//
// # Component Loggers
//
// Create component-specific loggers with default fields:
//
//	clientLogger := logging.WithComponent("reviewapi")
//	clientLogger.Info().Msg("Client ready")
//
// # slog Adapter
//
// An slog adapter is provided for libraries that require *slog.Logger,
// in particular the sutureslog event hook:
//
//	handler := &sutureslog.Handler{Logger: logging.NewSlogLogger()}
//
// # Thread Safety
//
// All exported functions are safe for concurrent use. The global logger
// is protected by sync.RWMutex for configuration changes.
package logging
