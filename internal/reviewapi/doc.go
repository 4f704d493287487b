// Sentiment Pipeline - Review Intelligence Dashboard
// Copyright 2026 Rutuja S. (rutuja395)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rutuja395/sentiment-pipelinev1

// Package reviewapi provides the HTTP client for the review intelligence
// backend.
//
// # Overview
//
// The backend exposes five REST endpoints consumed by the dashboard:
//
//   - GET  /api/locations            - list of location identifiers
//   - GET  /api/stats/:id            - aggregate statistics for a location
//   - GET  /api/insights/:id         - AI-generated insights (regenerate flag)
//   - POST /api/chat                 - conversational query over reviews
//   - GET  /api/reviews              - filtered review search
//
// The Client interface abstracts these calls so the dashboard controller
// can be tested with a fake implementation.
//
// # Resilience
//
// HTTPClient applies client-side rate limiting (golang.org/x/time/rate) and
// retries HTTP 429 responses with exponential backoff, honoring Retry-After
// headers when present.
//
// BreakerClient decorates any Client with a circuit breaker
// (github.com/sony/gobreaker/v2). The circuit opens after a 60% failure rate
// over at least 10 requests, stays open for 2 minutes, then allows up to 3
// trial requests in half-open state. State transitions are logged and
// exported as Prometheus metrics.
//
// # Usage
//
//	client := reviewapi.NewHTTPClient(&cfg.Upstream)
//	protected := reviewapi.NewBreakerClient(client)
//
//	stats, err := protected.Stats(ctx, "loc-001")
//	if err != nil {
//	    return fmt.Errorf("failed to fetch stats: %w", err)
//	}
package reviewapi
