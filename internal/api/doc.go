// Sentiment Pipeline - Review Intelligence Dashboard
// Copyright 2026 Rutuja S. (rutuja395)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rutuja395/sentiment-pipelinev1

// Package api provides the dashboard's HTTP surface on the chi router.
//
// # Routes
//
// HTML routes drive the dashboard with plain forms, no client-side script
// required:
//
//   - GET  /                              - full dashboard page
//   - POST /dashboard/location            - switch location, 303 redirect
//   - POST /dashboard/mode                - switch mode, 303 redirect
//   - GET  /dashboard/stats               - stats panel fragment
//   - GET  /dashboard/insights            - insights panel fragment
//   - POST /dashboard/insights/regenerate - forced recomputation
//   - POST /dashboard/chat                - chat submission, transcript fragment
//   - GET  /dashboard/reviews             - filtered review results fragment
//
// JSON routes expose the typed state and health in the standard envelope:
//
//   - GET /api/v1/state  - dashboard state snapshot
//   - GET /api/v1/health - circuit breaker state, cache stats, uptime
//
// Operational routes: GET /metrics (Prometheus) and GET /swagger/*.
//
// # Middleware
//
// Global: request ID with logging context, RealIP, Recoverer, CORS
// (go-chi/cors), request logging. Per-group: per-IP rate limiting
// (go-chi/httprate) with a stricter budget for chat, security headers on
// API routes, Prometheus instrumentation, gzip compression.
//
// Form and query inputs are validated with go-playground/validator before
// reaching the controller; malformed input gets a 400 with the standard
// error envelope.
package api
