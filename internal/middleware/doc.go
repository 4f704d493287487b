// Sentiment Pipeline - Review Intelligence Dashboard
// Copyright 2026 Rutuja S. (rutuja395)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rutuja395/sentiment-pipelinev1

// Package middleware provides http.HandlerFunc middleware shared by the
// router: Prometheus request instrumentation and gzip compression. Chi-style
// middleware (request ID, CORS, rate limiting) lives in the api package.
package middleware
