// Sentiment Pipeline - Review Intelligence Dashboard
// Copyright 2026 Rutuja S. (rutuja395)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rutuja395/sentiment-pipelinev1

// Package main provides the Review Intelligence Dashboard HTTP server
//
// @title Review Intelligence Dashboard API
// @version 1.0
// @description Server-rendered dashboard over a Review Intelligence backend.
// @description
// @description ## Features
// @description
// @description - **Explore Mode**: Location stats, AI-generated insights, and filtered review search
// @description - **Chat Mode**: Conversational Q&A over a location's reviews
// @description - **Resilient Upstream**: Rate-limited client with retries and a circuit breaker
// @description - **Caching**: In-memory TTL cache for locations, stats, and insights
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 120 requests per minute per IP address, with a
// @description stricter per-IP limit on the chat endpoint since every chat message
// @description triggers a backend LLM call.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable error message",
// @description     "details": {}
// @description   },
// @description   "meta": {
// @description     "timestamp": "2026-08-29T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/rutuja395/sentiment-pipelinev1/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Dashboard
// @tag.description Server-rendered dashboard page and HTML fragment endpoints
//
// @tag.name State
// @tag.description JSON view of the dashboard's current state
//
// @tag.name Health
// @tag.description Liveness and upstream health reporting
package main
