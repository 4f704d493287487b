// Sentiment Pipeline - Review Intelligence Dashboard
// Copyright 2026 Rutuja S. (rutuja395)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rutuja395/sentiment-pipelinev1

/*
Package metrics provides Prometheus metrics collection and export for observability.

This package implements application instrumentation using the Prometheus client
library, exposing metrics for monitoring dashboard traffic, upstream backend
health, and interaction behaviour.

# Overview

The package provides metrics for:
  - Dashboard HTTP request latency and throughput
  - Upstream review intelligence API calls, retries, and latency
  - Circuit breaker state transitions
  - Cache hit/miss/eviction rates
  - Chat, insight regeneration, and mode switch counters
  - Stale response drops from superseded panel loads

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

HTTP Metrics:
  - dashboard_http_requests_total: Total HTTP requests (counter)
    Labels: method, endpoint, status_code
  - dashboard_http_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - dashboard_http_active_requests: In-flight requests (gauge)
  - dashboard_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Upstream Metrics:
  - dashboard_upstream_requests_total: Backend requests (counter)
    Labels: endpoint, status_code
  - dashboard_upstream_request_duration_seconds: Backend latency (histogram)
    Labels: endpoint
  - dashboard_upstream_retries_total: Retries after HTTP 429 (counter)
    Labels: endpoint

Circuit Breaker Metrics:
  - dashboard_circuit_breaker_state: Current state (gauge)
    Labels: name
    Values: 0=closed, 1=half-open, 2=open
  - dashboard_circuit_breaker_requests_total: Request outcomes (counter)
    Labels: name, result
  - dashboard_circuit_breaker_state_transitions_total: Transitions (counter)
    Labels: name, from_state, to_state

Cache Metrics:
  - dashboard_cache_hits_total / dashboard_cache_misses_total (counters)
    Labels: cache_type (locations, stats, insights)
  - dashboard_cache_evictions_total: TTL evictions (counter)
    Labels: cache_type
  - dashboard_cache_entries: Current entry count (gauge)
    Labels: cache_type

Interaction Metrics:
  - dashboard_chat_messages_total: Transcript messages (counter)
    Labels: role (user, assistant)
  - dashboard_insight_regenerations_total: Forced regenerations (counter)
  - dashboard_mode_switches_total: Mode switches (counter)
    Labels: mode (explore, chat)
  - dashboard_stale_responses_dropped_total: Superseded responses (counter)
    Labels: panel (stats, insights, reviews, chat)

# Usage

Metrics are recorded through the helper functions rather than by touching the
collectors directly:

	start := time.Now()
	// ... handle request ...
	metrics.RecordHTTPRequest("GET", "/dashboard/stats", "200", time.Since(start))

All collectors are registered with the default Prometheus registry via promauto
at package init and are safe for concurrent use.
*/
package metrics
