// Sentiment Pipeline - Review Intelligence Dashboard
// Copyright 2026 Rutuja S. (rutuja395)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rutuja395/sentiment-pipelinev1

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus Metrics Integration for Production Observability
// This package provides instrumentation for:
// - Dashboard HTTP endpoint latency and throughput
// - Upstream review intelligence API calls and retries
// - Circuit breaker state
// - Cache efficiency
// - Dashboard interaction counters (chat, insights, mode switches)

var (
	// Dashboard HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_http_requests_total",
			Help: "Total number of HTTP requests served by the dashboard",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_http_request_duration_seconds",
			Help:    "Dashboard HTTP request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	HTTPActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_http_active_requests",
			Help: "Current number of in-flight dashboard HTTP requests",
		},
	)

	HTTPRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Upstream Review Intelligence API Metrics
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_upstream_requests_total",
			Help: "Total number of requests issued to the review intelligence backend",
		},
		[]string{"endpoint", "status_code"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_upstream_request_duration_seconds",
			Help:    "Upstream backend request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	UpstreamRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_upstream_retries_total",
			Help: "Total number of upstream request retries after HTTP 429",
		},
		[]string{"endpoint"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dashboard_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_circuit_breaker_requests_total",
			Help: "Total number of requests through the circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"}, // "locations", "stats", "insights"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dashboard_cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_cache_evictions_total",
			Help: "Total number of cache evictions (TTL expiry)",
		},
		[]string{"cache_type"},
	)

	// Dashboard Interaction Metrics
	ChatMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_chat_messages_total",
			Help: "Total number of chat transcript messages appended",
		},
		[]string{"role"}, // "user", "assistant"
	)

	InsightRegenerationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_insight_regenerations_total",
			Help: "Total number of forced insight regenerations",
		},
	)

	ModeSwitchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_mode_switches_total",
			Help: "Total number of dashboard mode switches",
		},
		[]string{"mode"}, // "explore", "chat"
	)

	StaleResponsesDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_stale_responses_dropped_total",
			Help: "Total number of upstream responses discarded because a newer request superseded them",
		},
		[]string{"panel"}, // "stats", "insights", "reviews", "chat"
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dashboard_app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordHTTPRequest records a dashboard HTTP request metric
func RecordHTTPRequest(method, endpoint, statusCode string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordUpstreamRequest records an upstream backend request metric
func RecordUpstreamRequest(endpoint, statusCode string, duration time.Duration) {
	UpstreamRequestsTotal.WithLabelValues(endpoint, statusCode).Inc()
	UpstreamRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordUpstreamRetry records a retry of an upstream request
func RecordUpstreamRetry(endpoint string) {
	UpstreamRetriesTotal.WithLabelValues(endpoint).Inc()
}

// RecordHTTPRateLimitHit records a request rejected by the rate limiter
func RecordHTTPRateLimitHit(endpoint string) {
	HTTPRateLimitHits.WithLabelValues(endpoint).Inc()
}

// TrackActiveRequest tracks in-flight dashboard HTTP requests
func TrackActiveRequest(inc bool) {
	if inc {
		HTTPActiveRequests.Inc()
	} else {
		HTTPActiveRequests.Dec()
	}
}

// SetCircuitBreakerState sets the breaker state gauge
// (0=closed, 1=half-open, 2=open)
func SetCircuitBreakerState(name string, state float64) {
	CircuitBreakerState.WithLabelValues(name).Set(state)
}

// RecordCircuitBreakerRequest records the outcome of a request through the breaker
func RecordCircuitBreakerRequest(name, result string) {
	CircuitBreakerRequests.WithLabelValues(name, result).Inc()
}

// RecordCircuitBreakerTransition records a breaker state transition
func RecordCircuitBreakerTransition(name, fromState, toState string) {
	CircuitBreakerTransitions.WithLabelValues(name, fromState, toState).Inc()
}

// RecordCacheHit records a cache hit for the given cache type
func RecordCacheHit(cacheType string) {
	CacheHits.WithLabelValues(cacheType).Inc()
}

// RecordCacheMiss records a cache miss for the given cache type
func RecordCacheMiss(cacheType string) {
	CacheMisses.WithLabelValues(cacheType).Inc()
}

// RecordCacheEviction records TTL evictions for the given cache type
func RecordCacheEviction(cacheType string, count int) {
	CacheEvictions.WithLabelValues(cacheType).Add(float64(count))
}

// SetCacheEntries updates the entry count gauge for the given cache type
func SetCacheEntries(cacheType string, count int) {
	CacheSize.WithLabelValues(cacheType).Set(float64(count))
}

// RecordChatMessage records a message appended to the chat transcript
func RecordChatMessage(role string) {
	ChatMessagesTotal.WithLabelValues(role).Inc()
}

// RecordInsightRegeneration records a forced insight regeneration
func RecordInsightRegeneration() {
	InsightRegenerationsTotal.Inc()
}

// RecordModeSwitch records a dashboard mode switch
func RecordModeSwitch(mode string) {
	ModeSwitchesTotal.WithLabelValues(mode).Inc()
}

// RecordStaleResponseDropped records an upstream response that was discarded
// because a newer request for the same panel had already been issued.
func RecordStaleResponseDropped(panel string) {
	StaleResponsesDropped.WithLabelValues(panel).Inc()
}
