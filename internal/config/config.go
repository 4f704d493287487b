// Sentiment Pipeline - Review Intelligence Dashboard
// Copyright 2026 Rutuja S. (rutuja395)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rutuja395/sentiment-pipelinev1

package config

import "time"

// Config is the root configuration for the dashboard service.
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access
// from multiple goroutines.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Upstream  UpstreamConfig  `koanf:"upstream"`
	Dashboard DashboardConfig `koanf:"dashboard"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP listener settings for the dashboard itself.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// UpstreamConfig holds connection settings for the Review Intelligence
// backend API that the dashboard consumes.
//
// Environment Variables:
//   - REVIEW_API_URL: Backend base URL (e.g., http://localhost:8000) - required
//   - REVIEW_API_TIMEOUT: Per-request timeout (default: 30s)
//   - REVIEW_API_MAX_RETRIES: Max retries on HTTP 429 (default: 3)
//   - REVIEW_API_RATE_LIMIT: Client-side requests per second (default: 10)
type UpstreamConfig struct {
	URL            string        `koanf:"url" validate:"required,url"`
	Timeout        time.Duration `koanf:"timeout"`
	MaxRetries     int           `koanf:"max_retries" validate:"min=0,max=10"`
	RetryBaseDelay time.Duration `koanf:"retry_base_delay"`
	RateLimit      float64       `koanf:"rate_limit" validate:"gt=0"`
	RateBurst      int           `koanf:"rate_burst" validate:"min=1"`
}

// DashboardConfig holds presentation-layer settings.
//
// ReviewPageSize and SnippetLength default to the contract values the
// rendered markup is built around (10 cards, 200-character snippets);
// they are configurable for testing but validated to sane bounds.
type DashboardConfig struct {
	DefaultMode    string        `koanf:"default_mode" validate:"oneof=explore chat"`
	ReviewPageSize int           `koanf:"review_page_size" validate:"min=1,max=100"`
	SnippetLength  int           `koanf:"snippet_length" validate:"min=1,max=2000"`
	CacheTTL       time.Duration `koanf:"cache_ttl"`
}

// SecurityConfig holds CORS and rate-limit settings for the dashboard's
// own HTTP surface. The upstream contract is unauthenticated, so there is
// no credential configuration here.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitEnabled  bool          `koanf:"rate_limit_enabled"`
	APIRateLimit      int           `koanf:"api_rate_limit" validate:"min=1"`
	ChatRateLimit     int           `koanf:"chat_rate_limit" validate:"min=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	TrustedProxies    []string      `koanf:"trusted_proxies"`
	SecurityHeadersOn bool          `koanf:"security_headers"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"omitempty,oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// Load loads configuration using the Koanf layered loader.
// This is the single entry point used by cmd/dashboard.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
