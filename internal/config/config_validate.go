// Sentiment Pipeline - Review Intelligence Dashboard
// Copyright 2026 Rutuja S. (rutuja395)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rutuja395/sentiment-pipelinev1

package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/rutuja395/sentiment-pipelinev1/internal/validation"
)

// Validate checks that required configuration is present and valid.
// Struct tags catch per-field range errors; the hand-written checks below
// produce actionable messages naming the environment variable to fix.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return fmt.Errorf("configuration is invalid: %w", err)
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateUpstream(); err != nil {
		return err
	}

	if err := c.validateDashboard(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates HTTP server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("DASHBOARD_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout < time.Second {
		return fmt.Errorf("DASHBOARD_TIMEOUT must be at least 1s")
	}
	if c.Server.ShutdownTimeout < time.Second {
		return fmt.Errorf("DASHBOARD_SHUTDOWN_TIMEOUT must be at least 1s")
	}
	return nil
}

// Upstream client bounds
const (
	maxUpstreamRetries = 10
	minRetryBaseDelay  = 100 * time.Millisecond
	maxRetryBaseDelay  = time.Minute
)

// validateUpstream validates the review intelligence backend configuration
func (c *Config) validateUpstream() error {
	if err := c.validateUpstreamURL(); err != nil {
		return err
	}
	if err := c.validateUpstreamRetries(); err != nil {
		return err
	}
	return c.validateUpstreamRateLimit()
}

// validateUpstreamURL validates the backend base URL
func (c *Config) validateUpstreamURL() error {
	if c.Upstream.URL == "" {
		return fmt.Errorf("REVIEW_API_URL is required")
	}
	if err := validateHTTPURL(c.Upstream.URL, "REVIEW_API_URL"); err != nil {
		return fmt.Errorf("REVIEW_API_URL is invalid: %w", err)
	}
	return nil
}

// validateUpstreamRetries validates retry configuration
func (c *Config) validateUpstreamRetries() error {
	if c.Upstream.MaxRetries < 0 || c.Upstream.MaxRetries > maxUpstreamRetries {
		return fmt.Errorf("REVIEW_API_MAX_RETRIES must be between 0 and %d", maxUpstreamRetries)
	}
	if c.Upstream.RetryBaseDelay < minRetryBaseDelay || c.Upstream.RetryBaseDelay > maxRetryBaseDelay {
		return fmt.Errorf("REVIEW_API_RETRY_BASE_DELAY must be between %v and %v", minRetryBaseDelay, maxRetryBaseDelay)
	}
	return nil
}

// validateUpstreamRateLimit validates client-side rate limiter configuration
func (c *Config) validateUpstreamRateLimit() error {
	if c.Upstream.RateLimit <= 0 {
		return fmt.Errorf("REVIEW_API_RATE_LIMIT must be greater than 0")
	}
	if c.Upstream.RateBurst < 1 {
		return fmt.Errorf("REVIEW_API_RATE_BURST must be at least 1")
	}
	return nil
}

// validDashboardModes defines the allowed default dashboard modes
var validDashboardModes = map[string]bool{
	"explore": true,
	"chat":    true,
}

// Dashboard presentation bounds
const (
	maxReviewPageSize = 100
	maxSnippetLength  = 2000
	minCacheTTL       = 10 * time.Second
	maxCacheTTL       = time.Hour
)

// validateDashboard validates dashboard presentation configuration
func (c *Config) validateDashboard() error {
	if !validDashboardModes[c.Dashboard.DefaultMode] {
		return fmt.Errorf("DASHBOARD_DEFAULT_MODE must be one of: explore, chat")
	}
	if c.Dashboard.ReviewPageSize < 1 || c.Dashboard.ReviewPageSize > maxReviewPageSize {
		return fmt.Errorf("DASHBOARD_REVIEW_PAGE_SIZE must be between 1 and %d", maxReviewPageSize)
	}
	if c.Dashboard.SnippetLength < 1 || c.Dashboard.SnippetLength > maxSnippetLength {
		return fmt.Errorf("DASHBOARD_SNIPPET_LENGTH must be between 1 and %d", maxSnippetLength)
	}
	if c.Dashboard.CacheTTL < minCacheTTL || c.Dashboard.CacheTTL > maxCacheTTL {
		return fmt.Errorf("DASHBOARD_CACHE_TTL must be between %v and %v", minCacheTTL, maxCacheTTL)
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// validateSecurity validates security configuration
func (c *Config) validateSecurity() error {
	if !c.Security.RateLimitEnabled {
		return nil
	}

	if err := c.validateRateLimitRequests(); err != nil {
		return err
	}
	return c.validateRateLimitWindow()
}

// validateRateLimitRequests validates the per-window request limits
func (c *Config) validateRateLimitRequests() error {
	if c.Security.APIRateLimit < minRateLimitRequests || c.Security.APIRateLimit > maxRateLimitRequests {
		return fmt.Errorf("API_RATE_LIMIT must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.ChatRateLimit < minRateLimitRequests || c.Security.ChatRateLimit > maxRateLimitRequests {
		return fmt.Errorf("CHAT_RATE_LIMIT must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	return nil
}

// validateRateLimitWindow validates the rate limit window value
func (c *Config) validateRateLimitWindow() error {
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// validateHTTPURL validates that a URL is properly formatted for HTTP/HTTPS services.
// Validates: scheme (http/https), host present, no query params.
func validateHTTPURL(rawURL, fieldName string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}

	if parsedURL.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters, remove: ?%s", fieldName, parsedURL.RawQuery)
	}

	return nil
}
