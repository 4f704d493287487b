// Sentiment Pipeline - Review Intelligence Dashboard
// Copyright 2026 Rutuja S. (rutuja395)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rutuja395/sentiment-pipelinev1

package reviewapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/rutuja395/sentiment-pipelinev1/internal/config"
	"github.com/rutuja395/sentiment-pipelinev1/internal/metrics"
)

// maxErrorBodySize limits the maximum amount of response body read for error
// reporting. This prevents unbounded memory allocation when reading large
// error responses.
const maxErrorBodySize = 64 * 1024 // 64KB

// readBodyForError reads the response body for error reporting (max 64KB).
// Returns the body content or a placeholder message if reading fails.
func readBodyForError(r io.Reader) []byte {
	limitedReader := io.LimitReader(r, maxErrorBodySize)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// Client defines the typed surface of the review intelligence backend.
//
// It is implemented by HTTPClient for production use, by BreakerClient for
// circuit-breaker protection, and by mock implementations in tests.
//
// All methods follow a consistent pattern:
//   - Accept context.Context as first parameter for cancellation/timeout support
//   - Return typed response structs
//   - Return error on HTTP failures, backend errors, or JSON parse failures
//
// Thread Safety: All methods are safe for concurrent use.
type Client interface {
	Locations(ctx context.Context) (*LocationsResponse, error)
	Stats(ctx context.Context, locationID string) (*StatsResponse, error)
	Insights(ctx context.Context, locationID string, regenerate bool) (*InsightsResponse, error)
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
	Reviews(ctx context.Context, query ReviewsQuery) (*ReviewsResponse, error)
}

// HTTPClient handles communication with the review intelligence backend.
//
// Features:
//   - Configurable per-request timeout
//   - Client-side rate limiting (token bucket, limiter.Wait before each request)
//   - Automatic retry on HTTP 429 with exponential backoff and Retry-After support
//   - JSON parsing with typed response structs
//
// Thread Safety: Safe for concurrent use. Each request creates its own HTTP request.
//
// Example:
//
//	client := reviewapi.NewHTTPClient(&cfg.Upstream)
//	locations, err := client.Locations(ctx)
type HTTPClient struct {
	baseURL        string
	client         *http.Client
	limiter        *rate.Limiter
	maxRetries     int           // Maximum retries for rate limiting
	retryBaseDelay time.Duration // Base delay for exponential backoff
}

// NewHTTPClient creates a backend client from the upstream configuration.
func NewHTTPClient(cfg *config.UpstreamConfig) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter:        rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		maxRetries:     cfg.MaxRetries,
		retryBaseDelay: cfg.RetryBaseDelay,
	}
}

// Locations retrieves the list of known location identifiers.
func (c *HTTPClient) Locations(ctx context.Context) (*LocationsResponse, error) {
	return makeRequest[LocationsResponse](ctx, c, http.MethodGet, "/api/locations", "/api/locations", nil, nil)
}

// Stats retrieves aggregate review statistics for a location.
func (c *HTTPClient) Stats(ctx context.Context, locationID string) (*StatsResponse, error) {
	path := "/api/stats/" + url.PathEscape(locationID)
	return makeRequest[StatsResponse](ctx, c, http.MethodGet, path, "/api/stats", nil, nil)
}

// Insights retrieves analytical insights for a location. The regenerate flag
// is always present in the URL as true/false; true forces the backend to
// recompute instead of answering from its insight cache.
func (c *HTTPClient) Insights(ctx context.Context, locationID string, regenerate bool) (*InsightsResponse, error) {
	path := "/api/insights/" + url.PathEscape(locationID)
	query := url.Values{}
	query.Set("regenerate", strconv.FormatBool(regenerate))
	return makeRequest[InsightsResponse](ctx, c, http.MethodGet, path, "/api/insights", query, nil)
}

// Chat submits a natural-language query about a location's reviews.
func (c *HTTPClient) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	return makeRequest[ChatResponse](ctx, c, http.MethodPost, "/api/chat", "/api/chat", nil, &req)
}

// Reviews retrieves reviews matching the given filters.
func (c *HTTPClient) Reviews(ctx context.Context, query ReviewsQuery) (*ReviewsResponse, error) {
	return makeRequest[ReviewsResponse](ctx, c, http.MethodGet, "/api/reviews", "/api/reviews", query.Values(), nil)
}

// makeRequest is a generic helper that handles common backend request
// boilerplate: URL assembly, optional JSON body, rate-limited request with
// 429 retries, HTTP status checking, and JSON decoding.
//
// The endpoint parameter is the path pattern used as the metrics label, so
// per-location paths collapse into one series.
func makeRequest[T any](ctx context.Context, c *HTTPClient, method, path, endpoint string, query url.Values, body interface{}) (*T, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s request body: %w", endpoint, err)
		}
		payload = data
	}

	resp, err := c.doRequestWithRateLimit(ctx, method, reqURL, payload, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to make %s request: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errBody := readBodyForError(resp.Body)
		return nil, fmt.Errorf("%s request failed with status %d: %s", endpoint, resp.StatusCode, string(errBody))
	}

	result := new(T)
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}

	return result, nil
}

// doRequestWithRateLimit performs an HTTP request with client-side rate
// limiting and automatic HTTP 429 handling. Implements exponential backoff
// (base delay doubling per attempt), honoring the Retry-After header when
// present. The context is used for cancellation during limiter and backoff
// waits.
func (c *HTTPClient) doRequestWithRateLimit(ctx context.Context, method, reqURL string, body []byte, endpoint string) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		// Check context before attempting request
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		// Client-side rate limit: wait for a token
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		var reqBody io.Reader = http.NoBody
		if body != nil {
			reqBody = bytes.NewReader(body)
		}

		req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		start := time.Now()
		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("HTTP request failed: %w", err)
		}
		metrics.RecordUpstreamRequest(endpoint, strconv.Itoa(resp.StatusCode), time.Since(start))

		// Success - return response
		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		// Rate limited (HTTP 429) - close body and retry with backoff
		_ = resp.Body.Close()

		// Last attempt - return error
		if attempt == c.maxRetries {
			lastErr = fmt.Errorf("rate limit exceeded after %d retries (HTTP 429)", c.maxRetries)
			break
		}

		metrics.RecordUpstreamRetry(endpoint)

		// Calculate exponential backoff delay: base, 2x, 4x, 8x, ...
		delay := c.retryBaseDelay * time.Duration(1<<uint(attempt))

		// Check for Retry-After header (RFC 6585)
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			if seconds, err := time.ParseDuration(retryAfter + "s"); err == nil {
				delay = seconds
			}
		}

		// Use cancellable wait instead of time.Sleep
		select {
		case <-time.After(delay):
			// Continue to next attempt
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, lastErr
}
