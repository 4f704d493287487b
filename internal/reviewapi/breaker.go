// Sentiment Pipeline - Review Intelligence Dashboard
// Copyright 2026 Rutuja S. (rutuja395)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rutuja395/sentiment-pipelinev1

package reviewapi

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/rutuja395/sentiment-pipelinev1/internal/logging"
	"github.com/rutuja395/sentiment-pipelinev1/internal/metrics"
)

// BreakerClient wraps a Client with the circuit breaker pattern, preventing
// cascading failures when the review intelligence backend is unavailable or
// slow.
//
// DETERMINISM NOTE: The circuit breaker uses real time (via sony/gobreaker)
// for its interval and timeout calculations. The timing determines when to
// recover from failures, not data integrity. For unit tests, test the wrapped
// client directly.
type BreakerClient struct {
	client Client
	cb     *gobreaker.CircuitBreaker[interface{}]
	name   string
}

// NewBreakerClient wraps the given client with a circuit breaker.
// Circuit breaker configuration:
// - Max 3 concurrent requests in half-open state
// - 1 minute measurement window
// - 2 minute timeout before attempting recovery
// - Opens after 60% failure rate with minimum 10 requests
func NewBreakerClient(client Client) *BreakerClient {
	cbName := "review-api"

	// Initialize circuit breaker state metrics
	metrics.SetCircuitBreakerState(cbName, 0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 3,               // Allow 3 concurrent requests in half-open state
		Interval:    time.Minute,     // Reset counts after 1 minute in closed state
		Timeout:     2 * time.Minute, // Wait 2 minutes before transitioning from open to half-open

		// ReadyToTrip determines when to open the circuit
		// Opens when failure rate >= 60% with minimum 10 requests
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false // Need at least 10 requests for statistical significance
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6

			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}

			return shouldTrip
		},

		// OnStateChange is called whenever the circuit breaker changes state
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.SetCircuitBreakerState(name, stateToFloat(to))
			metrics.RecordCircuitBreakerTransition(name, fromStr, toStr)
		},
	})

	return &BreakerClient{
		client: client,
		cb:     cb,
		name:   cbName,
	}
}

// State returns the current breaker state as a string for health reporting.
func (bc *BreakerClient) State() string {
	return stateToString(bc.cb.State())
}

// execute wraps a backend call with circuit breaker protection.
// Returns the result or an error if the circuit is open or the request fails.
func (bc *BreakerClient) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := bc.cb.Execute(fn)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			// Circuit is open or too many concurrent requests in half-open state
			metrics.RecordCircuitBreakerRequest(bc.name, "rejected")
			logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
		} else {
			metrics.RecordCircuitBreakerRequest(bc.name, "failure")
		}
		return nil, err
	}

	metrics.RecordCircuitBreakerRequest(bc.name, "success")
	return result, nil
}

// castResult safely type-casts the circuit breaker result with error checking.
// Returns typed result or error if type assertion fails.
func castResult[T any](result interface{}, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	typed, ok := result.(*T)
	if !ok {
		return nil, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Locations retrieves the location list with circuit breaker protection
func (bc *BreakerClient) Locations(ctx context.Context) (*LocationsResponse, error) {
	return castResult[LocationsResponse](bc.execute(func() (interface{}, error) {
		return bc.client.Locations(ctx)
	}))
}

// Stats retrieves location statistics with circuit breaker protection
func (bc *BreakerClient) Stats(ctx context.Context, locationID string) (*StatsResponse, error) {
	return castResult[StatsResponse](bc.execute(func() (interface{}, error) {
		return bc.client.Stats(ctx, locationID)
	}))
}

// Insights retrieves location insights with circuit breaker protection
func (bc *BreakerClient) Insights(ctx context.Context, locationID string, regenerate bool) (*InsightsResponse, error) {
	return castResult[InsightsResponse](bc.execute(func() (interface{}, error) {
		return bc.client.Insights(ctx, locationID, regenerate)
	}))
}

// Chat submits a chat query with circuit breaker protection
func (bc *BreakerClient) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	return castResult[ChatResponse](bc.execute(func() (interface{}, error) {
		return bc.client.Chat(ctx, req)
	}))
}

// Reviews retrieves filtered reviews with circuit breaker protection
func (bc *BreakerClient) Reviews(ctx context.Context, query ReviewsQuery) (*ReviewsResponse, error) {
	return castResult[ReviewsResponse](bc.execute(func() (interface{}, error) {
		return bc.client.Reviews(ctx, query)
	}))
}
