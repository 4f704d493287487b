// Sentiment Pipeline - Review Intelligence Dashboard
// Copyright 2026 Rutuja S. (rutuja395)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rutuja395/sentiment-pipelinev1

// Package cache provides a thread-safe in-memory TTL cache for upstream
// responses.
//
// The dashboard caches location lists, per-location stats, and insights to
// avoid re-fetching slow backend endpoints on every panel refresh. Review
// search results and chat answers are never cached; they depend on
// free-form user input.
//
// # Usage
//
//	insightsCache := cache.New("insights", 5*time.Minute)
//
//	key := cache.GenerateKey("insights", locationID)
//	if data, ok := insightsCache.Get(key); ok {
//	    return data.(*reviewapi.InsightsResponse), nil
//	}
//
//	resp, err := client.Insights(ctx, locationID, false)
//	if err != nil {
//	    return nil, err
//	}
//	insightsCache.Set(key, resp)
//
// A forced regeneration bypasses the cache and replaces the stored entry:
//
//	insightsCache.Delete(key)
//
// # Characteristics
//
//   - O(1) lookups backed by a Go map with sync.RWMutex
//   - Background cleanup every 5 minutes removes expired entries
//   - Hit/miss/eviction statistics exported as Prometheus metrics, labeled
//     by the cache name given to New
package cache
