// Sentiment Pipeline - Review Intelligence Dashboard
// Copyright 2026 Rutuja S. (rutuja395)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rutuja395/sentiment-pipelinev1

package cache

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c := New("test", time.Minute)

	c.Set("stats:loc_001", map[string]int{"total": 128})

	data, ok := c.Get("stats:loc_001")
	if !ok {
		t.Fatal("Get() returned ok=false for existing key")
	}
	stats, ok := data.(map[string]int)
	if !ok {
		t.Fatalf("Get() returned unexpected type %T", data)
	}
	if stats["total"] != 128 {
		t.Errorf("cached value = %d, want 128", stats["total"])
	}
}

func TestCacheMiss(t *testing.T) {
	c := New("test", time.Minute)

	if _, ok := c.Get("nonexistent"); ok {
		t.Error("Get() returned ok=true for missing key")
	}

	stats := c.GetStats()
	if stats.Misses != 1 {
		t.Errorf("Misses = %d, want 1", stats.Misses)
	}
}

func TestCacheExpiration(t *testing.T) {
	c := New("test", time.Minute)

	c.SetWithTTL("insights:loc_001", "summary", 10*time.Millisecond)

	if _, ok := c.Get("insights:loc_001"); !ok {
		t.Fatal("Get() returned ok=false before expiry")
	}

	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get("insights:loc_001"); ok {
		t.Error("Get() returned ok=true after expiry")
	}

	stats := c.GetStats()
	if stats.Evictions != 1 {
		t.Errorf("Evictions = %d, want 1", stats.Evictions)
	}
}

func TestCacheOverwrite(t *testing.T) {
	c := New("test", time.Minute)

	c.Set("key", "first")
	c.Set("key", "second")

	data, ok := c.Get("key")
	if !ok {
		t.Fatal("Get() returned ok=false")
	}
	if data != "second" {
		t.Errorf("cached value = %v, want second", data)
	}
}

func TestCacheDelete(t *testing.T) {
	c := New("test", time.Minute)

	c.Set("key", "value")
	c.Delete("key")

	if _, ok := c.Get("key"); ok {
		t.Error("Get() returned ok=true after Delete()")
	}

	// Deleting a missing key is a no-op
	c.Delete("missing")
}

func TestCacheClear(t *testing.T) {
	c := New("test", time.Minute)

	for i := 0; i < 5; i++ {
		c.Set(fmt.Sprintf("key%d", i), i)
	}
	c.Clear()

	for i := 0; i < 5; i++ {
		if _, ok := c.Get(fmt.Sprintf("key%d", i)); ok {
			t.Errorf("Get(key%d) returned ok=true after Clear()", i)
		}
	}

	stats := c.GetStats()
	if stats.TotalKeys != 0 {
		t.Errorf("TotalKeys = %d, want 0", stats.TotalKeys)
	}
	if stats.Evictions < 5 {
		t.Errorf("Evictions = %d, want >= 5", stats.Evictions)
	}
}

func TestCacheStats(t *testing.T) {
	c := New("test", time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)

	c.Get("a") // hit
	c.Get("a") // hit
	c.Get("z") // miss

	stats := c.GetStats()
	if stats.Hits != 2 {
		t.Errorf("Hits = %d, want 2", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Misses = %d, want 1", stats.Misses)
	}
	if stats.TotalKeys != 2 {
		t.Errorf("TotalKeys = %d, want 2", stats.TotalKeys)
	}
}

func TestCacheHitRate(t *testing.T) {
	c := New("test", time.Minute)

	if rate := c.HitRate(); rate != 0.0 {
		t.Errorf("HitRate() = %v, want 0.0 with no lookups", rate)
	}

	c.Set("a", 1)
	c.Get("a") // hit
	c.Get("a") // hit
	c.Get("b") // miss
	c.Get("c") // miss

	if rate := c.HitRate(); rate != 50.0 {
		t.Errorf("HitRate() = %v, want 50.0", rate)
	}
}

func TestCacheCleanup(t *testing.T) {
	c := New("test", time.Minute)

	c.SetWithTTL("expired1", 1, time.Millisecond)
	c.SetWithTTL("expired2", 2, time.Millisecond)
	c.Set("fresh", 3)

	time.Sleep(5 * time.Millisecond)
	c.cleanup()

	stats := c.GetStats()
	if stats.TotalKeys != 1 {
		t.Errorf("TotalKeys after cleanup = %d, want 1", stats.TotalKeys)
	}
	if stats.Evictions != 2 {
		t.Errorf("Evictions after cleanup = %d, want 2", stats.Evictions)
	}
	if _, ok := c.Get("fresh"); !ok {
		t.Error("cleanup removed a non-expired entry")
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := New("test", time.Minute)

	const goroutines = 10
	const iterations = 100

	var wg sync.WaitGroup
	wg.Add(goroutines * 2)

	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				c.Set(fmt.Sprintf("key%d-%d", id, j), j)
			}
		}(i)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				c.Get(fmt.Sprintf("key%d-%d", id, j))
			}
		}(i)
	}
	wg.Wait()

	// Writes settled, all keys must be present
	for i := 0; i < goroutines; i++ {
		for j := 0; j < iterations; j++ {
			if _, ok := c.Get(fmt.Sprintf("key%d-%d", i, j)); !ok {
				t.Fatalf("key%d-%d missing after concurrent writes", i, j)
			}
		}
	}
}

func TestGenerateKey(t *testing.T) {
	type params struct {
		LocationID string
		MinRating  int
	}

	key1 := GenerateKey("reviews", params{LocationID: "loc_001", MinRating: 4})
	key2 := GenerateKey("reviews", params{LocationID: "loc_001", MinRating: 4})
	key3 := GenerateKey("reviews", params{LocationID: "loc_002", MinRating: 4})

	if key1 != key2 {
		t.Errorf("GenerateKey() not deterministic: %q != %q", key1, key2)
	}
	if key1 == key3 {
		t.Errorf("GenerateKey() collision for different params: %q", key1)
	}
	if !strings.HasPrefix(key1, "reviews:") {
		t.Errorf("GenerateKey() = %q, want reviews: prefix", key1)
	}
}

func TestGenerateKeyUnmarshalableFallback(t *testing.T) {
	// Channels can't be JSON-marshaled; the fallback key must still be usable
	key := GenerateKey("method", make(chan int))
	if !strings.HasPrefix(key, "method:") {
		t.Errorf("GenerateKey() fallback = %q, want method: prefix", key)
	}
}
