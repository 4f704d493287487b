// Sentiment Pipeline - Review Intelligence Dashboard
// Copyright 2026 Rutuja S. (rutuja395)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rutuja395/sentiment-pipelinev1

package reviewapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/rutuja395/sentiment-pipelinev1/internal/config"
)

func testUpstreamConfig(serverURL string) *config.UpstreamConfig {
	return &config.UpstreamConfig{
		URL:            serverURL,
		Timeout:        5 * time.Second,
		MaxRetries:     3,
		RetryBaseDelay: 10 * time.Millisecond,
		RateLimit:      100,
		RateBurst:      100,
	}
}

// TestReadBodyForError tests the utility function that reads response body for error reporting
func TestReadBodyForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    io.Reader
		expected string
	}{
		{
			name:     "normal body content",
			input:    strings.NewReader("error message body"),
			expected: "error message body",
		},
		{
			name:     "empty body",
			input:    strings.NewReader(""),
			expected: "",
		},
		{
			name:     "JSON error response",
			input:    strings.NewReader(`{"error": "location not found"}`),
			expected: `{"error": "location not found"}`,
		},
		{
			name:     "failing reader",
			input:    &failingReader{},
			expected: "(failed to read response body)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := readBodyForError(tt.input)
			if string(result) != tt.expected {
				t.Errorf("readBodyForError() = %q, want %q", string(result), tt.expected)
			}
		})
	}
}

// failingReader is a reader that always fails
type failingReader struct{}

func (f *failingReader) Read(_ []byte) (int, error) {
	return 0, errors.New("simulated read failure")
}

func TestReadBodyForErrorTruncation(t *testing.T) {
	t.Parallel()

	input := strings.NewReader(strings.Repeat("x", maxErrorBodySize+500))
	result := readBodyForError(input)

	if !strings.HasSuffix(string(result), "(truncated)") {
		t.Error("expected truncation marker for oversized body")
	}
}

func TestLocations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/locations" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method %q", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"locations": ["loc-001", "loc-002", "loc-003"]}`))
	}))
	defer server.Close()

	client := NewHTTPClient(testUpstreamConfig(server.URL))

	resp, err := client.Locations(context.Background())
	if err != nil {
		t.Fatalf("Locations() error: %v", err)
	}
	if len(resp.Locations) != 3 {
		t.Fatalf("expected 3 locations, got %d", len(resp.Locations))
	}
	if resp.Locations[0] != "loc-001" {
		t.Errorf("expected first location loc-001, got %q", resp.Locations[0])
	}
}

func TestStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/stats/loc-001" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"total_reviews": 128, "average_rating": 4.2, "rating_distribution": {"5": 60, "4": 40, "3": 18, "2": 6, "1": 4}}`))
	}))
	defer server.Close()

	client := NewHTTPClient(testUpstreamConfig(server.URL))

	resp, err := client.Stats(context.Background(), "loc-001")
	if err != nil {
		t.Fatalf("Stats() error: %v", err)
	}
	if resp.TotalReviews != 128 {
		t.Errorf("expected 128 total reviews, got %d", resp.TotalReviews)
	}
	if resp.AverageRating != 4.2 {
		t.Errorf("expected average rating 4.2, got %v", resp.AverageRating)
	}
	if resp.RatingDistribution["5"] != 60 {
		t.Errorf("expected 60 five-star reviews, got %d", resp.RatingDistribution["5"])
	}
}

// TestInsightsRegenerateParam verifies the regenerate flag is always present
// in the query string as explicit true/false.
func TestInsightsRegenerateParam(t *testing.T) {
	tests := []struct {
		name       string
		regenerate bool
		want       string
	}{
		{"regenerate false", false, "false"},
		{"regenerate true", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotParam string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotParam = r.URL.Query().Get("regenerate")
				w.Write([]byte(`{"top_topics": [], "generated_summary": "ok"}`))
			}))
			defer server.Close()

			client := NewHTTPClient(testUpstreamConfig(server.URL))

			resp, err := client.Insights(context.Background(), "loc-001", tt.regenerate)
			if err != nil {
				t.Fatalf("Insights() error: %v", err)
			}
			if gotParam != tt.want {
				t.Errorf("regenerate param = %q, want %q", gotParam, tt.want)
			}
			if resp.GeneratedSummary != "ok" {
				t.Errorf("unexpected summary %q", resp.GeneratedSummary)
			}
		})
	}
}

func TestInsightsDecodesFullPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{
			"top_topics": [{"topic": "service", "count": 42}],
			"key_drivers": {
				"complaints": [{"topic": "wait time", "count": 12}],
				"praises": [{"topic": "staff", "count": 30}]
			},
			"representative_quotes": [{"review_id": "r-9", "text": "Great food"}],
			"anomalies": ["rating drop in June"],
			"generated_summary": "Overall positive"
		}`))
	}))
	defer server.Close()

	client := NewHTTPClient(testUpstreamConfig(server.URL))

	resp, err := client.Insights(context.Background(), "loc-001", false)
	if err != nil {
		t.Fatalf("Insights() error: %v", err)
	}
	if len(resp.TopTopics) != 1 || resp.TopTopics[0].Topic != "service" {
		t.Errorf("unexpected top topics %+v", resp.TopTopics)
	}
	if len(resp.KeyDrivers.Complaints) != 1 || resp.KeyDrivers.Complaints[0].Count != 12 {
		t.Errorf("unexpected complaints %+v", resp.KeyDrivers.Complaints)
	}
	if len(resp.RepresentativeQuotes) != 1 || resp.RepresentativeQuotes[0].ReviewID != "r-9" {
		t.Errorf("unexpected quotes %+v", resp.RepresentativeQuotes)
	}
	if len(resp.Anomalies) != 1 {
		t.Errorf("unexpected anomalies %+v", resp.Anomalies)
	}
}

// TestChatRequestBody verifies the exact JSON body sent to the chat endpoint,
// including omission of use_semantic when unset.
func TestChatRequestBody(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %q", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected Content-Type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		w.Write([]byte(`{"answer": "Mostly praise for staff", "citations": [{"review_id": "r-1", "text": "friendly staff"}], "review_count": 17}`))
	}))
	defer server.Close()

	client := NewHTTPClient(testUpstreamConfig(server.URL))

	resp, err := client.Chat(context.Background(), ChatRequest{
		Query:      "what do customers say about staff?",
		LocationID: "loc-001",
	})
	if err != nil {
		t.Fatalf("Chat() error: %v", err)
	}

	if gotBody["query"] != "what do customers say about staff?" {
		t.Errorf("unexpected query %v", gotBody["query"])
	}
	if gotBody["location_id"] != "loc-001" {
		t.Errorf("unexpected location_id %v", gotBody["location_id"])
	}
	if _, present := gotBody["use_semantic"]; present {
		t.Error("use_semantic should be omitted when unset")
	}

	if resp.Answer != "Mostly praise for staff" {
		t.Errorf("unexpected answer %q", resp.Answer)
	}
	if resp.ReviewCount != 17 {
		t.Errorf("unexpected review count %d", resp.ReviewCount)
	}
	if len(resp.Citations) != 1 || resp.Citations[0].ReviewID != "r-1" {
		t.Errorf("unexpected citations %+v", resp.Citations)
	}
}

// TestReviewsQueryParams verifies that a rating filter maps to equal
// min_rating and max_rating, and that unset filters are absent.
func TestReviewsQueryParams(t *testing.T) {
	four := 4
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"count": 0, "reviews": []}`))
	}))
	defer server.Close()

	client := NewHTTPClient(testUpstreamConfig(server.URL))

	_, err := client.Reviews(context.Background(), ReviewsQuery{
		LocationID: "loc-001",
		MinRating:  &four,
		MaxRating:  &four,
		Limit:      10,
	})
	if err != nil {
		t.Fatalf("Reviews() error: %v", err)
	}

	if got := gotQuery["min_rating"]; len(got) != 1 || got[0] != "4" {
		t.Errorf("min_rating = %v, want [4]", got)
	}
	if got := gotQuery["max_rating"]; len(got) != 1 || got[0] != "4" {
		t.Errorf("max_rating = %v, want [4]", got)
	}
	if got := gotQuery["limit"]; len(got) != 1 || got[0] != "10" {
		t.Errorf("limit = %v, want [10]", got)
	}
	if _, present := gotQuery["sentiment"]; present {
		t.Error("sentiment should be absent when unset")
	}
	if _, present := gotQuery["start_date"]; present {
		t.Error("start_date should be absent when unset")
	}
	if _, present := gotQuery["topics"]; present {
		t.Error("topics should be absent when unset")
	}
}

func TestReviewsQueryValues(t *testing.T) {
	t.Parallel()

	three := 3
	five := 5

	tests := []struct {
		name  string
		query ReviewsQuery
		want  map[string]string
		skip  []string
	}{
		{
			name:  "location only",
			query: ReviewsQuery{LocationID: "loc-001"},
			want:  map[string]string{"location_id": "loc-001"},
			skip:  []string{"min_rating", "max_rating", "sentiment", "limit"},
		},
		{
			name: "all filters",
			query: ReviewsQuery{
				LocationID: "loc-001",
				MinRating:  &three,
				MaxRating:  &five,
				Sentiment:  "negative",
				StartDate:  "2026-01-01",
				EndDate:    "2026-06-30",
				Topics:     []string{"service", "pricing"},
				Limit:      25,
			},
			want: map[string]string{
				"location_id": "loc-001",
				"min_rating":  "3",
				"max_rating":  "5",
				"sentiment":   "negative",
				"start_date":  "2026-01-01",
				"end_date":    "2026-06-30",
				"topics":      "service,pricing",
				"limit":       "25",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			values := tt.query.Values()
			for key, want := range tt.want {
				if got := values.Get(key); got != want {
					t.Errorf("%s = %q, want %q", key, got, want)
				}
			}
			for _, key := range tt.skip {
				if values.Has(key) {
					t.Errorf("%s should be absent, got %q", key, values.Get(key))
				}
			}
		})
	}
}

// TestRateLimitRetry verifies HTTP 429 responses are retried with backoff.
func TestRateLimitRetry(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"locations": ["loc-001"]}`))
	}))
	defer server.Close()

	client := NewHTTPClient(testUpstreamConfig(server.URL))

	resp, err := client.Locations(context.Background())
	if err != nil {
		t.Fatalf("Locations() error after retries: %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
	if len(resp.Locations) != 1 {
		t.Errorf("expected 1 location, got %d", len(resp.Locations))
	}
}

func TestRateLimitExhausted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewHTTPClient(testUpstreamConfig(server.URL))

	_, err := client.Locations(context.Background())
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if !strings.Contains(err.Error(), "rate limit exceeded") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestErrorResponseIncludesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "database unavailable"}`))
	}))
	defer server.Close()

	client := NewHTTPClient(testUpstreamConfig(server.URL))

	_, err := client.Stats(context.Background(), "loc-001")
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if !strings.Contains(err.Error(), "status 500") {
		t.Errorf("error should mention status code: %v", err)
	}
	if !strings.Contains(err.Error(), "database unavailable") {
		t.Errorf("error should include response body: %v", err)
	}
}

func TestDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewHTTPClient(testUpstreamConfig(server.URL))

	_, err := client.Locations(context.Background())
	if err == nil {
		t.Fatal("expected decode error for invalid JSON")
	}
	if !strings.Contains(err.Error(), "failed to decode") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"locations": []}`))
	}))
	defer server.Close()

	client := NewHTTPClient(testUpstreamConfig(server.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Locations(ctx)
	if err == nil {
		t.Fatal("expected error for canceled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestBaseURLTrailingSlash(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "//") {
			t.Errorf("double slash in path %q", r.URL.Path)
		}
		w.Write([]byte(`{"locations": []}`))
	}))
	defer server.Close()

	cfg := testUpstreamConfig(server.URL + "/")
	client := NewHTTPClient(cfg)

	if _, err := client.Locations(context.Background()); err != nil {
		t.Fatalf("Locations() error: %v", err)
	}
}
