// Sentiment Pipeline - Review Intelligence Dashboard
// Copyright 2026 Rutuja S. (rutuja395)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rutuja395/sentiment-pipelinev1

package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/rutuja395/sentiment-pipelinev1/internal/cache"
	"github.com/rutuja395/sentiment-pipelinev1/internal/config"
	"github.com/rutuja395/sentiment-pipelinev1/internal/logging"
	"github.com/rutuja395/sentiment-pipelinev1/internal/metrics"
	"github.com/rutuja395/sentiment-pipelinev1/internal/reviewapi"
)

// validModes enumerates the UI modes the mode tab group can switch to.
var validModes = map[string]bool{
	ModeExplore: true,
	ModeChat:    true,
}

// Controller implements the dashboard operations against the review
// intelligence backend. Location, stats, and insights responses go through
// the response cache; chat and review searches never do (user-interactive
// data must always be fresh).
//
// Thread Safety: Safe for concurrent use. All state lives in the Store.
type Controller struct {
	client        reviewapi.Client
	store         *Store
	cache         *cache.Cache
	pageSize      int
	snippetLength int
}

// NewController wires a controller from its dependencies.
func NewController(client reviewapi.Client, store *Store, responseCache *cache.Cache, cfg *config.DashboardConfig) *Controller {
	return &Controller{
		client:        client,
		store:         store,
		cache:         responseCache,
		pageSize:      cfg.ReviewPageSize,
		snippetLength: cfg.SnippetLength,
	}
}

// Store exposes the underlying store for rendering and state inspection.
func (c *Controller) Store() *Store {
	return c.store
}

// Initialize loads the location list, selects the first location, and
// triggers the initial stats and insights loads for it. An empty location
// list leaves the dashboard empty and returns nil; failures to load the
// list itself are returned so the caller can retry startup.
func (c *Controller) Initialize(ctx context.Context) error {
	resp, err := c.cachedLocations(ctx)
	if err != nil {
		return fmt.Errorf("failed to load locations: %w", err)
	}

	if len(resp.Locations) == 0 {
		logging.Warn().Msg("Backend returned no locations, dashboard will be empty")
		c.store.SetLocations(nil, "")
		return nil
	}

	selected := resp.Locations[0]
	c.store.SetLocations(resp.Locations, selected)
	logging.Info().Int("locations", len(resp.Locations)).Str("selected", selected).Msg("Dashboard initialized")

	c.loadPanels(ctx)
	return nil
}

// SelectLocation switches the dashboard to another location and reloads its
// stats and insights. Unknown identifiers leave the state unchanged.
func (c *Controller) SelectLocation(ctx context.Context, id string) error {
	if !c.store.HasLocation(id) {
		return fmt.Errorf("unknown location %q", id)
	}

	c.store.SelectLocation(id)
	logging.Debug().Str("location", id).Msg("Location selected")

	c.loadPanels(ctx)
	return nil
}

// loadPanels refreshes the stats and insights panels for the selected
// location. Panel failures surface as notices, not errors.
func (c *Controller) loadPanels(ctx context.Context) {
	if err := c.LoadStats(ctx); err != nil {
		logging.Error().Err(err).Msg("Failed to load stats panel")
	}
	if err := c.LoadInsights(ctx, false); err != nil {
		logging.Error().Err(err).Msg("Failed to load insights panel")
	}
}

// SwitchMode changes the UI mode. Unknown modes return an error and leave
// the state unchanged.
func (c *Controller) SwitchMode(mode string) error {
	if !validModes[mode] {
		return fmt.Errorf("unknown mode %q", mode)
	}

	c.store.SetMode(mode)
	metrics.RecordModeSwitch(mode)
	return nil
}

// LoadStats fetches and applies the stats view for the selected location.
// No-op when no location is selected.
func (c *Controller) LoadStats(ctx context.Context) error {
	loc := c.store.SelectedLocation()
	if loc == "" {
		return nil
	}

	seq := c.store.BeginStats()

	resp, err := c.cachedStats(ctx, loc)
	if err != nil {
		c.store.FailStats(seq)
		return fmt.Errorf("failed to load stats for %s: %w", loc, err)
	}

	vm := StatsView{
		Loaded:             true,
		TotalReviews:       resp.TotalReviews,
		AverageRating:      resp.AverageRating,
		RatingDistribution: resp.RatingDistribution,
	}
	if vm.RatingDistribution == nil {
		vm.RatingDistribution = map[string]int{}
	}

	c.store.ApplyStats(seq, vm)
	return nil
}

// LoadInsights fetches and applies the insights view for the selected
// location. With regenerate set, the cache entry is invalidated and the
// backend recomputes; the fresh result replaces the cached one. No-op when
// no location is selected.
func (c *Controller) LoadInsights(ctx context.Context, regenerate bool) error {
	loc := c.store.SelectedLocation()
	if loc == "" {
		return nil
	}

	seq := c.store.BeginInsights()

	resp, err := c.fetchInsights(ctx, loc, regenerate)
	if err != nil {
		c.store.FailInsights(seq)
		return fmt.Errorf("failed to load insights for %s: %w", loc, err)
	}

	vm := InsightsView{
		Loaded:    true,
		TopTopics: topicCounts(resp.TopTopics),
		Summary:   resp.GeneratedSummary,
	}
	vm.Complaints = topicCounts(resp.KeyDrivers.Complaints)
	vm.Praises = topicCounts(resp.KeyDrivers.Praises)
	vm.Quotes = make([]Quote, 0, len(resp.RepresentativeQuotes))
	for _, q := range resp.RepresentativeQuotes {
		vm.Quotes = append(vm.Quotes, Quote{ReviewID: q.ReviewID, Text: q.Text})
	}
	vm.Anomalies = append([]string{}, resp.Anomalies...)

	c.store.ApplyInsights(seq, vm)
	return nil
}

// RegenerateInsights forces the backend to recompute insights for the
// selected location.
func (c *Controller) RegenerateInsights(ctx context.Context) error {
	return c.LoadInsights(ctx, true)
}

// SendChat submits a chat query for the selected location. Whitespace-only
// input is a silent no-op: no request, no transcript append. The trimmed
// query is appended as a user message before the request goes out, so it
// stays in the transcript regardless of outcome; failures append the uniform
// notice as an assistant message instead of an answer.
func (c *Controller) SendChat(ctx context.Context, query string) error {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil
	}

	c.store.AppendMessage(RoleUser, trimmed)

	resp, err := c.client.Chat(ctx, reviewapi.ChatRequest{
		Query:      trimmed,
		LocationID: c.store.SelectedLocation(),
	})
	if err != nil {
		c.store.AppendMessage(RoleAssistant, FailureNotice)
		return fmt.Errorf("chat request failed: %w", err)
	}

	c.store.AppendMessage(RoleAssistant, resp.Answer)
	return nil
}

// Filters are the review-search inputs exposed by the filter form. A set
// rating means "exactly this rating".
type Filters struct {
	Rating    *int
	Sentiment string
}

// ApplyFilters runs a filtered review search for the selected location and
// applies the results view. No-op when no location is selected. Review
// searches are never cached.
func (c *Controller) ApplyFilters(ctx context.Context, f Filters) error {
	loc := c.store.SelectedLocation()
	if loc == "" {
		return nil
	}

	seq := c.store.BeginReviews()

	// No limit on the wire: the backend counts results after applying a
	// limit, so sending one would cap the count header. The page-size cap
	// applies to the rendered cards only.
	query := reviewapi.ReviewsQuery{
		LocationID: loc,
	}
	if f.Rating != nil {
		// Exact-rating filter: min and max carry the same value.
		query.MinRating = f.Rating
		query.MaxRating = f.Rating
	}
	if f.Sentiment != "" {
		query.Sentiment = f.Sentiment
	}

	resp, err := c.client.Reviews(ctx, query)
	if err != nil {
		c.store.FailReviews(seq)
		return fmt.Errorf("failed to search reviews for %s: %w", loc, err)
	}

	vm := ReviewsView{
		Loaded: true,
		Count:  resp.Count,
		Cards:  make([]ReviewCard, 0, c.pageSize),
	}
	for i, review := range resp.Reviews {
		if i >= c.pageSize {
			break
		}
		vm.Cards = append(vm.Cards, ReviewCard{
			Rating:  review.Rating,
			Snippet: c.snippet(review.ReviewText),
			Source:  review.Source,
			Date:    review.ReviewDate,
		})
	}

	c.store.ApplyReviews(seq, vm)
	return nil
}

// snippet truncates review text to the configured length and appends the
// ellipsis suffix. The suffix is unconditional, matching the card format
// clients already expect even for short reviews.
func (c *Controller) snippet(text string) string {
	runes := []rune(text)
	if len(runes) > c.snippetLength {
		runes = runes[:c.snippetLength]
	}
	return string(runes) + "..."
}

// topicCounts converts upstream topic counts into the view representation,
// always returning a non-nil slice.
func topicCounts(src []reviewapi.TopicCount) []TopicCount {
	out := make([]TopicCount, 0, len(src))
	for _, tc := range src {
		out = append(out, TopicCount{Topic: tc.Topic, Count: tc.Count})
	}
	return out
}

// cachedLocations fetches the location list through the response cache.
func (c *Controller) cachedLocations(ctx context.Context) (*reviewapi.LocationsResponse, error) {
	key := cache.GenerateKey("locations", nil)
	if cached, found := c.cache.Get(key); found {
		if resp, ok := cached.(*reviewapi.LocationsResponse); ok {
			return resp, nil
		}
	}

	resp, err := c.client.Locations(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, resp)
	return resp, nil
}

// cachedStats fetches a location's stats through the response cache.
func (c *Controller) cachedStats(ctx context.Context, locationID string) (*reviewapi.StatsResponse, error) {
	key := cache.GenerateKey("stats", locationID)
	if cached, found := c.cache.Get(key); found {
		if resp, ok := cached.(*reviewapi.StatsResponse); ok {
			return resp, nil
		}
	}

	resp, err := c.client.Stats(ctx, locationID)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, resp)
	return resp, nil
}

// fetchInsights fetches a location's insights, bypassing and invalidating
// the cache entry when regenerate is set so the forced recomputation is
// visible immediately.
func (c *Controller) fetchInsights(ctx context.Context, locationID string, regenerate bool) (*reviewapi.InsightsResponse, error) {
	key := cache.GenerateKey("insights", locationID)

	if regenerate {
		c.cache.Delete(key)
		metrics.RecordInsightRegeneration()
	} else if cached, found := c.cache.Get(key); found {
		if resp, ok := cached.(*reviewapi.InsightsResponse); ok {
			return resp, nil
		}
	}

	resp, err := c.client.Insights(ctx, locationID, regenerate)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, resp)
	return resp, nil
}
