// Sentiment Pipeline - Review Intelligence Dashboard
// Copyright 2026 Rutuja S. (rutuja395)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rutuja395/sentiment-pipelinev1

package dashboard

import (
	"sync"
	"time"

	"github.com/rutuja395/sentiment-pipelinev1/internal/metrics"
)

// UI modes. ModeExplore is the initial mode.
const (
	ModeExplore = "explore"
	ModeChat    = "chat"
)

// Chat transcript roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Panel identifies a replaceable dashboard panel slot. Used as the label for
// stale-response metrics and as the key for failure notices. A plain string
// alias so templates can index the notice map directly.
type Panel = string

const (
	PanelStats    Panel = "stats"
	PanelInsights Panel = "insights"
	PanelReviews  Panel = "reviews"
)

// FailureNotice is the uniform text shown when a panel load or chat request
// fails. The affected panel keeps its previous content; the notice renders
// above it (or as an assistant message for chat).
const FailureNotice = "Something went wrong. Please try again."

// ChatMessage is one entry in the append-only chat transcript.
type ChatMessage struct {
	Role string    `json:"role"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// StatsView is the rendered model of a location's aggregate statistics.
// Loaded distinguishes "never loaded" from a legitimate all-zero result.
type StatsView struct {
	Loaded             bool           `json:"loaded"`
	TotalReviews       int            `json:"total_reviews"`
	AverageRating      float64        `json:"average_rating"`
	RatingDistribution map[string]int `json:"rating_distribution"`
}

// TopicCount pairs a topic label with its mention count.
type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// Quote is a representative review excerpt surfaced by the insights panel.
type Quote struct {
	ReviewID string `json:"review_id"`
	Text     string `json:"text"`
}

// InsightsView is the rendered model of a location's insights. All slices
// are non-nil; absent upstream arrays render as empty lists.
type InsightsView struct {
	Loaded     bool         `json:"loaded"`
	TopTopics  []TopicCount `json:"top_topics"`
	Complaints []TopicCount `json:"complaints"`
	Praises    []TopicCount `json:"praises"`
	Quotes     []Quote      `json:"quotes"`
	Anomalies  []string     `json:"anomalies"`
	Summary    string       `json:"summary"`
}

// ReviewCard is one entry in the filtered review results. Snippet is the
// review text truncated for display.
type ReviewCard struct {
	// Rating keeps the wire value; backends report fractional ratings.
	Rating  float64 `json:"rating"`
	Snippet string  `json:"snippet"`
	Source  string  `json:"source"`
	Date    string  `json:"date"`
}

// ReviewsView is the rendered model of a filtered review search.
type ReviewsView struct {
	Loaded bool         `json:"loaded"`
	Count  int          `json:"count"`
	Cards  []ReviewCard `json:"cards"`
}

// Snapshot is a consistent copy of the whole dashboard state, safe to render
// without holding the store lock.
type Snapshot struct {
	SelectedLocation string           `json:"selected_location"`
	Locations        []string         `json:"locations"`
	Mode             string           `json:"mode"`
	Transcript       []ChatMessage    `json:"transcript"`
	Stats            StatsView        `json:"stats"`
	Insights         InsightsView     `json:"insights"`
	Reviews          ReviewsView      `json:"reviews"`
	Notices          map[Panel]string `json:"notices"`
}

// Store holds the dashboard's mutable state. The original controller kept
// this in module globals behind a single UI thread; the server handles
// concurrent requests, so every access is mutex-guarded.
//
// Each replaceable panel slot (stats, insights, reviews) carries a
// monotonically increasing sequence number. Loads call Begin<Slot> before
// fetching and Apply<Slot>/Fail<Slot> with that sequence afterwards; a
// result whose sequence is stale (a newer load began meanwhile) is dropped
// so only the most recent response for a panel is ever applied.
type Store struct {
	mu sync.RWMutex

	selectedLocation string
	locations        []string
	mode             string
	transcript       []ChatMessage

	stats    StatsView
	insights InsightsView
	reviews  ReviewsView

	statsSeq    uint64
	insightsSeq uint64
	reviewsSeq  uint64

	notices map[Panel]string
}

// NewStore creates an empty store starting in the given mode.
func NewStore(initialMode string) *Store {
	if initialMode == "" {
		initialMode = ModeExplore
	}
	return &Store{
		mode:    initialMode,
		notices: make(map[Panel]string),
	}
}

// SetLocations replaces the location list and selects the given location.
func (s *Store) SetLocations(locations []string, selected string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locations = append([]string(nil), locations...)
	s.selectedLocation = selected
}

// SelectLocation sets the selected location.
func (s *Store) SelectLocation(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedLocation = id
}

// SelectedLocation returns the currently selected location identifier, or
// empty when no locations are loaded.
func (s *Store) SelectedLocation() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedLocation
}

// HasLocation reports whether id is in the loaded location list.
func (s *Store) HasLocation(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, loc := range s.locations {
		if loc == id {
			return true
		}
	}
	return false
}

// SetMode sets the current UI mode. Validation happens in the controller.
func (s *Store) SetMode(mode string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
}

// Mode returns the current UI mode.
func (s *Store) Mode() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// AppendMessage appends a message to the chat transcript. The transcript is
// append-only; nothing ever removes or rewrites entries.
func (s *Store) AppendMessage(role, text string) {
	s.mu.Lock()
	s.transcript = append(s.transcript, ChatMessage{Role: role, Text: text, At: time.Now()})
	s.mu.Unlock()

	metrics.RecordChatMessage(role)
}

// BeginStats starts a stats load and returns its sequence number.
func (s *Store) BeginStats() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statsSeq++
	return s.statsSeq
}

// ApplyStats installs a stats view if seq is still current. A stale apply
// mutates nothing and increments the stale-drop metric.
func (s *Store) ApplyStats(seq uint64, vm StatsView) bool {
	s.mu.Lock()
	if seq != s.statsSeq {
		s.mu.Unlock()
		metrics.RecordStaleResponseDropped(string(PanelStats))
		return false
	}
	s.stats = vm
	delete(s.notices, PanelStats)
	s.mu.Unlock()
	return true
}

// FailStats records the uniform failure notice for the stats panel if seq is
// still current. The previous view is left untouched either way.
func (s *Store) FailStats(seq uint64) bool {
	return s.failPanel(PanelStats, seq, &s.statsSeq)
}

// BeginInsights starts an insights load and returns its sequence number.
func (s *Store) BeginInsights() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insightsSeq++
	return s.insightsSeq
}

// ApplyInsights installs an insights view if seq is still current.
func (s *Store) ApplyInsights(seq uint64, vm InsightsView) bool {
	s.mu.Lock()
	if seq != s.insightsSeq {
		s.mu.Unlock()
		metrics.RecordStaleResponseDropped(string(PanelInsights))
		return false
	}
	s.insights = vm
	delete(s.notices, PanelInsights)
	s.mu.Unlock()
	return true
}

// FailInsights records the uniform failure notice for the insights panel if
// seq is still current.
func (s *Store) FailInsights(seq uint64) bool {
	return s.failPanel(PanelInsights, seq, &s.insightsSeq)
}

// BeginReviews starts a review search and returns its sequence number.
func (s *Store) BeginReviews() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviewsSeq++
	return s.reviewsSeq
}

// ApplyReviews installs a review results view if seq is still current.
func (s *Store) ApplyReviews(seq uint64, vm ReviewsView) bool {
	s.mu.Lock()
	if seq != s.reviewsSeq {
		s.mu.Unlock()
		metrics.RecordStaleResponseDropped(string(PanelReviews))
		return false
	}
	s.reviews = vm
	delete(s.notices, PanelReviews)
	s.mu.Unlock()
	return true
}

// FailReviews records the uniform failure notice for the reviews panel if
// seq is still current.
func (s *Store) FailReviews(seq uint64) bool {
	return s.failPanel(PanelReviews, seq, &s.reviewsSeq)
}

// failPanel records the failure notice for a panel under the sequence guard.
// The caller passes a pointer to the slot's counter; the store lock protects
// the read.
func (s *Store) failPanel(panel Panel, seq uint64, current *uint64) bool {
	s.mu.Lock()
	if seq != *current {
		s.mu.Unlock()
		metrics.RecordStaleResponseDropped(string(panel))
		return false
	}
	s.notices[panel] = FailureNotice
	s.mu.Unlock()
	return true
}

// Snapshot returns a consistent copy of the whole state for rendering.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		SelectedLocation: s.selectedLocation,
		Locations:        append([]string(nil), s.locations...),
		Mode:             s.mode,
		Transcript:       append([]ChatMessage(nil), s.transcript...),
		Stats:            s.stats,
		Insights:         s.insights,
		Reviews:          s.reviews,
		Notices:          make(map[Panel]string, len(s.notices)),
	}

	// Deep-copy the nested containers so renderers never alias live state.
	if s.stats.RatingDistribution != nil {
		snap.Stats.RatingDistribution = make(map[string]int, len(s.stats.RatingDistribution))
		for k, v := range s.stats.RatingDistribution {
			snap.Stats.RatingDistribution[k] = v
		}
	}
	snap.Insights.TopTopics = append([]TopicCount(nil), s.insights.TopTopics...)
	snap.Insights.Complaints = append([]TopicCount(nil), s.insights.Complaints...)
	snap.Insights.Praises = append([]TopicCount(nil), s.insights.Praises...)
	snap.Insights.Quotes = append([]Quote(nil), s.insights.Quotes...)
	snap.Insights.Anomalies = append([]string(nil), s.insights.Anomalies...)
	snap.Reviews.Cards = append([]ReviewCard(nil), s.reviews.Cards...)

	for k, v := range s.notices {
		snap.Notices[k] = v
	}

	return snap
}
