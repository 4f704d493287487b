// Sentiment Pipeline - Review Intelligence Dashboard
// Copyright 2026 Rutuja S. (rutuja395)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rutuja395/sentiment-pipelinev1

package reviewapi

import (
	"net/url"
	"strconv"
	"strings"
)

// LocationsResponse is the payload of GET /api/locations.
type LocationsResponse struct {
	Locations []string `json:"locations"`
}

// StatsResponse is the payload of GET /api/stats/{locationID}.
//
// All fields are optional on the wire; a location with no reviews answers
// with an error body carrying none of them, which decodes to zero values.
type StatsResponse struct {
	TotalReviews       int            `json:"total_reviews"`
	AverageRating      float64        `json:"average_rating"`
	RatingDistribution map[string]int `json:"rating_distribution"`
}

// TopicCount pairs a topic label with its mention count.
type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// KeyDrivers groups the topics most associated with low and high ratings.
type KeyDrivers struct {
	Complaints []TopicCount `json:"complaints"`
	Praises    []TopicCount `json:"praises"`
}

// Quote is a representative review excerpt attached to insights.
type Quote struct {
	ReviewID string `json:"review_id"`
	Text     string `json:"text"`
}

// InsightsResponse is the payload of GET /api/insights/{locationID}.
type InsightsResponse struct {
	TopTopics            []TopicCount `json:"top_topics"`
	KeyDrivers           KeyDrivers   `json:"key_drivers"`
	RepresentativeQuotes []Quote      `json:"representative_quotes"`
	Anomalies            []string     `json:"anomalies"`
	GeneratedSummary     string       `json:"generated_summary"`
}

// ChatRequest is the POST /api/chat body.
//
// UseSemantic is never set by the dashboard; with omitempty the wire body
// stays exactly {query, location_id}.
type ChatRequest struct {
	Query       string `json:"query"`
	LocationID  string `json:"location_id"`
	UseSemantic bool   `json:"use_semantic,omitempty"`
}

// Citation links a chat answer back to a source review.
type Citation struct {
	ReviewID string `json:"review_id"`
	Text     string `json:"text"`
}

// ChatResponse is the payload of POST /api/chat.
type ChatResponse struct {
	Answer      string     `json:"answer"`
	Citations   []Citation `json:"citations"`
	ReviewCount int        `json:"review_count"`
}

// Review is a single review record returned by GET /api/reviews.
type Review struct {
	ReviewID     string  `json:"review_id"`
	LocationID   string  `json:"location_id"`
	Source       string  `json:"source"`
	Rating       float64 `json:"rating"`
	ReviewText   string  `json:"review_text"`
	ReviewerName string  `json:"reviewer_name"`
	ReviewerType string  `json:"reviewer_type"`
	ReviewDate   string  `json:"review_date"`
	RelativeDate string  `json:"relative_date"`
	Language     string  `json:"language"`
}

// ReviewsResponse is the payload of GET /api/reviews.
type ReviewsResponse struct {
	Count   int      `json:"count"`
	Reviews []Review `json:"reviews"`
}

// ReviewsQuery builds the GET /api/reviews query string. Zero-valued fields
// are omitted from the URL entirely.
type ReviewsQuery struct {
	LocationID string
	MinRating  *int
	MaxRating  *int
	Sentiment  string
	StartDate  string
	EndDate    string
	Topics     []string
	Limit      int
}

// Values encodes the query into URL parameters, omitting unset fields.
func (q ReviewsQuery) Values() url.Values {
	v := url.Values{}
	if q.LocationID != "" {
		v.Set("location_id", q.LocationID)
	}
	if q.MinRating != nil {
		v.Set("min_rating", strconv.Itoa(*q.MinRating))
	}
	if q.MaxRating != nil {
		v.Set("max_rating", strconv.Itoa(*q.MaxRating))
	}
	if q.Sentiment != "" {
		v.Set("sentiment", q.Sentiment)
	}
	if q.StartDate != "" {
		v.Set("start_date", q.StartDate)
	}
	if q.EndDate != "" {
		v.Set("end_date", q.EndDate)
	}
	if len(q.Topics) > 0 {
		v.Set("topics", strings.Join(q.Topics, ","))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}
