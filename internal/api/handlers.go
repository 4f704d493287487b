// Sentiment Pipeline - Review Intelligence Dashboard
// Copyright 2026 Rutuja S. (rutuja395)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rutuja395/sentiment-pipelinev1

package api

import (
	"net/http"
	"time"

	"github.com/rutuja395/sentiment-pipelinev1/internal/cache"
	"github.com/rutuja395/sentiment-pipelinev1/internal/dashboard"
	"github.com/rutuja395/sentiment-pipelinev1/internal/logging"
	"github.com/rutuja395/sentiment-pipelinev1/internal/render"
	"github.com/rutuja395/sentiment-pipelinev1/internal/reviewapi"
)

// Handler holds the dashboard's HTTP handlers and their dependencies.
type Handler struct {
	controller *dashboard.Controller
	renderer   *render.Renderer
	breaker    *reviewapi.BreakerClient
	cache      *cache.Cache
	startTime  time.Time
}

// snapshot returns the current dashboard state for rendering.
func (h *Handler) snapshot() dashboard.Snapshot {
	return h.controller.Store().Snapshot()
}

// renderHTML writes an HTML response from the given render function. Render
// failures after headers are written can only be logged.
func (h *Handler) renderHTML(w http.ResponseWriter, renderFn func() error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderFn(); err != nil {
		logging.Error().Err(err).Msg("Failed to render response")
	}
}

// DashboardPage handles the dashboard document request
//
// @Summary Render the dashboard page
// @Description Renders the full dashboard document for the current state: mode tabs, location selector, stats, insights, chat transcript, and review results.
// @Tags Dashboard
// @Produce html
// @Success 200 {string} string "Dashboard HTML"
// @Router / [get]
func (h *Handler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	snap := h.snapshot()
	h.renderHTML(w, func() error { return h.renderer.Page(w, snap) })
}

// SelectLocation handles location switching
//
// @Summary Switch the selected location
// @Description Selects a location from the loaded list and reloads its stats and insights, then redirects back to the dashboard.
// @Tags Dashboard
// @Accept x-www-form-urlencoded
// @Param location_id formData string true "Location identifier"
// @Success 303 {string} string "Redirect to /"
// @Failure 400 {object} APIResponse "Unknown or missing location"
// @Router /dashboard/location [post]
func (h *Handler) SelectLocation(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		WriteBadRequest(w, r, "Malformed form body")
		return
	}

	req := SelectLocationRequest{LocationID: r.FormValue("location_id")}
	if apiErr := validateRequest(&req); apiErr != nil {
		NewResponseWriter(w, r).ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	if err := h.controller.SelectLocation(r.Context(), req.LocationID); err != nil {
		WriteBadRequest(w, r, err.Error())
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// SwitchMode handles mode tab switching
//
// @Summary Switch the UI mode
// @Description Switches between explore and chat mode, then redirects back to the dashboard.
// @Tags Dashboard
// @Accept x-www-form-urlencoded
// @Param mode formData string true "Target mode" Enums(explore, chat)
// @Success 303 {string} string "Redirect to /"
// @Failure 400 {object} APIResponse "Unknown mode"
// @Router /dashboard/mode [post]
func (h *Handler) SwitchMode(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		WriteBadRequest(w, r, "Malformed form body")
		return
	}

	req := SwitchModeRequest{Mode: r.FormValue("mode")}
	if apiErr := validateRequest(&req); apiErr != nil {
		NewResponseWriter(w, r).ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	if err := h.controller.SwitchMode(req.Mode); err != nil {
		WriteBadRequest(w, r, err.Error())
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Stats handles stats panel refreshes
//
// @Summary Refresh the stats panel
// @Description Loads the selected location's statistics and renders the stats fragment. Upstream failures render the fragment with a notice instead of erroring.
// @Tags Dashboard
// @Produce html
// @Success 200 {string} string "Stats fragment HTML"
// @Router /dashboard/stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.LoadStats(r.Context()); err != nil {
		logging.Error().Err(err).Msg("Stats load failed")
	}

	snap := h.snapshot()
	h.renderHTML(w, func() error { return h.renderer.StatsPanel(w, snap) })
}

// Insights handles insights panel refreshes
//
// @Summary Refresh the insights panel
// @Description Loads the selected location's insights (served from cache when fresh) and renders the insights fragment.
// @Tags Dashboard
// @Produce html
// @Success 200 {string} string "Insights fragment HTML"
// @Router /dashboard/insights [get]
func (h *Handler) Insights(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.LoadInsights(r.Context(), false); err != nil {
		logging.Error().Err(err).Msg("Insights load failed")
	}

	snap := h.snapshot()
	h.renderHTML(w, func() error { return h.renderer.InsightsPanel(w, snap) })
}

// RegenerateInsights handles forced insight recomputation
//
// @Summary Regenerate insights
// @Description Invalidates the cached insights for the selected location and asks the backend to recompute them.
// @Tags Dashboard
// @Produce html
// @Success 200 {string} string "Insights fragment HTML"
// @Router /dashboard/insights/regenerate [post]
func (h *Handler) RegenerateInsights(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.RegenerateInsights(r.Context()); err != nil {
		logging.Error().Err(err).Msg("Insight regeneration failed")
	}

	snap := h.snapshot()
	h.renderHTML(w, func() error { return h.renderer.InsightsPanel(w, snap) })
}

// Chat handles chat message submission
//
// @Summary Send a chat message
// @Description Submits a chat query about the selected location's reviews and renders the updated transcript. Empty input is a silent no-op.
// @Tags Dashboard
// @Accept x-www-form-urlencoded
// @Produce html
// @Param query formData string false "Chat query"
// @Success 200 {string} string "Chat history fragment HTML"
// @Failure 400 {object} APIResponse "Query too long"
// @Router /dashboard/chat [post]
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		WriteBadRequest(w, r, "Malformed form body")
		return
	}

	req := ChatRequest{Query: r.FormValue("query")}
	if apiErr := validateRequest(&req); apiErr != nil {
		NewResponseWriter(w, r).ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	if err := h.controller.SendChat(r.Context(), req.Query); err != nil {
		// The failure notice is already in the transcript; render it.
		logging.Error().Err(err).Msg("Chat request failed")
	}

	snap := h.snapshot()
	h.renderHTML(w, func() error { return h.renderer.ChatHistory(w, snap) })
}

// Reviews handles filtered review searches
//
// @Summary Search reviews with filters
// @Description Runs a filtered review search for the selected location and renders the results fragment. A rating filter matches that exact rating.
// @Tags Dashboard
// @Produce html
// @Param rating query int false "Exact rating filter (1-5)"
// @Param sentiment query string false "Sentiment filter" Enums(positive, negative, neutral)
// @Success 200 {string} string "Review results fragment HTML"
// @Failure 400 {object} APIResponse "Invalid filter values"
// @Router /dashboard/reviews [get]
func (h *Handler) Reviews(w http.ResponseWriter, r *http.Request) {
	req := ReviewFilterRequest{
		Rating:    r.URL.Query().Get("rating"),
		Sentiment: r.URL.Query().Get("sentiment"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		NewResponseWriter(w, r).ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	filters := dashboard.Filters{Sentiment: req.Sentiment}
	if req.Rating != "" {
		// Validated as one of "1".."5" above.
		rating := int(req.Rating[0] - '0')
		filters.Rating = &rating
	}

	if err := h.controller.ApplyFilters(r.Context(), filters); err != nil {
		logging.Error().Err(err).Msg("Review search failed")
	}

	snap := h.snapshot()
	h.renderHTML(w, func() error { return h.renderer.ReviewResults(w, snap) })
}
