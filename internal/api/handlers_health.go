// Sentiment Pipeline - Review Intelligence Dashboard
// Copyright 2026 Rutuja S. (rutuja395)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rutuja395/sentiment-pipelinev1

package api

import (
	"net/http"
	"time"

	"github.com/rutuja395/sentiment-pipelinev1/internal/cache"
)

// HealthStatus is the payload of the health endpoint.
type HealthStatus struct {
	Status         string      `json:"status"`
	UptimeSeconds  int64       `json:"uptime_seconds"`
	CircuitBreaker string      `json:"circuit_breaker"`
	Cache          cache.Stats `json:"cache"`
}

// State handles dashboard state requests
//
// @Summary Get the dashboard state
// @Description Returns a JSON snapshot of the dashboard's typed state: selected location, mode, transcript, and panel view models.
// @Tags API
// @Produce json
// @Success 200 {object} APIResponse{data=dashboard.Snapshot} "Current dashboard state"
// @Router /api/v1/state [get]
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, h.snapshot())
}

// Health handles health check requests
//
// @Summary Get service health
// @Description Returns service health including upstream circuit breaker state, response cache statistics, and uptime.
// @Tags API
// @Produce json
// @Success 200 {object} APIResponse{data=HealthStatus} "Health status"
// @Router /api/v1/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
	}

	if h.breaker != nil {
		status.CircuitBreaker = h.breaker.State()
		if status.CircuitBreaker == "open" {
			status.Status = "degraded"
		}
	}
	if h.cache != nil {
		status.Cache = h.cache.GetStats()
	}

	WriteSuccess(w, r, status)
}
