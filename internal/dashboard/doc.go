// Sentiment Pipeline - Review Intelligence Dashboard
// Copyright 2026 Rutuja S. (rutuja395)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rutuja395/sentiment-pipelinev1

// Package dashboard holds the dashboard's typed state store and the
// controller implementing its operations.
//
// # State Store
//
// Store is the single source of truth for the dashboard: selected location,
// location list, UI mode, the append-only chat transcript, and the three
// panel view models (stats, insights, review results). All access is
// mutex-guarded because the HTTP server handles concurrent requests.
//
// Each panel slot carries a monotonically increasing sequence number. A load
// calls Begin<Slot> before fetching and Apply<Slot> (or Fail<Slot>) with
// that sequence afterwards; results that arrive after a newer load began are
// dropped. This guarantees the panel always shows the most recently
// requested data, even when slow responses arrive out of order.
//
// # Controller
//
// Controller implements the dashboard operations: Initialize,
// SelectLocation, SwitchMode, LoadStats, LoadInsights, RegenerateInsights,
// SendChat, and ApplyFilters. Location, stats, and insights responses go
// through the TTL response cache; chat and review searches always hit the
// backend.
//
// Upstream failures never crash: the affected panel keeps its previous
// content and a uniform failure notice is recorded for the renderer (or
// appended as an assistant chat message for chat failures).
package dashboard
