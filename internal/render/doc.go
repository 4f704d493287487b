// Sentiment Pipeline - Review Intelligence Dashboard
// Copyright 2026 Rutuja S. (rutuja395)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rutuja395/sentiment-pipelinev1

// Package render produces the dashboard's HTML from state snapshots.
//
// Templates are embedded at build time and parsed once. The Page entry point
// renders the full document; StatsPanel, InsightsPanel, ChatHistory,
// ReviewResults, and LocationOptions render fragments so handlers can return
// wholesale panel replacements.
//
// Everything interpolated into the markup (review text, topic names, chat
// answers, location identifiers) is auto-escaped by html/template, so
// backend-provided text can never inject script or markup into the page.
package render
