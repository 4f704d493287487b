// Sentiment Pipeline - Review Intelligence Dashboard
// Copyright 2026 Rutuja S. (rutuja395)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rutuja395/sentiment-pipelinev1

package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"github.com/rutuja395/sentiment-pipelinev1/internal/dashboard"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// StaticHandler serves the embedded static assets (stylesheet).
// Mount it under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The static directory is embedded at compile time.
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}

// Renderer renders the dashboard page and its panel fragments from a state
// snapshot. All server-provided text (review snippets, topic names, chat
// answers) goes through html/template's contextual auto-escaping.
//
// Thread Safety: Safe for concurrent use; templates are parsed once at
// construction and never mutated.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Page renders the full dashboard document.
func (r *Renderer) Page(w io.Writer, snap dashboard.Snapshot) error {
	return r.execute(w, "page", snap)
}

// StatsPanel renders the stats fragment (total reviews, average rating).
func (r *Renderer) StatsPanel(w io.Writer, snap dashboard.Snapshot) error {
	return r.execute(w, "stats_panel", snap)
}

// InsightsPanel renders the insights fragment.
func (r *Renderer) InsightsPanel(w io.Writer, snap dashboard.Snapshot) error {
	return r.execute(w, "insights_panel", snap)
}

// ChatHistory renders the chat transcript fragment.
func (r *Renderer) ChatHistory(w io.Writer, snap dashboard.Snapshot) error {
	return r.execute(w, "chat_history", snap)
}

// ReviewResults renders the filtered review results fragment.
func (r *Renderer) ReviewResults(w io.Writer, snap dashboard.Snapshot) error {
	return r.execute(w, "review_results", snap)
}

// LocationOptions renders the location selector's option list.
func (r *Renderer) LocationOptions(w io.Writer, snap dashboard.Snapshot) error {
	return r.execute(w, "location_options", snap)
}

func (r *Renderer) execute(w io.Writer, name string, snap dashboard.Snapshot) error {
	if err := r.tmpl.ExecuteTemplate(w, name, snap); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}
