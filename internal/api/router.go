// Sentiment Pipeline - Review Intelligence Dashboard
// Copyright 2026 Rutuja S. (rutuja395)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rutuja395/sentiment-pipelinev1

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/rutuja395/sentiment-pipelinev1/internal/cache"
	"github.com/rutuja395/sentiment-pipelinev1/internal/config"
	"github.com/rutuja395/sentiment-pipelinev1/internal/dashboard"
	"github.com/rutuja395/sentiment-pipelinev1/internal/middleware"
	"github.com/rutuja395/sentiment-pipelinev1/internal/render"
	"github.com/rutuja395/sentiment-pipelinev1/internal/reviewapi"
)

// Router wires the dashboard handlers into a chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	securityOn    bool
}

// NewRouter creates a router from the dashboard's components. breaker may be
// nil when the upstream client runs without circuit protection (tests).
func NewRouter(cfg *config.Config, controller *dashboard.Controller, renderer *render.Renderer, breaker *reviewapi.BreakerClient, responseCache *cache.Cache) *Router {
	return &Router{
		handler: &Handler{
			controller: controller,
			renderer:   renderer,
			breaker:    breaker,
			cache:      responseCache,
			startTime:  time.Now(),
		},
		chiMiddleware: NewChiMiddleware(&cfg.Security),
		securityOn:    cfg.Security.SecurityHeadersOn,
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())
	r.Use(RequestLogging())

	// Dashboard page and panel fragments. These render HTML driven by plain
	// form posts, so they share one rate limit bucket.
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitAPI())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(middleware.Compression))

		r.Get("/", router.handler.DashboardPage)

		r.Route("/dashboard", func(r chi.Router) {
			r.Post("/location", router.handler.SelectLocation)
			r.Post("/mode", router.handler.SwitchMode)
			r.Get("/stats", router.handler.Stats)
			r.Get("/insights", router.handler.Insights)
			r.Post("/insights/regenerate", router.handler.RegenerateInsights)
			r.Get("/reviews", router.handler.Reviews)

			// Chat triggers a backend LLM call per message, so it carries
			// its own stricter limit.
			r.With(router.chiMiddleware.RateLimitChat()).Post("/chat", router.handler.Chat)
		})
	})

	// JSON API endpoints.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitAPI())
		if router.securityOn {
			r.Use(APISecurityHeaders())
		}
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(middleware.Compression))

		r.Get("/state", router.handler.State)
		r.Get("/health", router.handler.Health)
	})

	// Embedded stylesheet.
	r.Handle("/static/*", http.StripPrefix("/static/", render.StaticHandler()))

	// Operational endpoints.
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}
