// Larder - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/larder/internal/config"
	"github.com/tomtom215/larder/internal/middleware"
)

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router for the given handler.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	mwCfg := DefaultChiMiddlewareConfig()
	if cfg != nil {
		mwCfg = ChiMiddlewareConfigFromSecurity(&cfg.Security)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(mwCfg),
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight
	r.Use(middleware.PrometheusMetrics)
	r.Use(router.handler.perfMon.Middleware)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		NewResponseWriter(w, req).NotFound("Resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		NewResponseWriter(w, req).MethodNotAllowed()
	})

	// Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.Handler())

	// ========================
	// API Endpoints
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())

		r.Get("/health", router.handler.Health)
		r.Get("/stats", router.handler.Stats)
		r.Get("/regions", router.handler.Regions)
		r.Post("/recommendations", router.handler.Recommend)
	})

	return r
}
