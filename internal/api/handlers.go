// Larder - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package api

import (
	"context"
	"time"

	"github.com/tomtom215/larder/internal/config"
	"github.com/tomtom215/larder/internal/middleware"
	"github.com/tomtom215/larder/internal/recommend"
)

// Recommender is the part of *recommend.Engine the handlers use.
type Recommender interface {
	Recommend(ctx context.Context, ingredients, region string) (*recommend.Result, error)
	Regions() []string
	AllRegionsSentinel() string
	Stats() recommend.Stats
	BuiltAt() time.Time
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_recommend.go: recommendation and region endpoints
//   - handlers_health.go: health and stats endpoints
type Handler struct {
	engine    Recommender
	config    *config.Config
	perfMon   *middleware.PerformanceMonitor
	startTime time.Time
}

// NewHandler creates a new API handler.
//
//	handler := api.NewHandler(engine, cfg)
//	router := api.NewRouter(handler, cfg)
//	srv := &http.Server{Handler: router.SetupChi()}
func NewHandler(engine Recommender, cfg *config.Config) *Handler {
	return &Handler{
		engine:    engine,
		config:    cfg,
		perfMon:   middleware.NewPerformanceMonitor(1000, middleware.DefaultSlowRequestThreshold),
		startTime: time.Now(),
	}
}

// PerformanceMonitor returns the monitor fed by the router middleware.
func (h *Handler) PerformanceMonitor() *middleware.PerformanceMonitor {
	return h.perfMon
}
