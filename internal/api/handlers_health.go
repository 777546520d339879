// Larder - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/larder/internal/middleware"
	"github.com/tomtom215/larder/internal/recommend"
)

// HealthStatus is the payload of GET /api/v1/health.
type HealthStatus struct {
	Status         string    `json:"status"`
	CorpusSize     int       `json:"corpus_size"`
	VocabularySize int       `json:"vocabulary_size"`
	IndexKind      string    `json:"index_kind"`
	Uptime         float64   `json:"uptime_seconds"`
	BuiltAt        time.Time `json:"built_at"`
}

// StatsResponse is the payload of GET /api/v1/stats.
type StatsResponse struct {
	Engine    recommend.Stats            `json:"engine"`
	Endpoints []middleware.EndpointStats `json:"endpoints"`
}

// Health handles GET /api/v1/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	stats := h.engine.Stats()

	WriteSuccess(w, r, HealthStatus{
		Status:         "healthy",
		CorpusSize:     stats.CorpusSize,
		VocabularySize: stats.VocabularySize,
		IndexKind:      stats.IndexKind,
		Uptime:         time.Since(h.startTime).Seconds(),
		BuiltAt:        h.engine.BuiltAt(),
	})
}

// Stats handles GET /api/v1/stats.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	endpoints := h.perfMon.Stats()
	if endpoints == nil {
		endpoints = []middleware.EndpointStats{}
	}
	WriteSuccess(w, r, StatsResponse{
		Engine:    h.engine.Stats(),
		Endpoints: endpoints,
	})
}
