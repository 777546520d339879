// Larder - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values for RecommendRequests.
const (
	OutcomeOK       = "ok"
	OutcomeEmpty    = "empty"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
	OutcomeCanceled = "canceled"
)

// Region filter label values. The region itself is not a label value
// since clients choose it freely.
const (
	RegionFilterAll    = "all"
	RegionFilterRegion = "region"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "larder_recommend_requests_total",
			Help: "Total number of recommendation requests by region filter and outcome",
		},
		[]string{"region_filter", "outcome"},
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "larder_recommend_duration_seconds",
			Help:    "Time to encode, search and filter one recommendation request",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	RecommendResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "larder_recommend_results",
			Help:    "Number of recipes returned per recommendation request",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 10},
		},
	)

	RecommendDegenerateQueries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "larder_recommend_degenerate_queries_total",
			Help: "Recommendation queries with no known ingredient tokens",
		},
	)

	// Corpus and Model Metrics
	CorpusRecipes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "larder_corpus_recipes",
			Help: "Number of recipes in the loaded corpus",
		},
	)

	VocabularySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "larder_vocabulary_size",
			Help: "Number of distinct ingredient tokens in the TF-IDF vocabulary",
		},
	)

	ModelBuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "larder_model_build_duration_seconds",
			Help:    "Time to build the TF-IDF model and fit the neighbor index",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"index"},
	)

	CorpusLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "larder_corpus_load_duration_seconds",
			Help:    "Time to read the recipe corpus file",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"format", "status"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a rejected request.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RegionFilterLabel maps a requested region to a bounded label value.
func RegionFilterLabel(region, allSentinel string) string {
	if region == allSentinel {
		return RegionFilterAll
	}
	return RegionFilterRegion
}

// RecordRecommendation records one completed recommendation request.
// Duration and result counts are only observed for successful outcomes.
func RecordRecommendation(regionFilter, outcome string, results int, degenerate bool, duration time.Duration) {
	RecommendRequests.WithLabelValues(regionFilter, outcome).Inc()
	if degenerate {
		RecommendDegenerateQueries.Inc()
	}
	if outcome != OutcomeOK && outcome != OutcomeEmpty {
		return
	}
	RecommendDuration.Observe(duration.Seconds())
	RecommendResults.Observe(float64(results))
}

// RecordModelBuild records the engine build and sets the corpus gauges.
func RecordModelBuild(index string, recipes, vocabulary int, duration time.Duration) {
	ModelBuildDuration.WithLabelValues(index).Observe(duration.Seconds())
	CorpusRecipes.Set(float64(recipes))
	VocabularySize.Set(float64(vocabulary))
}

// RecordCorpusLoad records a corpus file read.
func RecordCorpusLoad(format string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	CorpusLoadDuration.WithLabelValues(format, status).Observe(duration.Seconds())
}
