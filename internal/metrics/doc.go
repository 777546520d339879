// Larder - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
are exposed at /metrics:

	curl http://localhost:8080/metrics

# Available Metrics

HTTP Metrics (recorded by middleware.PrometheusMetrics):
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Recommendation Metrics:
  - larder_recommend_requests_total: Requests (counter)
    Labels: region_filter (all, region), outcome (ok, empty, invalid, error, canceled)
  - larder_recommend_duration_seconds: Pipeline latency (histogram)
  - larder_recommend_results: Recipes returned per request (histogram)
  - larder_recommend_degenerate_queries_total: Queries with no known tokens (counter)

Corpus Metrics:
  - larder_corpus_recipes: Recipes loaded (gauge)
  - larder_vocabulary_size: TF-IDF vocabulary size (gauge)
  - larder_model_build_duration_seconds: Model build and index fit time (histogram)
    Labels: index
  - larder_corpus_load_duration_seconds: Corpus read time (histogram)
    Labels: format, status

# Usage

	start := time.Now()
	res, err := engine.Recommend(ctx, ingredients, region)
	metrics.RecordRecommendation(
	    metrics.RegionFilterLabel(region, "All"),
	    metrics.OutcomeOK, len(res.Recommendations), res.Degenerate, time.Since(start))

# Label Cardinality

The requested region is reduced to the all/region pair so arbitrary client
input never becomes a label value.
*/
package metrics
