// Larder - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

/*
Package middleware provides HTTP middleware components for the application.

Key Components:

  - Request ID: UUID-based request tracking, mirrored into the logging context
  - Prometheus Metrics: request count, latency and in-flight gauge per chi route
  - Performance Monitor: sliding-window latency percentiles and slow request logs

All middleware has the func(http.Handler) http.Handler shape and is mounted
on the chi router:

	monitor := middleware.NewPerformanceMonitor(1000, time.Second)
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(monitor.Middleware)

Route labels come from chi's route pattern once the request has been routed,
so /api/v1/recommendations is one series however clients spell the path.
Requests that match no route share the "unmatched" label.
*/
package middleware
