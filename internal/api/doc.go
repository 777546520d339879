// Larder - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

/*
Package api provides the HTTP REST API layer for Larder.

It exposes the recommendation engine over a small chi router. All JSON
responses share one envelope (APIResponse) carrying either data or an
APIError, plus request metadata.

Endpoints:

  - POST /api/v1/recommendations: ingredients and optional region in, up to
    five recipes out (JSON or url-encoded form body)
  - GET /api/v1/regions: the all-regions sentinel followed by corpus regions
  - GET /api/v1/health: corpus and model summary plus uptime
  - GET /api/v1/stats: engine counters and per-endpoint latency
  - GET /metrics: Prometheus scrape endpoint

Middleware Stack:

Every request passes through request ID assignment, real IP extraction,
panic recovery, CORS (go-chi/cors), Prometheus instrumentation and the
performance monitor. The /api/v1 group adds per-IP rate limiting
(go-chi/httprate) and security headers.

Usage Example:

	engine, _ := recommend.NewEngine(recipes, cfg.Recommend.ToEngineConfig(), logger)
	handler := api.NewHandler(engine, cfg)
	router := api.NewRouter(handler, cfg)

	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}

Thread Safety:

Handlers hold no mutable state of their own. The engine is read-only after
construction and the performance monitor is mutex-guarded.

See Also:

  - internal/recommend: the engine behind the handlers
  - internal/middleware: request ID, metrics and performance middleware
  - internal/validation: request body validation
*/
package api
