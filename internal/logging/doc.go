// Larder - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

// Package logging provides zerolog-based structured logging for Larder.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json", Timestamp: true})
//
//	logging.Info().Int("recipes", n).Msg("corpus loaded")
//	logging.Err(err).Msg("startup failed")
//
// # Configuration
//
// Environment variables, read by the config package:
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - true, false (default: false)
//
// # Request Context
//
// The HTTP request ID middleware stores a request ID and a correlation ID
// in the request context. Ctx returns a logger carrying both:
//
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("bad request body")
//
// # slog
//
// SlogHandler adapts zerolog to log/slog for libraries that require a
// *slog.Logger, such as the sutureslog event hook used by the supervisor.
package logging
