// Larder - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

/*
Package services provides suture.Service wrappers for Larder components.

Each wrapper implements suture's Serve(ctx) error and fmt.Stringer, returns
ctx.Err() on cancellation, and returns a wrapped error when the supervisor
should restart it.

HTTPServerService:
  - Runs *http.Server.ListenAndServe in a goroutine
  - Calls Shutdown with a fresh timeout when the tree stops

StatsReporterService:
  - Logs engine query counters on a fixed interval
  - Emits a final report on shutdown
*/
package services
