// Larder - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/larder/internal/recommend"
)

// DefaultStatsInterval is used when the reporter is given no interval.
const DefaultStatsInterval = 5 * time.Minute

// StatsSource is implemented by *recommend.Engine.
type StatsSource interface {
	Stats() recommend.Stats
}

// StatsReporterService periodically logs engine usage counters along with
// the change since the previous report.
type StatsReporterService struct {
	source   StatsSource
	interval time.Duration
	logger   zerolog.Logger
	name     string

	last recommend.Stats
}

// NewStatsReporterService creates a reporter. A non-positive interval uses
// DefaultStatsInterval.
//
//nolint:gocritic // zerolog.Logger is passed by value throughout
func NewStatsReporterService(source StatsSource, interval time.Duration, logger zerolog.Logger) *StatsReporterService {
	if interval <= 0 {
		interval = DefaultStatsInterval
	}
	return &StatsReporterService{
		source:   source,
		interval: interval,
		logger:   logger.With().Str("service", "stats-reporter").Logger(),
		name:     "stats-reporter",
	}
}

// Serve implements suture.Service. It reports once on every tick and a
// final time on shutdown.
func (s *StatsReporterService) Serve(ctx context.Context) error {
	s.last = s.source.Stats()
	s.logger.Info().
		Int("corpus_size", s.last.CorpusSize).
		Int("vocabulary_size", s.last.VocabularySize).
		Str("index_kind", s.last.IndexKind).
		Dur("interval", s.interval).
		Msg("stats reporter starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.report()
			return ctx.Err()
		case <-ticker.C:
			s.report()
		}
	}
}

// report logs current counters and their change since the last report.
func (s *StatsReporterService) report() {
	cur := s.source.Stats()
	s.logger.Info().
		Int64("queries_served", cur.QueriesServed).
		Int64("queries_delta", cur.QueriesServed-s.last.QueriesServed).
		Int64("degenerate_queries", cur.DegenerateQueries).
		Int64("degenerate_delta", cur.DegenerateQueries-s.last.DegenerateQueries).
		Int64("empty_results", cur.EmptyResults).
		Int64("empty_delta", cur.EmptyResults-s.last.EmptyResults).
		Msg("engine stats")
	s.last = cur
}

// String identifies the service in supervisor events.
func (s *StatsReporterService) String() string {
	return s.name
}
