// Larder - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/larder/internal/config"
	"github.com/tomtom215/larder/internal/corpus"
	"github.com/tomtom215/larder/internal/metrics"
	"github.com/tomtom215/larder/internal/recommend"
)

// initEngine loads the recipe corpus and builds the recommendation engine.
// Both steps are timed into Prometheus.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initEngine(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*recommend.Engine, error) {
	format, err := corpus.ResolveFormat(cfg.Corpus.Path, cfg.Corpus.Format)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("path", cfg.Corpus.Path).
		Str("format", format).
		Msg("Loading recipe corpus")

	start := time.Now()
	recipes, err := corpus.Load(ctx, cfg.Corpus.Path, format)
	metrics.RecordCorpusLoad(format, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}

	logger.Info().
		Int("recipes", len(recipes)).
		Dur("duration", time.Since(start)).
		Msg("Recipe corpus loaded")

	start = time.Now()
	engine, err := recommend.NewEngine(recipes, cfg.Recommend.ToEngineConfig(), logger)
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}

	stats := engine.Stats()
	metrics.RecordModelBuild(stats.IndexKind, stats.CorpusSize, stats.VocabularySize, time.Since(start))

	logger.Info().
		Int("recipes", stats.CorpusSize).
		Int("vocabulary", stats.VocabularySize).
		Int("regions", stats.RegionCount).
		Str("index", stats.IndexKind).
		Dur("duration", time.Since(start)).
		Msg("Recommendation engine built")

	return engine, nil
}
