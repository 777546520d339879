// Larder - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/larder/internal/recommend/neighbors"
	"github.com/tomtom215/larder/internal/recommend/vectorize"
)

var (
	// ErrInvalidCorpus means the engine cannot be built from the corpus.
	ErrInvalidCorpus = vectorize.ErrInvalidCorpus

	// ErrEncodingDegenerate marks a query with no known ingredient tokens.
	// Recommend reports it through Result.Degenerate rather than an error.
	ErrEncodingDegenerate = vectorize.ErrEncodingDegenerate
)

// Engine answers ingredient queries against a fixed recipe corpus.
// Everything it reads is built by NewEngine and never modified, so it is
// safe for concurrent use.
type Engine struct {
	config  *Config
	logger  zerolog.Logger
	recipes []Recipe
	model   *vectorize.Model
	index   neighbors.Index
	regions []string
	builtAt time.Time

	queries    atomic.Int64
	degenerate atomic.Int64
	empty      atomic.Int64
}

// NewEngine vectorizes recipes and fits the neighbor index. The recipes
// slice is retained and must not be modified afterwards.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(recipes []Recipe, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if len(recipes) == 0 {
		return nil, fmt.Errorf("%w: corpus is empty", ErrInvalidCorpus)
	}

	texts := make([]string, len(recipes))
	for i := range recipes {
		texts[i] = recipes[i].IngredientsText
	}

	model, err := vectorize.Build(texts)
	if err != nil {
		return nil, fmt.Errorf("build vectorizer: %w", err)
	}

	index, err := neighbors.New(cfg.IndexKind)
	if err != nil {
		return nil, err
	}
	if err := index.Fit(model.Documents()); err != nil {
		return nil, fmt.Errorf("%w: fit index: %v", ErrInvalidCorpus, err)
	}

	e := &Engine{
		config:  cfg.Clone(),
		logger:  logger.With().Str("component", "recommend").Logger(),
		recipes: recipes,
		model:   model,
		index:   index,
		regions: distinctRegions(recipes),
		builtAt: time.Now(),
	}

	e.logger.Info().
		Int("recipes", len(recipes)).
		Int("vocabulary", model.Size()).
		Int("regions", len(e.regions)).
		Str("index", index.Kind()).
		Msg("recommendation engine built")

	return e, nil
}

func distinctRegions(recipes []Recipe) []string {
	seen := make(map[string]struct{})
	for i := range recipes {
		if r := recipes[i].Region; r != "" {
			seen[r] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

// Query returns the k nearest corpus recipes to an encoded vector.
func (e *Engine) Query(vector []float64, k int) ([]neighbors.Neighbor, error) {
	return e.index.Query(vector, k)
}

// Encode maps ingredient text into the engine's vector space.
func (e *Engine) Encode(ingredients string) ([]float64, error) {
	return e.model.Encode(ingredients)
}

// Recommend returns up to MaxResults recipes similar to ingredients. The
// NeighborCount nearest recipes are fetched first; when region is not the
// all-regions sentinel, those whose Region differs from it are then dropped.
// An empty result is not an error.
func (e *Engine) Recommend(ctx context.Context, ingredients, region string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	e.queries.Add(1)

	res := &Result{
		Recommendations: []Recommendation{},
		Region:          region,
		Filtered:        region != e.config.AllRegionsSentinel,
	}

	vec, err := e.model.Encode(ingredients)
	switch {
	case errors.Is(err, ErrEncodingDegenerate):
		res.Degenerate = true
		e.degenerate.Add(1)
	case err != nil:
		return nil, fmt.Errorf("encode ingredients: %w", err)
	}

	var hits []neighbors.Neighbor
	if res.Degenerate {
		hits = e.zeroQueryNeighbors(e.config.NeighborCount)
	} else {
		hits, err = e.index.Query(vec, e.config.NeighborCount)
		if err != nil {
			return nil, fmt.Errorf("query index: %w", err)
		}
	}
	res.Neighbors = hits

	for _, hit := range hits {
		if len(res.Recommendations) == e.config.MaxResults {
			break
		}
		recipe := e.recipes[hit.Index]
		if res.Filtered && recipe.Region != region {
			continue
		}
		res.Recommendations = append(res.Recommendations, project(recipe))
	}

	if len(res.Recommendations) == 0 {
		e.empty.Add(1)
	}
	res.Duration = time.Since(start)

	e.logger.Debug().
		Str("region", region).
		Bool("degenerate", res.Degenerate).
		Int("fetched", len(hits)).
		Int("returned", len(res.Recommendations)).
		Dur("duration", res.Duration).
		Msg("recommendation complete")

	return res, nil
}

// zeroQueryNeighbors answers a zero query vector. Every document is either
// unit length or empty, so its distance to the origin is exactly 1 or 0 and
// ties fall back to corpus order.
func (e *Engine) zeroQueryNeighbors(k int) []neighbors.Neighbor {
	docs := e.model.Documents()
	hits := make([]neighbors.Neighbor, len(docs))
	for i, doc := range docs {
		hits[i] = neighbors.Neighbor{Index: i, Distance: 1}
		if isZero(doc) {
			hits[i].Distance = 0
		}
	}
	sort.SliceStable(hits, func(a, b int) bool { return hits[a].Distance < hits[b].Distance })
	if k < len(hits) {
		hits = hits[:k]
	}
	return hits
}

func isZero(vec []float64) bool {
	for _, v := range vec {
		if v != 0 {
			return false
		}
	}
	return true
}

// Regions returns the distinct non-empty regions in the corpus, sorted.
func (e *Engine) Regions() []string {
	out := make([]string, len(e.regions))
	copy(out, e.regions)
	return out
}

// AllRegionsSentinel returns the region value that disables filtering.
func (e *Engine) AllRegionsSentinel() string {
	return e.config.AllRegionsSentinel
}

// Recipe returns the corpus record at index.
func (e *Engine) Recipe(index int) (Recipe, bool) {
	if index < 0 || index >= len(e.recipes) {
		return Recipe{}, false
	}
	return e.recipes[index], true
}

// BuiltAt returns when the engine finished building.
func (e *Engine) BuiltAt() time.Time {
	return e.builtAt
}

// Stats returns a snapshot of engine statistics.
func (e *Engine) Stats() Stats {
	return Stats{
		CorpusSize:        len(e.recipes),
		VocabularySize:    e.model.Size(),
		RegionCount:       len(e.regions),
		IndexKind:         e.index.Kind(),
		NeighborCount:     e.config.NeighborCount,
		MaxResults:        e.config.MaxResults,
		QueriesServed:     e.queries.Load(),
		DegenerateQueries: e.degenerate.Load(),
		EmptyResults:      e.empty.Load(),
	}
}
