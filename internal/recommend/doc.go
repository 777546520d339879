// Larder - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

// Package recommend finds recipes whose ingredient lists resemble a
// free-text query.
//
// # Pipeline
//
// The engine is built once at startup from the recipe corpus:
//
//   - Vectorize: every ingredient list becomes an L2-normalized TF-IDF
//     vector (see package vectorize).
//   - Index: the vectors are fitted into a neighbor index (see package
//     neighbors). Brute force and a vantage-point tree are available and
//     return identical results.
//
// Each request then runs:
//
//  1. Encode the query text with the frozen vocabulary.
//  2. Fetch the NeighborCount nearest recipes by Euclidean distance, ties
//     broken by corpus position.
//  3. Drop recipes whose Region is not exactly the requested region, unless
//     the region is the all-regions sentinel ("All" by default).
//  4. Keep at most MaxResults and project them to Recommendation.
//
// Filtering happens after the neighbor fetch, so a region filter can
// return fewer than NeighborCount recipes, or none, even when the corpus
// holds more recipes from that region.
//
// # Errors
//
// NewEngine fails with ErrInvalidCorpus when the corpus is empty or has no
// usable ingredient tokens. A query whose tokens are all unknown is not an
// error: it encodes to the zero vector and Result.Degenerate is set.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recipes, recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//
//	res, err := engine.Recommend(ctx, "tomato, basil, mozzarella", "Italian")
//
// # Thread Safety
//
// The engine holds no mutable state besides atomic counters and may be
// shared by all request handlers.
package recommend
