// Larder - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package recommend

import (
	"time"

	"github.com/tomtom215/larder/internal/recommend/neighbors"
)

// Recipe is one row of the corpus. Its identity is its position in the
// slice handed to NewEngine.
type Recipe struct {
	// Name is the recipe title.
	Name string `json:"name"`

	// IngredientsText is the raw free-text ingredient list. It is the only
	// field used for similarity.
	IngredientsText string `json:"ingredients_text"`

	// Description is a short summary of the dish.
	Description string `json:"description"`

	// Procedure holds the cooking steps.
	Procedure string `json:"procedure"`

	// Region is the cuisine region, compared by exact string equality.
	Region string `json:"region"`

	// NutritionalValue is kept verbatim from the source.
	NutritionalValue string `json:"nutritional_value"`

	// ImageURL points at a picture of the dish.
	ImageURL string `json:"image_url"`
}

// Recommendation is the user-facing projection of a Recipe.
type Recommendation struct {
	Name             string `json:"name"`
	IngredientsText  string `json:"ingredients_text"`
	Description      string `json:"description"`
	Procedure        string `json:"procedure"`
	Region           string `json:"region"`
	NutritionalValue string `json:"nutritional_value"`
	ImageURL         string `json:"image_url"`
}

// project copies the public fields of r.
//
//nolint:gocritic // hugeParam: Recipe is small enough to copy
func project(r Recipe) Recommendation {
	return Recommendation{
		Name:             r.Name,
		IngredientsText:  r.IngredientsText,
		Description:      r.Description,
		Procedure:        r.Procedure,
		Region:           r.Region,
		NutritionalValue: r.NutritionalValue,
		ImageURL:         r.ImageURL,
	}
}

// Result is the outcome of a single Recommend call.
type Result struct {
	// Recommendations is ordered by ascending distance. It is never nil.
	Recommendations []Recommendation

	// Region is the filter that was applied.
	Region string

	// Filtered reports whether Region restricted the results.
	Filtered bool

	// Degenerate is true when no ingredient token was in the vocabulary.
	Degenerate bool

	// Neighbors are the fetched neighbors before region filtering.
	Neighbors []neighbors.Neighbor

	// Duration is the wall time spent in Recommend.
	Duration time.Duration
}

// Stats summarizes the built engine and its usage.
type Stats struct {
	CorpusSize        int    `json:"corpus_size"`
	VocabularySize    int    `json:"vocabulary_size"`
	RegionCount       int    `json:"region_count"`
	IndexKind         string `json:"index_kind"`
	NeighborCount     int    `json:"neighbor_count"`
	MaxResults        int    `json:"max_results"`
	QueriesServed     int64  `json:"queries_served"`
	DegenerateQueries int64  `json:"degenerate_queries"`
	EmptyResults      int64  `json:"empty_results"`
}
