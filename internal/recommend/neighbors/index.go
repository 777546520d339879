// Larder - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

// Package neighbors provides exact k-nearest-neighbor search over dense
// float64 vectors using Euclidean distance.
//
// Every Index returns neighbors ordered by ascending distance, with equal
// distances ordered by ascending corpus index, so implementations are
// interchangeable without changing results.
package neighbors

import (
	"errors"
	"fmt"
	"math"
)

// Index kinds accepted by New.
const (
	KindBruteForce = "bruteforce"
	KindVPTree     = "vptree"
)

var (
	// ErrNotFitted is returned by Query before Fit has succeeded.
	ErrNotFitted = errors.New("neighbors: index not fitted")

	// ErrDimensionMismatch is returned when vector lengths disagree.
	ErrDimensionMismatch = errors.New("neighbors: dimension mismatch")

	// ErrInvalidK is returned for k < 1.
	ErrInvalidK = errors.New("neighbors: k must be at least 1")

	// ErrUnknownKind is returned by New for an unsupported index name.
	ErrUnknownKind = errors.New("neighbors: unknown index kind")
)

// Neighbor is a single search hit.
type Neighbor struct {
	// Index is the position of the vector in the slice passed to Fit.
	Index int `json:"index"`

	// Distance is the Euclidean distance to the query vector.
	Distance float64 `json:"distance"`
}

// Index is a nearest-neighbor index. Fit is called once; after that Query
// is safe for concurrent use.
type Index interface {
	// Fit stores the vectors. All vectors must share one dimension.
	Fit(vectors [][]float64) error

	// Query returns the min(k, Len()) nearest vectors to vector.
	Query(vector []float64, k int) ([]Neighbor, error)

	// Len returns the number of fitted vectors.
	Len() int

	// Kind names the implementation.
	Kind() string
}

// New returns an empty index of the given kind.
func New(kind string) (Index, error) {
	switch kind {
	case KindBruteForce, "":
		return NewBruteForce(), nil
	case KindVPTree:
		return NewVPTree(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Kinds lists the supported index kinds.
func Kinds() []string {
	return []string{KindBruteForce, KindVPTree}
}

// Euclidean returns the Euclidean distance between a and b, which must
// have the same length.
func Euclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// less orders neighbors by distance, then by index.
func less(a, b Neighbor) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	return a.Index < b.Index
}

// checkVectors validates a Fit input and returns its dimension.
func checkVectors(vectors [][]float64) (int, error) {
	if len(vectors) == 0 {
		return 0, nil
	}
	dim := len(vectors[0])
	for i, v := range vectors {
		if len(v) != dim {
			return 0, fmt.Errorf("%w: vector %d has %d dimensions, want %d", ErrDimensionMismatch, i, len(v), dim)
		}
	}
	return dim, nil
}

// checkQuery validates Query arguments against a fitted index.
func checkQuery(fitted bool, dim int, vector []float64, k int) error {
	if !fitted {
		return ErrNotFitted
	}
	if k < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}
	if len(vector) != dim {
		return fmt.Errorf("%w: query has %d dimensions, index has %d", ErrDimensionMismatch, len(vector), dim)
	}
	return nil
}
