// Larder - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package neighbors

import "sort"

// BruteForce scans every stored vector on each query.
type BruteForce struct {
	vectors [][]float64
	dim     int
	fitted  bool
}

// NewBruteForce returns an empty brute-force index.
func NewBruteForce() *BruteForce {
	return &BruteForce{}
}

// Fit stores the vectors. The slice is retained, not copied.
func (b *BruteForce) Fit(vectors [][]float64) error {
	dim, err := checkVectors(vectors)
	if err != nil {
		return err
	}
	b.vectors = vectors
	b.dim = dim
	b.fitted = true
	return nil
}

// Query implements Index.
func (b *BruteForce) Query(vector []float64, k int) ([]Neighbor, error) {
	if err := checkQuery(b.fitted, b.dim, vector, k); err != nil {
		return nil, err
	}

	all := make([]Neighbor, len(b.vectors))
	for i, v := range b.vectors {
		all[i] = Neighbor{Index: i, Distance: Euclidean(vector, v)}
	}
	sort.Slice(all, func(i, j int) bool { return less(all[i], all[j]) })

	if k > len(all) {
		k = len(all)
	}
	return all[:k], nil
}

// Len implements Index.
func (b *BruteForce) Len() int {
	return len(b.vectors)
}

// Kind implements Index.
func (b *BruteForce) Kind() string {
	return KindBruteForce
}
