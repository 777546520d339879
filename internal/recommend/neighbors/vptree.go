// Larder - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package neighbors

import (
	"container/heap"
	"math"
	"sort"
)

// pruneSlack widens the triangle-inequality bounds so floating point
// rounding never prunes a subtree holding an equally distant vector.
const pruneSlack = 1e-9

// VPTree is a vantage-point tree. It returns exactly the neighbors
// BruteForce would, visiting fewer vectors on clustered data.
type VPTree struct {
	vectors [][]float64
	dim     int
	fitted  bool
	root    *vpNode
}

type vpNode struct {
	idx       int
	threshold float64
	inside    *vpNode // distance to vantage point <= threshold
	outside   *vpNode // distance to vantage point >= threshold
}

// NewVPTree returns an empty vantage-point tree.
func NewVPTree() *VPTree {
	return &VPTree{}
}

// Fit builds the tree. The vantage point of each subtree is its highest
// corpus index, which keeps construction deterministic.
func (t *VPTree) Fit(vectors [][]float64) error {
	dim, err := checkVectors(vectors)
	if err != nil {
		return err
	}

	idxs := make([]int, len(vectors))
	for i := range idxs {
		idxs[i] = i
	}

	t.vectors = vectors
	t.dim = dim
	t.root = t.build(idxs)
	t.fitted = true
	return nil
}

func (t *VPTree) build(idxs []int) *vpNode {
	if len(idxs) == 0 {
		return nil
	}

	vp := idxs[len(idxs)-1]
	rest := idxs[:len(idxs)-1]
	if len(rest) == 0 {
		return &vpNode{idx: vp}
	}

	ranked := make([]Neighbor, len(rest))
	for i, j := range rest {
		ranked[i] = Neighbor{Index: j, Distance: Euclidean(t.vectors[vp], t.vectors[j])}
	}
	sort.Slice(ranked, func(a, b int) bool { return less(ranked[a], ranked[b]) })

	mid := len(ranked) / 2
	inside := make([]int, 0, mid+1)
	outside := make([]int, 0, len(ranked)-mid-1)
	for rank, n := range ranked {
		if rank <= mid {
			inside = append(inside, n.Index)
		} else {
			outside = append(outside, n.Index)
		}
	}
	sort.Ints(inside)
	sort.Ints(outside)

	return &vpNode{
		idx:       vp,
		threshold: ranked[mid].Distance,
		inside:    t.build(inside),
		outside:   t.build(outside),
	}
}

// Query implements Index.
func (t *VPTree) Query(vector []float64, k int) ([]Neighbor, error) {
	if err := checkQuery(t.fitted, t.dim, vector, k); err != nil {
		return nil, err
	}
	if k > len(t.vectors) {
		k = len(t.vectors)
	}

	best := &candidates{}
	heap.Init(best)
	t.search(t.root, vector, k, best)

	out := make([]Neighbor, best.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(best).(Neighbor)
	}
	return out, nil
}

func (t *VPTree) search(n *vpNode, q []float64, k int, best *candidates) {
	if n == nil {
		return
	}

	d := Euclidean(q, t.vectors[n.idx])
	hit := Neighbor{Index: n.idx, Distance: d}
	if best.Len() < k {
		heap.Push(best, hit)
	} else if less(hit, (*best)[0]) {
		(*best)[0] = hit
		heap.Fix(best, 0)
	}

	radius := func() float64 {
		if best.Len() < k {
			return math.Inf(1)
		}
		return (*best)[0].Distance + pruneSlack
	}

	if d <= n.threshold {
		if d-n.threshold <= radius() {
			t.search(n.inside, q, k, best)
		}
		if n.threshold-d <= radius() {
			t.search(n.outside, q, k, best)
		}
		return
	}

	if n.threshold-d <= radius() {
		t.search(n.outside, q, k, best)
	}
	if d-n.threshold <= radius() {
		t.search(n.inside, q, k, best)
	}
}

// Len implements Index.
func (t *VPTree) Len() int {
	return len(t.vectors)
}

// Kind implements Index.
func (t *VPTree) Kind() string {
	return KindVPTree
}

// candidates is a max-heap on (distance, index), so the root is the worst
// of the current k best.
type candidates []Neighbor

func (c candidates) Len() int           { return len(c) }
func (c candidates) Less(i, j int) bool { return less(c[j], c[i]) }
func (c candidates) Swap(i, j int)      { c[i], c[j] = c[j], c[i] }

func (c *candidates) Push(x any) {
	*c = append(*c, x.(Neighbor))
}

func (c *candidates) Pop() any {
	old := *c
	n := len(old)
	x := old[n-1]
	*c = old[:n-1]
	return x
}
