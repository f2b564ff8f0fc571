// SPDX-License-Identifier: MIT
// Package neighbors: k-d tree index over the instance rows.
//
// The index is built once per diagnostic call set and queried per selected
// instance, instead of recomputing pairwise distances per call. Distances
// inside the tree are squared Euclidean; only neighbor order matters here,
// and squaring is monotone.

package neighbors

import (
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/belkmouf/shapash/core"
)

// point is one instance row tagged with its position, so tree results map
// back to the frame.
type point struct {
	row int
	vec []float64
}

// Compare implements kdtree.Comparable.
func (p point) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return p.vec[d] - c.(point).vec[d]
}

// Dims implements kdtree.Comparable.
func (p point) Dims() int { return len(p.vec) }

// Distance implements kdtree.Comparable with squared Euclidean distance.
func (p point) Distance(c kdtree.Comparable) float64 {
	q := c.(point)
	var sum float64
	for d, v := range p.vec {
		diff := v - q.vec[d]
		sum += diff * diff
	}

	return sum
}

// points implements kdtree.Interface over a slice of point.
type points []point

func (p points) Index(i int) kdtree.Comparable        { return p[i] }
func (p points) Len() int                             { return len(p) }
func (p points) Slice(start, end int) kdtree.Interface { return p[start:end] }
func (p points) Pivot(d kdtree.Dim) int               { return plane{points: p, Dim: d}.Pivot() }

// plane sorts points along a single dimension for tree construction.
type plane struct {
	kdtree.Dim
	points
}

func (p plane) Less(i, j int) bool { return p.points[i].vec[p.Dim] < p.points[j].vec[p.Dim] }
func (p plane) Pivot() int         { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.points = p.points[start:end]

	return p
}
func (p plane) Swap(i, j int) { p.points[i], p.points[j] = p.points[j], p.points[i] }

// nnIndex is the per-call-set spatial index over a frame's rows.
type nnIndex struct {
	tree *kdtree.Tree
	x    *core.Frame
}

// newIndex builds the k-d tree over every row of x. O(n log n).
func newIndex(x *core.Frame) *nnIndex {
	pts := make(points, x.Rows())
	for i := range pts {
		pts[i] = point{row: i, vec: x.Row(i)}
	}

	return &nnIndex{tree: kdtree.New(pts, false), x: x}
}

// nearest returns the row positions of the k nearest other instances to
// row, ordered by increasing distance (ties broken by row position for
// determinism). The queried row itself is excluded.
func (ix *nnIndex) nearest(row, k int) []int {
	query := point{row: row, vec: ix.x.Row(row)}
	// k+1 slots: the query point is in the tree and comes back at distance 0.
	keeper := kdtree.NewNKeeper(k + 1)
	ix.tree.NearestSet(keeper, query)

	type hit struct {
		row  int
		dist float64
	}
	hits := make([]hit, 0, k)
	for _, cd := range keeper.Heap {
		if cd.Comparable == nil {
			continue // unfilled keeper slot
		}
		p := cd.Comparable.(point)
		if p.row == row {
			continue
		}
		hits = append(hits, hit{row: p.row, dist: cd.Dist})
	}
	sort.Slice(hits, func(a, b int) bool {
		if hits[a].dist != hits[b].dist {
			return hits[a].dist < hits[b].dist
		}

		return hits[a].row < hits[b].row
	})
	if len(hits) > k {
		hits = hits[:k]
	}

	out := make([]int, len(hits))
	for i, h := range hits {
		out[i] = h.row
	}

	return out
}
