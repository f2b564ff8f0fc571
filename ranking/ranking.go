// SPDX-License-Identifier: MIT
// Package ranking: per-row magnitude ranking of contribution tables.

package ranking

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/belkmouf/shapash/core"
)

// Ranked packages the three parallel artifacts produced by Rank.
// All three share one shape and one row index; columns are named by rank
// position ("rank_1" … "rank_N") since the feature behind a position now
// varies per row and lives in VarDict.
type Ranked struct {
	// ContribSorted holds contribution values, per row, in descending
	// absolute-value order.
	ContribSorted *core.Frame

	// XSorted holds the feature values permuted identically to ContribSorted.
	XSorted *core.Frame

	// VarDict holds, per row, the original column indices in rank order.
	// Integer indices reference the prediction set's column list; the
	// identifier↔name mapping is kept by the caller and round-trips
	// losslessly through these indices.
	VarDict [][]int
}

// Rank sorts every row of contribs by descending absolute contribution,
// stable on ties, NaN last, and applies the per-row permutation to the
// paired feature-value table.
//
// Preconditions:
//  1. contribs and values must be non-nil (core.ErrNilFrame).
//  2. They must share shape and row index (core.ErrShapeMismatch).
//
// Complexity: O(rows × cols × log(cols)) time, O(rows × cols) space.
func Rank(contribs, values *core.Frame) (*Ranked, error) {
	if contribs == nil || values == nil {
		return nil, core.ErrNilFrame
	}
	if err := contribs.AlignsWith(values); err != nil {
		return nil, fmt.Errorf("ranking: contributions vs values: %w", err)
	}

	rows, cols := contribs.Rows(), contribs.Cols()
	sortedC := mat.NewDense(rows, cols, nil)
	sortedX := mat.NewDense(rows, cols, nil)
	varDict := make([][]int, rows)

	order := make([]int, cols)
	for i := 0; i < rows; i++ {
		cRow := contribs.Row(i)
		xRow := values.Row(i)

		for j := range order {
			order[j] = j
		}
		// Stable keeps original column order among equal magnitudes.
		sort.SliceStable(order, func(a, b int) bool {
			return lessByMagnitude(cRow[order[a]], cRow[order[b]])
		})

		perm := make([]int, cols)
		for j, src := range order {
			perm[j] = src
			sortedC.Set(i, j, cRow[src])
			sortedX.Set(i, j, xRow[src])
		}
		varDict[i] = perm
	}

	index := contribs.Index()
	rankCols := rankColumns(cols)
	cs, err := core.NewFrame(index, rankCols, sortedC)
	if err != nil {
		return nil, fmt.Errorf("ranking: %w", err)
	}
	xs, err := core.NewFrame(index, rankCols, sortedX)
	if err != nil {
		return nil, fmt.Errorf("ranking: %w", err)
	}

	return &Ranked{ContribSorted: cs, XSorted: xs, VarDict: varDict}, nil
}

// lessByMagnitude orders a strictly before b when |a| > |b|.
// NaN is least important: it never wins, so it drifts to the end while the
// stable sort preserves relative order among NaNs.
func lessByMagnitude(a, b float64) bool {
	if math.IsNaN(a) {
		return false
	}
	if math.IsNaN(b) {
		return true
	}

	return math.Abs(a) > math.Abs(b)
}

// Permutation returns a copy of the column permutation applied to row i.
// Applying it to the original row reproduces ContribSorted and XSorted.
func (r *Ranked) Permutation(i int) []int {
	return append([]int(nil), r.VarDict[i]...)
}

// Rows returns the number of ranked instances.
func (r *Ranked) Rows() int { return r.ContribSorted.Rows() }

// Cols returns the number of rank positions per instance.
func (r *Ranked) Cols() int { return r.ContribSorted.Cols() }

// rankColumns names the rank positions "rank_1" … "rank_n".
func rankColumns(n int) []string {
	cols := make([]string, n)
	for j := range cols {
		cols[j] = fmt.Sprintf("rank_%d", j+1)
	}

	return cols
}
