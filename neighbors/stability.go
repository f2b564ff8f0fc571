// SPDX-License-Identifier: MIT
// Package neighbors: the stability diagnostic.

package neighbors

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/belkmouf/shapash/core"
)

// StabilityResult carries the diagnostic arrays.
//
// Exactly one of the two forms is populated, depending on selection size:
//
//   - single instance  → NormContrib: the normalized contribution rows of
//     the instance (first row) and its neighbors, values in [-1, 1].
//   - multiple instances → Amplitude and Variability: instances × features
//     tables of mean absolute normalized contribution and population
//     standard deviation across each neighborhood.
type StabilityResult struct {
	NormContrib *core.Frame
	Amplitude   *core.Frame
	Variability *core.Frame
}

// Stability computes the neighborhood stability diagnostic for the selected
// instance identifiers.
//
// Preconditions (in order):
//  1. x and contribs non-nil and aligned (core sentinels).
//  2. Regression or binary classification only (ErrMultiClass); binary
//     classification uses the positive-class contribution table.
//  3. selection non-empty (ErrEmptySelection), identifiers known
//     (ErrUnknownInstance), and at least two instances overall
//     (ErrTooFewInstances).
//
// Complexity: O(n log n) tree build + O(len(selection) × (k+1) × features).
func Stability(x *core.Frame, contribs *core.Contributions, selection []string, opts ...Option) (*StabilityResult, error) {
	if x == nil {
		return nil, core.ErrNilFrame
	}
	if contribs == nil {
		return nil, core.ErrEmptySequence
	}
	if err := contribs.AlignsWith(x); err != nil {
		return nil, fmt.Errorf("neighbors: contributions vs instances: %w", err)
	}
	frame, err := diagnosticFrame(contribs)
	if err != nil {
		return nil, err
	}
	rows, err := resolveSelection(x, selection)
	if err != nil {
		return nil, err
	}
	if x.Rows() < 2 {
		return nil, ErrTooFewInstances
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	k := cfg.K
	if max := x.Rows() - 1; k > max {
		k = max
	}

	ix := newIndex(x)
	cols := frame.Cols()

	// Single instance: expose the raw normalized rows for the local plot.
	if len(rows) == 1 {
		sel := rows[0]
		hood := append([]int{sel}, ix.nearest(sel, k)...)
		data := mat.NewDense(len(hood), cols, nil)
		index := make([]string, len(hood))
		for i, r := range hood {
			index[i] = frame.RowID(r)
			data.SetRow(i, normalizeRow(frame.Row(r)))
		}
		norm, ferr := core.NewFrame(index, frame.Columns(), data)
		if ferr != nil {
			return nil, fmt.Errorf("neighbors: %w", ferr)
		}

		return &StabilityResult{NormContrib: norm}, nil
	}

	// Multiple instances: aggregate each neighborhood into amplitude and
	// variability, one output row per selected instance.
	amp := mat.NewDense(len(rows), cols, nil)
	vari := mat.NewDense(len(rows), cols, nil)
	index := make([]string, len(rows))
	colVals := make([]float64, 0, k+1)
	absVals := make([]float64, 0, k+1)
	for i, sel := range rows {
		index[i] = frame.RowID(sel)
		hood := append([]int{sel}, ix.nearest(sel, k)...)
		normed := make([][]float64, len(hood))
		for h, r := range hood {
			normed[h] = normalizeRow(frame.Row(r))
		}
		for j := 0; j < cols; j++ {
			colVals = colVals[:0]
			absVals = absVals[:0]
			for h := range normed {
				colVals = append(colVals, normed[h][j])
				absVals = append(absVals, math.Abs(normed[h][j]))
			}
			amp.Set(i, j, stat.Mean(absVals, nil))
			vari.Set(i, j, stat.PopStdDev(colVals, nil))
		}
	}

	columns := frame.Columns()
	ampFrame, err := core.NewFrame(index, columns, amp)
	if err != nil {
		return nil, fmt.Errorf("neighbors: %w", err)
	}
	variFrame, err := core.NewFrame(index, columns, vari)
	if err != nil {
		return nil, fmt.Errorf("neighbors: %w", err)
	}

	return &StabilityResult{Amplitude: ampFrame, Variability: variFrame}, nil
}

// diagnosticFrame picks the contribution table the diagnostics run on:
// the single frame for regression, the positive-class frame for binary
// classification. More than two classes is out of the diagnostic's domain.
func diagnosticFrame(contribs *core.Contributions) (*core.Frame, error) {
	if contribs.Case() == core.Classification {
		if contribs.NumClasses() > 2 {
			return nil, fmt.Errorf("%w: %d classes", ErrMultiClass, contribs.NumClasses())
		}

		return contribs.Frame(1), nil
	}

	return contribs.Frame(0), nil
}

// resolveSelection maps instance identifiers to row positions.
func resolveSelection(x *core.Frame, selection []string) ([]int, error) {
	if len(selection) == 0 {
		return nil, ErrEmptySelection
	}
	rows := make([]int, len(selection))
	for i, id := range selection {
		r, ok := x.RowIndexOf(id)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownInstance, id)
		}
		rows[i] = r
	}

	return rows, nil
}

// normalizeRow divides a contribution row by its maximum absolute value so
// entries lie in [-1, 1]. An all-zero row stays zero; NaN entries carry no
// magnitude and normalize to zero.
func normalizeRow(row []float64) []float64 {
	maxAbs := 0.0
	for _, v := range row {
		if math.IsNaN(v) {
			continue
		}
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	out := make([]float64, len(row))
	if maxAbs == 0 {
		return out
	}
	for j, v := range row {
		if math.IsNaN(v) {
			continue
		}
		out[j] = v / maxAbs
	}

	return out
}
