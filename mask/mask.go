// SPDX-License-Identifier: MIT
// Package mask: the Mask type and its criteria builders.

package mask

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/belkmouf/shapash/core"
)

// Mask is a rows × cols boolean table over ranked contributions.
// true = the feature at that rank position is visible for that instance.
// The zero value is unusable; construct through Init or a criterion builder.
type Mask struct {
	rows, cols int
	bits       []bool // row-major
}

// Init returns the all-true base mask — the identity of Combine.
// Non-positive dimensions are rejected with ErrBadShape.
func Init(rows, cols int) (*Mask, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrBadShape, rows, cols)
	}
	m := &Mask{rows: rows, cols: cols, bits: make([]bool, rows*cols)}
	for i := range m.bits {
		m.bits[i] = true
	}

	return m, nil
}

// Rows returns the instance count.
func (m *Mask) Rows() int { return m.rows }

// Cols returns the rank-position count.
func (m *Mask) Cols() int { return m.cols }

// At reports visibility at row i, column j.
func (m *Mask) At(i, j int) bool { return m.bits[i*m.cols+j] }

// CountRow returns the number of visible positions in row i.
func (m *Mask) CountRow(i int) int {
	n := 0
	for j := 0; j < m.cols; j++ {
		if m.At(i, j) {
			n++
		}
	}

	return n
}

// Clone returns an independent copy.
func (m *Mask) Clone() *Mask {
	return &Mask{rows: m.rows, cols: m.cols, bits: append([]bool(nil), m.bits...)}
}

func (m *Mask) set(i, j int, v bool) { m.bits[i*m.cols+j] = v }

// HideFeatures builds the hide-by-identifier criterion: false at every rank
// position whose varDict entry is one of the hidden column identifiers.
//
// varDict rows must share one length (ErrRaggedVarDict) and be non-empty
// (ErrBadShape). Unknown identifiers in hidden simply match nothing; the
// session layer resolves and validates names before calling in.
//
// Complexity: O(rows × cols).
func HideFeatures(varDict [][]int, hidden []int) (*Mask, error) {
	if len(varDict) == 0 || len(varDict[0]) == 0 {
		return nil, fmt.Errorf("%w: empty variable dictionary", ErrBadShape)
	}
	cols := len(varDict[0])
	hide := make(map[int]struct{}, len(hidden))
	for _, id := range hidden {
		hide[id] = struct{}{}
	}

	m, err := Init(len(varDict), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range varDict {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d",
				ErrRaggedVarDict, i, len(row), cols)
		}
		for j, id := range row {
			if _, hit := hide[id]; hit {
				m.set(i, j, false)
			}
		}
	}

	return m, nil
}

// Threshold builds the magnitude criterion: false wherever
// |contrib| < threshold. A NaN contribution never passes a threshold —
// it carries no usable magnitude, so it is hidden.
//
// threshold < 0 is invalid configuration (ErrNegativeThreshold).
func Threshold(contribSorted *core.Frame, threshold float64) (*Mask, error) {
	if contribSorted == nil {
		return nil, core.ErrNilFrame
	}
	if threshold < 0 || math.IsNaN(threshold) {
		return nil, fmt.Errorf("%w: got %v", ErrNegativeThreshold, threshold)
	}

	m, err := Init(contribSorted.Rows(), contribSorted.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			v := contribSorted.At(i, j)
			if math.IsNaN(v) || math.Abs(v) < threshold {
				m.set(i, j, false)
			}
		}
	}

	return m, nil
}

// Sign builds the sign criterion. With positive=true the mask is false
// wherever the contribution is ≤ 0; with positive=false it is false
// wherever the contribution is ≥ 0. Callers that want no sign constraint
// simply do not build this criterion. NaN fails both comparisons and is
// hidden either way.
func Sign(contribSorted *core.Frame, positive bool) (*Mask, error) {
	if contribSorted == nil {
		return nil, core.ErrNilFrame
	}

	m, err := Init(contribSorted.Rows(), contribSorted.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			v := contribSorted.At(i, j)
			keep := v > 0
			if !positive {
				keep = v < 0
			}
			if !keep {
				m.set(i, j, false)
			}
		}
	}

	return m, nil
}

// Combine folds masks into one by logical AND, position by position.
// Every operand must share one shape (ErrShapeMismatch); at least one
// operand is required (ErrNoMasks). Combine never mutates its inputs.
func Combine(masks ...*Mask) (*Mask, error) {
	if len(masks) == 0 {
		return nil, ErrNoMasks
	}
	first := masks[0]
	if first == nil {
		return nil, ErrNilMask
	}
	out := first.Clone()
	for k := 1; k < len(masks); k++ {
		m := masks[k]
		if m == nil {
			return nil, fmt.Errorf("%w: operand %d", ErrNilMask, k)
		}
		if m.rows != out.rows || m.cols != out.cols {
			return nil, fmt.Errorf("%w: operand %d is %d×%d, want %d×%d",
				ErrShapeMismatch, k, m.rows, m.cols, out.rows, out.cols)
		}
		for i := range out.bits {
			out.bits[i] = out.bits[i] && m.bits[i]
		}
	}

	return out, nil
}

// Cutoff keeps, per row, only the first maxContrib true entries in rank
// order of the already-combined mask, clearing every later true entry.
// It must run after Combine: a cutoff of 3 means "the first 3 still-visible
// features", not "the first 3 ranked features".
//
// Idempotent: Cutoff(Cutoff(m, n), n) == Cutoff(m, n).
// maxContrib ≤ 0 is invalid configuration (ErrBadCutoff).
func Cutoff(m *Mask, maxContrib int) (*Mask, error) {
	if m == nil {
		return nil, ErrNilMask
	}
	if maxContrib <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCutoff, maxContrib)
	}

	out := m.Clone()
	for i := 0; i < out.rows; i++ {
		seen := 0
		for j := 0; j < out.cols; j++ {
			if !out.At(i, j) {
				continue
			}
			seen++
			if seen > maxContrib {
				out.set(i, j, false)
			}
		}
	}

	return out, nil
}

// Apply materializes the filtered table: visible cells keep their ranked
// contribution, hidden cells become NaN (the absent sentinel — zero is a
// valid contribution and must stay distinguishable from "hidden").
func Apply(contribSorted *core.Frame, m *Mask) (*core.Frame, error) {
	if contribSorted == nil {
		return nil, core.ErrNilFrame
	}
	if m == nil {
		return nil, ErrNilMask
	}
	if contribSorted.Rows() != m.rows || contribSorted.Cols() != m.cols {
		return nil, fmt.Errorf("%w: table %d×%d vs mask %d×%d",
			ErrShapeMismatch, contribSorted.Rows(), contribSorted.Cols(), m.rows, m.cols)
	}

	data := mat.NewDense(m.rows, m.cols, nil)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if m.At(i, j) {
				data.Set(i, j, contribSorted.At(i, j))
			} else {
				data.Set(i, j, math.NaN())
			}
		}
	}
	out, err := core.NewFrame(contribSorted.Index(), contribSorted.Columns(), data)
	if err != nil {
		return nil, fmt.Errorf("mask: %w", err)
	}

	return out, nil
}

// HiddenSums returns, per instance, the sum of the contributions the mask
// hides — what a consumer shows as "N other features contributed X".
// NaN contributions are skipped.
func HiddenSums(contribSorted *core.Frame, m *Mask) ([]float64, error) {
	if contribSorted == nil {
		return nil, core.ErrNilFrame
	}
	if m == nil {
		return nil, ErrNilMask
	}
	if contribSorted.Rows() != m.rows || contribSorted.Cols() != m.cols {
		return nil, fmt.Errorf("%w: table %d×%d vs mask %d×%d",
			ErrShapeMismatch, contribSorted.Rows(), contribSorted.Cols(), m.rows, m.cols)
	}

	sums := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			v := contribSorted.At(i, j)
			if !m.At(i, j) && !math.IsNaN(v) {
				sums[i] += v
			}
		}
	}

	return sums, nil
}
