// SPDX-License-Identifier: MIT
// Package core: the Frame labeled table.
//
// A Frame couples a gonum *mat.Dense with a stable row index and unique
// column names. Construction validates everything once; afterwards all
// accessors are O(1) or O(n) copies and never fail.

package core

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Frame is an instances × features table of float64 values.
//
// Row identifiers are ordered and unique; column names are ordered and
// unique. A Frame is immutable by convention: no exported method mutates
// the receiver, and slices returned to callers are copies.
type Frame struct {
	index   []string       // ordered row identifiers
	columns []string       // ordered column names
	rowPos  map[string]int // row identifier → row position
	colPos  map[string]int // column name → column position
	data    *mat.Dense     // len(index) × len(columns)
}

// NewFrame builds a Frame over data with the given row identifiers and
// column names.
//
// Validation (in order):
//  1. data must be non-nil and non-empty (ErrEmptyFrame).
//  2. len(index) and len(columns) must match data dims (ErrShapeMismatch).
//  3. Row identifiers must be unique (ErrDuplicateRowID).
//  4. Column names must be unique (ErrDuplicateColumn).
//
// The data matrix is copied, so the caller may keep mutating its own copy.
// Complexity: O(rows × cols).
func NewFrame(index, columns []string, data *mat.Dense) (*Frame, error) {
	if data == nil {
		return nil, ErrEmptyFrame
	}
	r, c := data.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmptyFrame
	}
	if len(index) != r || len(columns) != c {
		return nil, fmt.Errorf("%w: %d row ids × %d column names for %d×%d data",
			ErrShapeMismatch, len(index), len(columns), r, c)
	}

	rowPos := make(map[string]int, r)
	for i, id := range index {
		if _, dup := rowPos[id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRowID, id)
		}
		rowPos[id] = i
	}
	colPos := make(map[string]int, c)
	for j, name := range columns {
		if _, dup := colPos[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		colPos[name] = j
	}

	cp := mat.NewDense(r, c, nil)
	cp.Copy(data)

	return &Frame{
		index:   append([]string(nil), index...),
		columns: append([]string(nil), columns...),
		rowPos:  rowPos,
		colPos:  colPos,
		data:    cp,
	}, nil
}

// FrameFromRows builds a Frame from a row-major slice of rows.
// Every row must have the same length as columns; ragged input is rejected
// with ErrShapeMismatch. Convenience for tests and small fixtures.
func FrameFromRows(index, columns []string, rows [][]float64) (*Frame, error) {
	if len(rows) == 0 || len(columns) == 0 {
		return nil, ErrEmptyFrame
	}
	data := mat.NewDense(len(rows), len(columns), nil)
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d",
				ErrShapeMismatch, i, len(row), len(columns))
		}
		data.SetRow(i, row)
	}

	return NewFrame(index, columns, data)
}

// Rows returns the number of instances. Complexity: O(1).
func (f *Frame) Rows() int { return len(f.index) }

// Cols returns the number of features. Complexity: O(1).
func (f *Frame) Cols() int { return len(f.columns) }

// At returns the value at row i, column j.
// Out-of-range indices panic (programmer error), mirroring gonum semantics.
func (f *Frame) At(i, j int) float64 { return f.data.At(i, j) }

// Row returns a copy of row i. Complexity: O(cols).
func (f *Frame) Row(i int) []float64 { return mat.Row(nil, i, f.data) }

// Col returns a copy of column j. Complexity: O(rows).
func (f *Frame) Col(j int) []float64 { return mat.Col(nil, j, f.data) }

// Index returns a copy of the ordered row identifiers.
func (f *Frame) Index() []string { return append([]string(nil), f.index...) }

// Columns returns a copy of the ordered column names.
func (f *Frame) Columns() []string { return append([]string(nil), f.columns...) }

// RowID returns the identifier of row i.
func (f *Frame) RowID(i int) string { return f.index[i] }

// ColName returns the name of column j.
func (f *Frame) ColName(j int) string { return f.columns[j] }

// RowIndexOf resolves a row identifier to its position.
func (f *Frame) RowIndexOf(id string) (int, bool) {
	i, ok := f.rowPos[id]

	return i, ok
}

// ColIndexOf resolves a column name to its position.
func (f *Frame) ColIndexOf(name string) (int, bool) {
	j, ok := f.colPos[name]

	return j, ok
}

// Values returns a read-only matrix view of the underlying data.
// Callers must not type-assert and mutate; use Clone for a private copy.
func (f *Frame) Values() mat.Matrix { return f.data }

// Clone returns a deep, independent copy of the frame.
// Complexity: O(rows × cols).
func (f *Frame) Clone() *Frame {
	cp := mat.NewDense(len(f.index), len(f.columns), nil)
	cp.Copy(f.data)
	out, _ := NewFrame(f.index, f.columns, cp) // inputs already validated

	return out
}

// SameShape reports whether f and other have identical dimensions.
func (f *Frame) SameShape(other *Frame) bool {
	return other != nil && f.Rows() == other.Rows() && f.Cols() == other.Cols()
}

// AlignsWith verifies that other shares f's shape and row index, in order.
// Returns nil on success, a wrapped ErrShapeMismatch otherwise.
// Column names are not compared: ranked artifacts rename columns by rank
// position while keeping row alignment.
func (f *Frame) AlignsWith(other *Frame) error {
	if other == nil {
		return ErrNilFrame
	}
	if !f.SameShape(other) {
		return fmt.Errorf("%w: %d×%d vs %d×%d",
			ErrShapeMismatch, f.Rows(), f.Cols(), other.Rows(), other.Cols())
	}
	for i, id := range f.index {
		if other.index[i] != id {
			return fmt.Errorf("%w: row %d is %q vs %q",
				ErrShapeMismatch, i, id, other.index[i])
		}
	}

	return nil
}
