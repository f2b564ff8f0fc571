// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/belkmouf/shapash/core"
)

// TestNewFrame_NilData verifies that a nil matrix is rejected.
func TestNewFrame_NilData(t *testing.T) {
	_, err := core.NewFrame([]string{"a"}, []string{"x"}, nil)
	require.ErrorIs(t, err, core.ErrEmptyFrame, "nil data must error ErrEmptyFrame")
}

// TestNewFrame_LabelShapeMismatch verifies that label counts must match the
// matrix dimensions.
func TestNewFrame_LabelShapeMismatch(t *testing.T) {
	data := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	_, err := core.NewFrame([]string{"a"}, []string{"x", "y"}, data)
	require.ErrorIs(t, err, core.ErrShapeMismatch, "1 row id for 2 rows must error")

	_, err = core.NewFrame([]string{"a", "b"}, []string{"x"}, data)
	require.ErrorIs(t, err, core.ErrShapeMismatch, "1 column name for 2 columns must error")
}

// TestNewFrame_DuplicateLabels verifies uniqueness of row ids and columns.
func TestNewFrame_DuplicateLabels(t *testing.T) {
	data := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	_, err := core.NewFrame([]string{"a", "a"}, []string{"x", "y"}, data)
	require.ErrorIs(t, err, core.ErrDuplicateRowID)

	_, err = core.NewFrame([]string{"a", "b"}, []string{"x", "x"}, data)
	require.ErrorIs(t, err, core.ErrDuplicateColumn)
}

// TestNewFrame_CopiesData verifies that mutating the caller's matrix after
// construction does not leak into the frame.
func TestNewFrame_CopiesData(t *testing.T) {
	data := mat.NewDense(1, 2, []float64{1, 2})
	f, err := core.NewFrame([]string{"a"}, []string{"x", "y"}, data)
	require.NoError(t, err)

	data.Set(0, 0, 99)
	require.Equal(t, 1.0, f.At(0, 0), "frame must hold its own copy")
}

// TestFrameFromRows_Ragged verifies ragged row input is rejected.
func TestFrameFromRows_Ragged(t *testing.T) {
	_, err := core.FrameFromRows(
		[]string{"a", "b"},
		[]string{"x", "y"},
		[][]float64{{1, 2}, {3}},
	)
	require.ErrorIs(t, err, core.ErrShapeMismatch)
}

// TestFrame_Accessors exercises the lookup surface on a small fixture.
func TestFrame_Accessors(t *testing.T) {
	f, err := core.FrameFromRows(
		[]string{"r0", "r1"},
		[]string{"age", "income"},
		[][]float64{{30, 1000}, {40, 2000}},
	)
	require.NoError(t, err)

	require.Equal(t, 2, f.Rows())
	require.Equal(t, 2, f.Cols())
	require.Equal(t, 2000.0, f.At(1, 1))
	require.Equal(t, []float64{40, 2000}, f.Row(1))
	require.Equal(t, []float64{1000, 2000}, f.Col(1))
	require.Equal(t, "r1", f.RowID(1))
	require.Equal(t, "income", f.ColName(1))

	i, ok := f.RowIndexOf("r0")
	require.True(t, ok)
	require.Equal(t, 0, i)

	j, ok := f.ColIndexOf("income")
	require.True(t, ok)
	require.Equal(t, 1, j)

	_, ok = f.RowIndexOf("missing")
	require.False(t, ok)
}

// TestFrame_CloneIsIndependent verifies Clone shares nothing mutable.
func TestFrame_CloneIsIndependent(t *testing.T) {
	f, err := core.FrameFromRows([]string{"a"}, []string{"x"}, [][]float64{{7}})
	require.NoError(t, err)

	cp := f.Clone()
	require.Equal(t, f.At(0, 0), cp.At(0, 0))
	require.Equal(t, f.Index(), cp.Index())
	require.Equal(t, f.Columns(), cp.Columns())
}

// TestFrame_AlignsWith verifies row-index alignment ignores column names.
func TestFrame_AlignsWith(t *testing.T) {
	a, err := core.FrameFromRows([]string{"r0", "r1"}, []string{"x", "y"},
		[][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	// Same shape and row index, different column names: aligned.
	b, err := core.FrameFromRows([]string{"r0", "r1"}, []string{"rank_1", "rank_2"},
		[][]float64{{5, 6}, {7, 8}})
	require.NoError(t, err)
	require.NoError(t, a.AlignsWith(b))

	// Different row order: not aligned.
	c, err := core.FrameFromRows([]string{"r1", "r0"}, []string{"x", "y"},
		[][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.ErrorIs(t, a.AlignsWith(c), core.ErrShapeMismatch)

	// Different shape: not aligned.
	d, err := core.FrameFromRows([]string{"r0"}, []string{"x", "y"},
		[][]float64{{1, 2}})
	require.NoError(t, err)
	require.ErrorIs(t, a.AlignsWith(d), core.ErrShapeMismatch)

	require.ErrorIs(t, a.AlignsWith(nil), core.ErrNilFrame)
}
