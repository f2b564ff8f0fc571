// SPDX-License-Identifier: MIT
package neighbors_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/belkmouf/shapash/core"
	"github.com/belkmouf/shapash/neighbors"
)

func mustFrame(t *testing.T, index, columns []string, rows [][]float64) *core.Frame {
	t.Helper()
	f, err := core.FrameFromRows(index, columns, rows)
	require.NoError(t, err)

	return f
}

func mustSingle(t *testing.T, f *core.Frame) *core.Contributions {
	t.Helper()
	c, err := core.Single(f)
	require.NoError(t, err)

	return c
}

// TestStability_Preconditions walks the input error ladder.
func TestStability_Preconditions(t *testing.T) {
	x := mustFrame(t, []string{"r0", "r1"}, []string{"a", "b"},
		[][]float64{{0, 0}, {1, 1}})
	contribs := mustSingle(t, mustFrame(t, []string{"r0", "r1"}, []string{"a", "b"},
		[][]float64{{0.1, 0.2}, {0.3, 0.4}}))

	_, err := neighbors.Stability(nil, contribs, []string{"r0"})
	require.ErrorIs(t, err, core.ErrNilFrame)

	_, err = neighbors.Stability(x, nil, []string{"r0"})
	require.ErrorIs(t, err, core.ErrEmptySequence)

	_, err = neighbors.Stability(x, contribs, nil)
	require.ErrorIs(t, err, neighbors.ErrEmptySelection)

	_, err = neighbors.Stability(x, contribs, []string{"ghost"})
	require.ErrorIs(t, err, neighbors.ErrUnknownInstance)

	lone := mustFrame(t, []string{"r0"}, []string{"a"}, [][]float64{{1}})
	loneC := mustSingle(t, mustFrame(t, []string{"r0"}, []string{"a"}, [][]float64{{0.5}}))
	_, err = neighbors.Stability(lone, loneC, []string{"r0"})
	require.ErrorIs(t, err, neighbors.ErrTooFewInstances)
}

// TestStability_MultiClassRejected verifies the diagnostic's domain:
// regression and binary classification only.
func TestStability_MultiClassRejected(t *testing.T) {
	x := mustFrame(t, []string{"r0", "r1"}, []string{"a"}, [][]float64{{0}, {1}})
	f := func() *core.Frame {
		return mustFrame(t, []string{"r0", "r1"}, []string{"a"}, [][]float64{{0.1}, {0.2}})
	}
	three, err := core.PerClass([]*core.Frame{f(), f(), f()})
	require.NoError(t, err)

	_, err = neighbors.Stability(x, three, []string{"r0"})
	require.ErrorIs(t, err, neighbors.ErrMultiClass)
}

// TestStability_SingleInstance verifies the local form: the instance's own
// normalized row first, then its nearest neighbor's, all values in [-1, 1].
func TestStability_SingleInstance(t *testing.T) {
	x := mustFrame(t,
		[]string{"r0", "r1", "r2"},
		[]string{"f1", "f2"},
		[][]float64{
			{0, 0},
			{1, 0},
			{5, 0},
		})
	contribs := mustSingle(t, mustFrame(t,
		[]string{"r0", "r1", "r2"},
		[]string{"f1", "f2"},
		[][]float64{
			{2, -4},
			{1, 1},
			{9, 9},
		}))

	res, err := neighbors.Stability(x, contribs, []string{"r0"},
		neighbors.WithNeighborCount(1))
	require.NoError(t, err)
	require.NotNil(t, res.NormContrib)
	require.Nil(t, res.Amplitude)
	require.Nil(t, res.Variability)

	// r1 is r0's nearest neighbor; r2 is far away.
	require.Equal(t, []string{"r0", "r1"}, res.NormContrib.Index())

	// r0: [2, -4] normalized by max |·| = 4 → [0.5, -1].
	require.InDelta(t, 0.5, res.NormContrib.At(0, 0), 1e-12)
	require.InDelta(t, -1.0, res.NormContrib.At(0, 1), 1e-12)
	// r1: [1, 1] → [1, 1].
	require.InDelta(t, 1.0, res.NormContrib.At(1, 0), 1e-12)

	for i := 0; i < res.NormContrib.Rows(); i++ {
		for j := 0; j < res.NormContrib.Cols(); j++ {
			v := res.NormContrib.At(i, j)
			require.GreaterOrEqual(t, v, -1.0)
			require.LessOrEqual(t, v, 1.0)
		}
	}
}

// TestStability_MultiInstance verifies the aggregate form on a fixture with
// identical contribution rows: amplitude is exact, variability is zero.
func TestStability_MultiInstance(t *testing.T) {
	x := mustFrame(t,
		[]string{"r0", "r1", "r2"},
		[]string{"f1", "f2"},
		[][]float64{
			{0, 0},
			{1, 0},
			{2, 0},
		})
	contribs := mustSingle(t, mustFrame(t,
		[]string{"r0", "r1", "r2"},
		[]string{"f1", "f2"},
		[][]float64{
			{3, -6},
			{3, -6},
			{3, -6},
		}))

	res, err := neighbors.Stability(x, contribs, []string{"r0", "r2"},
		neighbors.WithNeighborCount(2))
	require.NoError(t, err)
	require.Nil(t, res.NormContrib)
	require.Equal(t, 2, res.Amplitude.Rows())
	require.Equal(t, 2, res.Amplitude.Cols())
	require.Equal(t, []string{"r0", "r2"}, res.Amplitude.Index())

	// Every row normalizes to [0.5, -1]: amplitude = [0.5, 1], variability 0.
	for i := 0; i < 2; i++ {
		require.InDelta(t, 0.5, res.Amplitude.At(i, 0), 1e-12)
		require.InDelta(t, 1.0, res.Amplitude.At(i, 1), 1e-12)
		require.InDelta(t, 0.0, res.Variability.At(i, 0), 1e-12)
		require.InDelta(t, 0.0, res.Variability.At(i, 1), 1e-12)
	}
}

// TestStability_DefaultNeighborCountCapped verifies the default k of 10 is
// capped at rows−1 instead of failing on small tables.
func TestStability_DefaultNeighborCountCapped(t *testing.T) {
	x := mustFrame(t, []string{"r0", "r1", "r2"}, []string{"a"},
		[][]float64{{0}, {1}, {2}})
	contribs := mustSingle(t, mustFrame(t, []string{"r0", "r1", "r2"}, []string{"a"},
		[][]float64{{1}, {2}, {3}}))

	res, err := neighbors.Stability(x, contribs, []string{"r1"})
	require.NoError(t, err)
	require.Equal(t, 3, res.NormContrib.Rows(), "instance plus the 2 available neighbors")
}

// TestStability_BinaryUsesPositiveClass verifies binary classification runs
// on the positive-class contribution table.
func TestStability_BinaryUsesPositiveClass(t *testing.T) {
	x := mustFrame(t, []string{"r0", "r1"}, []string{"a", "b"},
		[][]float64{{0, 0}, {1, 1}})
	neg := mustFrame(t, []string{"r0", "r1"}, []string{"a", "b"},
		[][]float64{{9, 9}, {9, 9}})
	pos := mustFrame(t, []string{"r0", "r1"}, []string{"a", "b"},
		[][]float64{{2, -4}, {1, 1}})
	binary, err := core.PerClass([]*core.Frame{neg, pos})
	require.NoError(t, err)

	res, err := neighbors.Stability(x, binary, []string{"r0"},
		neighbors.WithNeighborCount(1))
	require.NoError(t, err)
	require.InDelta(t, 0.5, res.NormContrib.At(0, 0), 1e-12,
		"normalization must come from the positive class, not the negative one")
	require.InDelta(t, -1.0, res.NormContrib.At(0, 1), 1e-12)
}

// TestStability_FiveInstanceBinaryShapes verifies the aggregate form's
// shapes and ranges on a 5-instance binary fixture.
func TestStability_FiveInstanceBinaryShapes(t *testing.T) {
	index := []string{"r0", "r1", "r2", "r3", "r4"}
	x := mustFrame(t, index, []string{"f1", "f2"},
		[][]float64{{0, 0}, {1, 0}, {0, 1}, {5, 5}, {6, 5}})
	neg := mustFrame(t, index, []string{"f1", "f2"},
		[][]float64{{1, 1}, {1, 1}, {1, 1}, {1, 1}, {1, 1}})
	pos := mustFrame(t, index, []string{"f1", "f2"},
		[][]float64{{0.4, -0.8}, {0.5, -0.7}, {0.3, -0.9}, {-0.6, 0.2}, {-0.5, 0.3}})
	binary, err := core.PerClass([]*core.Frame{neg, pos})
	require.NoError(t, err)

	res, err := neighbors.Stability(x, binary, index, neighbors.WithNeighborCount(3))
	require.NoError(t, err)
	require.Equal(t, 5, res.Amplitude.Rows())
	require.Equal(t, 2, res.Amplitude.Cols())
	require.Equal(t, index, res.Amplitude.Index())

	for i := 0; i < 5; i++ {
		for j := 0; j < 2; j++ {
			require.GreaterOrEqual(t, res.Amplitude.At(i, j), 0.0)
			require.LessOrEqual(t, res.Amplitude.At(i, j), 1.0)
			require.GreaterOrEqual(t, res.Variability.At(i, j), 0.0)
		}
	}
}

// TestNearest verifies the standalone neighbor lookup: ordering, self
// exclusion and the error ladder.
func TestNearest(t *testing.T) {
	x := mustFrame(t,
		[]string{"r0", "r1", "r2", "r3"},
		[]string{"f1", "f2"},
		[][]float64{
			{0, 0},
			{1, 0},
			{3, 0},
			{10, 0},
		})

	hood, err := neighbors.Nearest(x, "r0", neighbors.WithNeighborCount(2))
	require.NoError(t, err)
	require.Equal(t, []string{"r1", "r2"}, hood, "nearest first, self excluded")

	// Default k capped at rows−1.
	hood, err = neighbors.Nearest(x, "r3")
	require.NoError(t, err)
	require.Len(t, hood, 3)
	require.Equal(t, "r2", hood[0])

	_, err = neighbors.Nearest(nil, "r0")
	require.ErrorIs(t, err, core.ErrNilFrame)
	_, err = neighbors.Nearest(x, "ghost")
	require.ErrorIs(t, err, neighbors.ErrUnknownInstance)

	lone := mustFrame(t, []string{"only"}, []string{"f"}, [][]float64{{1}})
	_, err = neighbors.Nearest(lone, "only")
	require.ErrorIs(t, err, neighbors.ErrTooFewInstances)
}

// TestWithNeighborCount_PanicsOnBadK documents the option-constructor policy.
func TestWithNeighborCount_PanicsOnBadK(t *testing.T) {
	require.Panics(t, func() { neighbors.WithNeighborCount(0) })
	require.Panics(t, func() { neighbors.WithNeighborCount(-3) })
}

// TestCompacity_Preconditions walks the configuration error ladder.
func TestCompacity_Preconditions(t *testing.T) {
	contribs := mustSingle(t, mustFrame(t, []string{"r0"}, []string{"a", "b"},
		[][]float64{{1, 2}}))

	_, err := neighbors.Compacity(nil, []string{"r0"}, 0.9, 2)
	require.ErrorIs(t, err, core.ErrEmptySequence)

	_, err = neighbors.Compacity(contribs, []string{"r0"}, 0, 2)
	require.ErrorIs(t, err, neighbors.ErrBadDistance)
	_, err = neighbors.Compacity(contribs, []string{"r0"}, 1.5, 2)
	require.ErrorIs(t, err, neighbors.ErrBadDistance)
	_, err = neighbors.Compacity(contribs, []string{"r0"}, math.NaN(), 2)
	require.ErrorIs(t, err, neighbors.ErrBadDistance)

	_, err = neighbors.Compacity(contribs, []string{"r0"}, 0.9, 0)
	require.ErrorIs(t, err, neighbors.ErrBadFeatureCount)

	_, err = neighbors.Compacity(contribs, nil, 0.9, 2)
	require.ErrorIs(t, err, neighbors.ErrEmptySelection)
	_, err = neighbors.Compacity(contribs, []string{"ghost"}, 0.9, 2)
	require.ErrorIs(t, err, neighbors.ErrUnknownInstance)
}

// TestCompacity_HandComputed verifies the walk on a row whose cumulative
// sums are easy to follow: [5, 3, 1, 1], total 10.
func TestCompacity_HandComputed(t *testing.T) {
	contribs := mustSingle(t, mustFrame(t,
		[]string{"r0"},
		[]string{"a", "b", "c", "d"},
		[][]float64{{5, 3, 1, 1}}))

	// Within 10% of the total: 5 → 0.5, 8 → 0.2, 9 → 0.1 ≤ 0.1. Three
	// features needed; a budget of two reaches distance 0.2.
	res, err := neighbors.Compacity(contribs, []string{"r0"}, 0.1, 2)
	require.NoError(t, err)
	require.Equal(t, []string{"r0"}, res.Selection)
	require.Equal(t, []int{3}, res.FeaturesNeeded)
	require.InDelta(t, 0.2, res.DistanceReached[0], 1e-12)
}

// TestCompacity_SignedRow verifies cancellation: the top-magnitude feature
// alone can overshoot the full sum.
func TestCompacity_SignedRow(t *testing.T) {
	contribs := mustSingle(t, mustFrame(t,
		[]string{"r0"},
		[]string{"a", "b"},
		[][]float64{{4, -2}}))

	// Total 2. Top-1 sum is 4: distance |4−2|/2 = 1. Both features needed.
	res, err := neighbors.Compacity(contribs, []string{"r0"}, 0.5, 1)
	require.NoError(t, err)
	require.Equal(t, []int{2}, res.FeaturesNeeded)
	require.InDelta(t, 1.0, res.DistanceReached[0], 1e-12)
}

// TestCompacity_ZeroRow verifies the degenerate all-zero instance: nothing
// is needed and the reached distance is zero.
func TestCompacity_ZeroRow(t *testing.T) {
	contribs := mustSingle(t, mustFrame(t,
		[]string{"r0"},
		[]string{"a", "b"},
		[][]float64{{0, 0}}))

	res, err := neighbors.Compacity(contribs, []string{"r0"}, 0.9, 1)
	require.NoError(t, err)
	require.Equal(t, []int{0}, res.FeaturesNeeded)
	require.Equal(t, []float64{0}, res.DistanceReached)
}

// TestCompacity_BudgetCapped verifies budgets beyond the feature count are
// capped and reconstruct exactly.
func TestCompacity_BudgetCapped(t *testing.T) {
	contribs := mustSingle(t, mustFrame(t,
		[]string{"r0"},
		[]string{"a", "b"},
		[][]float64{{1, 2}}))

	res, err := neighbors.Compacity(contribs, []string{"r0"}, 0.9, 100)
	require.NoError(t, err)
	require.InDelta(t, 0.0, res.DistanceReached[0], 1e-12,
		"the full feature set reconstructs exactly")
}

// TestCompacity_BoundsHold verifies the published ranges on a mixed table.
func TestCompacity_BoundsHold(t *testing.T) {
	contribs := mustSingle(t, mustFrame(t,
		[]string{"r0", "r1", "r2"},
		[]string{"a", "b", "c"},
		[][]float64{
			{0.7, -0.2, 0.1},
			{-5, 4, 2},
			{0, 0, math.NaN()},
		}))

	res, err := neighbors.Compacity(contribs, []string{"r0", "r1", "r2"}, 0.2, 2)
	require.NoError(t, err)
	for i := range res.Selection {
		require.GreaterOrEqual(t, res.FeaturesNeeded[i], 0)
		require.LessOrEqual(t, res.FeaturesNeeded[i], 3)
		require.GreaterOrEqual(t, res.DistanceReached[i], 0.0)
		require.LessOrEqual(t, res.DistanceReached[i], 1.0)
	}
}

// TestCompacity_MultiClassRejected mirrors the stability domain restriction.
func TestCompacity_MultiClassRejected(t *testing.T) {
	f := func() *core.Frame {
		return mustFrame(t, []string{"r0"}, []string{"a"}, [][]float64{{1}})
	}
	three, err := core.PerClass([]*core.Frame{f(), f(), f()})
	require.NoError(t, err)

	_, err = neighbors.Compacity(three, []string{"r0"}, 0.9, 1)
	require.ErrorIs(t, err, neighbors.ErrMultiClass)
}
