// SPDX-License-Identifier: MIT
// Package neighbors: the compacity diagnostic.

package neighbors

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/belkmouf/shapash/core"
)

// CompacityResult carries, per selected instance (same order as the
// selection):
//
//   - FeaturesNeeded  — the minimum number of top-ranked features whose
//     partial contribution sum stays within the target distance of the
//     full-feature sum; always in [0, feature count].
//   - DistanceReached — the relative distance achieved with the fixed
//     feature budget, clamped to [0, 1] (values above 1 saturate at 1).
type CompacityResult struct {
	Selection       []string
	FeaturesNeeded  []int
	DistanceReached []float64
}

// Compacity computes the feature-count vs. approximation trade-off for the
// selected instances.
//
// The reconstruction distance for a top-k subset is the relative error
// between the subset's contribution sum and the full-feature sum:
// |Σ top-k − Σ all| / |Σ all|. A zero full sum reconstructed exactly counts
// as distance 0; a zero full sum missed counts as saturation (1).
//
// Preconditions (in order):
//  1. contribs non-nil; regression or binary classification (ErrMultiClass).
//  2. distance in (0, 1] (ErrBadDistance).
//  3. nbFeatures ≥ 1 (ErrBadFeatureCount); budgets beyond the feature count
//     are capped, not rejected.
//  4. selection non-empty and known (ErrEmptySelection, ErrUnknownInstance).
//
// Complexity: O(len(selection) × features × log(features)).
func Compacity(contribs *core.Contributions, selection []string, distance float64, nbFeatures int) (*CompacityResult, error) {
	if contribs == nil {
		return nil, core.ErrEmptySequence
	}
	frame, err := diagnosticFrame(contribs)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(distance) || distance <= 0 || distance > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrBadDistance, distance)
	}
	if nbFeatures <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadFeatureCount, nbFeatures)
	}
	rows, err := resolveSelection(frame, selection)
	if err != nil {
		return nil, err
	}

	cols := frame.Cols()
	budget := nbFeatures
	if budget > cols {
		budget = cols
	}

	needed := make([]int, len(rows))
	reached := make([]float64, len(rows))
	for i, r := range rows {
		row := frame.Row(r)
		sorted := byMagnitude(row)
		total := floats.Sum(sorted)

		// Walk the cumulative top-k sums once. k = 0 covers the degenerate
		// all-zero row where no feature is needed at all; a budget at or
		// beyond the usable feature count reconstructs exactly (distance 0).
		cum := 0.0
		found := reconstructionDistance(cum, total) <= distance
		if found {
			needed[i] = 0
		} else {
			needed[i] = len(sorted)
		}
		reached[i] = 0
		for k, v := range sorted {
			cum += v
			d := reconstructionDistance(cum, total)
			if k+1 == budget {
				reached[i] = clampUnit(d)
			}
			if !found && d <= distance {
				needed[i] = k + 1
				found = true
			}
		}
	}

	return &CompacityResult{
		Selection:       append([]string(nil), selection...),
		FeaturesNeeded:  needed,
		DistanceReached: reached,
	}, nil
}

// byMagnitude returns the row's non-NaN contributions ordered by descending
// absolute value, ties keeping original column order. NaN entries carry no
// contribution and are dropped from the reconstruction.
func byMagnitude(row []float64) []float64 {
	out := make([]float64, 0, len(row))
	for _, v := range row {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return math.Abs(out[a]) > math.Abs(out[b])
	})

	return out
}

// reconstructionDistance is the relative error between a partial sum and
// the full sum.
func reconstructionDistance(partial, total float64) float64 {
	diff := math.Abs(partial - total)
	if total == 0 {
		if diff == 0 {
			return 0
		}

		return 1
	}

	return diff / math.Abs(total)
}

// clampUnit caps a distance into [0, 1]; anything beyond 1 is "no better
// than saturation".
func clampUnit(d float64) float64 {
	if d > 1 {
		return 1
	}
	if d < 0 {
		return 0
	}

	return d
}
