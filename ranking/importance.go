// SPDX-License-Identifier: MIT
// Package ranking: relative feature importance.

package ranking

import (
	"math"

	"github.com/belkmouf/shapash/core"
)

// FeatureImportance computes, per column, the sum of absolute contributions
// across all instances, normalized so the importances sum to one.
//
// A NaN contribution counts as zero. If every contribution is zero (or NaN)
// the importances are all zero rather than NaN.
//
// Complexity: O(rows × cols) time, O(cols) space.
func FeatureImportance(contribs *core.Frame) ([]float64, error) {
	if contribs == nil {
		return nil, core.ErrNilFrame
	}

	rows, cols := contribs.Rows(), contribs.Cols()
	imp := make([]float64, cols)
	total := 0.0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := contribs.At(i, j)
			if math.IsNaN(v) {
				continue
			}
			a := math.Abs(v)
			imp[j] += a
			total += a
		}
	}
	if total == 0 {
		return imp, nil
	}
	for j := range imp {
		imp[j] /= total
	}

	return imp, nil
}
