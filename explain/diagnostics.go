// SPDX-License-Identifier: MIT
// Package explain: lazy, cached diagnostics over the compiled session.

package explain

import (
	"fmt"

	"github.com/belkmouf/shapash/core"
	"github.com/belkmouf/shapash/neighbors"
	"github.com/belkmouf/shapash/ranking"
)

// FeatureImportance returns, per class, the normalized feature importance
// of the session's raw contribution tables. The result is computed on
// first call and cached; the slice order follows the column order of the
// prediction set.
func (e *Explainer) FeatureImportance() ([][]float64, error) {
	if e.imp == nil {
		imp, err := importanceAll(e.contribs)
		if err != nil {
			return nil, err
		}
		e.imp = imp
	}

	return e.imp, nil
}

// GroupImportance is FeatureImportance over the grouped contribution
// tables, column order following the grouped artifact set. ErrNoGroups
// when the session declared none.
func (e *Explainer) GroupImportance() ([][]float64, error) {
	if e.groupSpec == nil {
		return nil, ErrNoGroups
	}
	if e.impGrouped == nil {
		imp, err := importanceAll(e.contribsGrouped)
		if err != nil {
			return nil, err
		}
		e.impGrouped = imp
	}

	return e.impGrouped, nil
}

// importanceAll lifts ranking.FeatureImportance over the per-class
// sequence.
func importanceAll(contribs *core.Contributions) ([][]float64, error) {
	out := make([][]float64, contribs.NumClasses())
	err := contribs.Each(func(class int, f *core.Frame) error {
		imp, ierr := ranking.FeatureImportance(f)
		if ierr != nil {
			return ierr
		}
		out[class] = imp

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("explain: %w", err)
	}

	return out, nil
}

// StabilityMetrics runs the neighborhood stability diagnostic for the
// selected instance identifiers and caches the result for LastStability.
func (e *Explainer) StabilityMetrics(selection []string, opts ...neighbors.Option) (*neighbors.StabilityResult, error) {
	res, err := neighbors.Stability(e.x, e.contribs, selection, opts...)
	if err != nil {
		return nil, err
	}
	e.lastStability = res

	return res, nil
}

// LastStability returns the result of the most recent StabilityMetrics
// call, or nil when none ran yet.
func (e *Explainer) LastStability() *neighbors.StabilityResult { return e.lastStability }

// CompacityMetrics runs the compacity diagnostic for the selected instance
// identifiers and caches the result for LastCompacity.
func (e *Explainer) CompacityMetrics(selection []string, distance float64, nbFeatures int) (*neighbors.CompacityResult, error) {
	res, err := neighbors.Compacity(e.contribs, selection, distance, nbFeatures)
	if err != nil {
		return nil, err
	}
	e.lastCompacity = res

	return res, nil
}

// LastCompacity returns the result of the most recent CompacityMetrics
// call, or nil when none ran yet.
func (e *Explainer) LastCompacity() *neighbors.CompacityResult { return e.lastCompacity }

// LocalNeighbors returns the identifiers of the instance's nearest
// neighbors in feature space, nearest first. Results accumulate in a
// per-instance cache; passing options bypasses and refreshes the cached
// entry.
func (e *Explainer) LocalNeighbors(id string, opts ...neighbors.Option) ([]string, error) {
	if len(opts) == 0 {
		if hood, ok := e.lastNeighbors[id]; ok {
			return append([]string(nil), hood...), nil
		}
	}
	hood, err := neighbors.Nearest(e.x, id, opts...)
	if err != nil {
		return nil, err
	}
	if e.lastNeighbors == nil {
		e.lastNeighbors = make(map[string][]string)
	}
	e.lastNeighbors[id] = hood

	return append([]string(nil), hood...), nil
}
