// SPDX-License-Identifier: MIT
// Package explain: the session type and its compilation.

package explain

import (
	"fmt"

	"github.com/belkmouf/shapash/core"
	"github.com/belkmouf/shapash/groups"
	"github.com/belkmouf/shapash/mask"
	"github.com/belkmouf/shapash/neighbors"
	"github.com/belkmouf/shapash/ranking"
)

// Explainer is a compiled explanation session.
//
// Inputs (the prediction set, the contribution tables, the naming maps and
// the group declaration) are fixed at Compile time. Derived state — the
// current mask and the cached diagnostics — is recomputed on demand with
// last-writer-wins semantics; there are no concurrent writers by design.
type Explainer struct {
	x        *core.Frame
	contribs *core.Contributions

	classLabels  []int
	featureNames map[string]string // technical → display
	invNames     map[string]string // display → technical
	labelNames   map[int]string

	preds    []float64
	hasPreds bool
	probas   *core.Frame

	groupSpec       []groups.Group
	contribsGrouped *core.Contributions
	xGrouped        *core.Frame

	data        []*ranking.Ranked // per class; length 1 for regression
	dataGrouped []*ranking.Ranked

	masks      []*mask.Mask
	params     FilterParams
	hasMask    bool
	maskGroups bool

	imp        [][]float64 // lazy feature importance, per class
	impGrouped [][]float64

	lastStability *neighbors.StabilityResult
	lastCompacity *neighbors.CompacityResult
	lastNeighbors map[string][]string
}

// Compile builds a session over the prediction set x and its contribution
// tables, validating everything eagerly.
//
// Validation (in order):
//  1. x and contribs non-nil (core.ErrNilFrame / core.ErrEmptySequence).
//  2. Every contribution frame aligns with x (core.ErrShapeMismatch).
//  3. Predictions, class labels and probabilities, when supplied, match the
//     session's cardinalities (ErrPredictionLength, ErrLabelCount,
//     ErrProbabilityShape).
//  4. A group declaration passes groups.Validate against x's columns.
//
// Compile then ranks every contribution table against x and, when groups
// are declared, aggregates and ranks the grouped artifacts too — grouped
// and ungrouped artifacts live side by side for the whole session.
//
// Complexity: O(classes × rows × cols × log(cols)).
func Compile(x *core.Frame, contribs *core.Contributions, opts ...Option) (*Explainer, error) {
	if x == nil {
		return nil, core.ErrNilFrame
	}
	if contribs == nil {
		return nil, core.ErrEmptySequence
	}
	if err := contribs.AlignsWith(x); err != nil {
		return nil, fmt.Errorf("explain: contributions vs prediction set: %w", err)
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Explainer{
		x:            x,
		contribs:     contribs,
		featureNames: cfg.featureNames,
		labelNames:   cfg.labelNames,
		preds:        cfg.preds,
		hasPreds:     cfg.hasPreds,
	}
	if e.featureNames == nil {
		e.featureNames = map[string]string{}
	}
	e.invNames = make(map[string]string, len(e.featureNames))
	for tech, display := range e.featureNames {
		e.invNames[display] = tech
	}

	if cfg.hasPreds && len(cfg.preds) != x.Rows() {
		return nil, fmt.Errorf("%w: %d predictions for %d instances",
			ErrPredictionLength, len(cfg.preds), x.Rows())
	}

	if contribs.Case() == core.Classification {
		e.classLabels = cfg.classLabels
		if !cfg.hasLabels {
			e.classLabels = make([]int, contribs.NumClasses())
			for k := range e.classLabels {
				e.classLabels[k] = k
			}
		} else if len(e.classLabels) != contribs.NumClasses() {
			return nil, fmt.Errorf("%w: %d labels for %d classes",
				ErrLabelCount, len(e.classLabels), contribs.NumClasses())
		}
	} else if cfg.hasLabels {
		return nil, fmt.Errorf("%w: labels on a regression session", ErrLabelCount)
	}

	if cfg.probas != nil {
		if contribs.Case() != core.Classification {
			return nil, fmt.Errorf("%w: probabilities on a regression session", ErrProbabilityShape)
		}
		if cfg.probas.Rows() != x.Rows() || cfg.probas.Cols() != contribs.NumClasses() {
			return nil, fmt.Errorf("%w: %d×%d for %d instances × %d classes",
				ErrProbabilityShape, cfg.probas.Rows(), cfg.probas.Cols(),
				x.Rows(), contribs.NumClasses())
		}
		e.probas = cfg.probas
	}

	var err error
	if e.data, err = rankAll(contribs, x); err != nil {
		return nil, err
	}

	if len(cfg.groups) > 0 {
		if err = groups.Validate(cfg.groups, x.Columns()); err != nil {
			return nil, fmt.Errorf("explain: %w", err)
		}
		e.groupSpec = cfg.groups
		if e.contribsGrouped, err = contribs.MapFrames(func(f *core.Frame) (*core.Frame, error) {
			return groups.Contributions(f, cfg.groups)
		}); err != nil {
			return nil, fmt.Errorf("explain: %w", err)
		}
		if e.xGrouped, err = groups.Values(x, cfg.groups); err != nil {
			return nil, fmt.Errorf("explain: %w", err)
		}
		if e.dataGrouped, err = rankAll(e.contribsGrouped, e.xGrouped); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// rankAll lifts ranking.Rank over the per-class sequence.
func rankAll(contribs *core.Contributions, values *core.Frame) ([]*ranking.Ranked, error) {
	out := make([]*ranking.Ranked, contribs.NumClasses())
	err := contribs.Each(func(class int, f *core.Frame) error {
		r, rerr := ranking.Rank(f, values)
		if rerr != nil {
			return rerr
		}
		out[class] = r

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("explain: %w", err)
	}

	return out, nil
}

// Case reports whether the session is regression or classification.
func (e *Explainer) Case() core.Case { return e.contribs.Case() }

// NumClasses returns the per-class sequence length (1 for regression).
func (e *Explainer) NumClasses() int { return e.contribs.NumClasses() }

// ClassLabels returns a copy of the ordered class labels (nil for
// regression).
func (e *Explainer) ClassLabels() []int { return append([]int(nil), e.classLabels...) }

// Ranked returns the per-class ranked artifacts over raw features.
func (e *Explainer) Ranked() []*ranking.Ranked { return append([]*ranking.Ranked(nil), e.data...) }

// RankedGroups returns the per-class ranked artifacts over grouped
// features, or ErrNoGroups when the session has none.
func (e *Explainer) RankedGroups() ([]*ranking.Ranked, error) {
	if e.groupSpec == nil {
		return nil, ErrNoGroups
	}

	return append([]*ranking.Ranked(nil), e.dataGrouped...), nil
}

// GroupMembers resolves a declared group to its member features — the
// drill-down lookup; aggregation never destroys member addressability.
func (e *Explainer) GroupMembers(name string) ([]string, error) {
	if e.groupSpec == nil {
		return nil, ErrNoGroups
	}
	members, ok := groups.Members(e.groupSpec, name)
	if !ok {
		return nil, fmt.Errorf("%w: group %q", ErrUnknownFeature, name)
	}

	return members, nil
}

// columnsFor returns the feature-name list of the chosen artifact set.
func (e *Explainer) columnsFor(useGroups bool) []string {
	if useGroups {
		return e.xGrouped.Columns()
	}

	return e.x.Columns()
}

// resolveFeatures maps user-facing feature references — display names,
// technical column names, or group names — to column positions within the
// chosen artifact set. Unknown references fail with ErrUnknownFeature.
func (e *Explainer) resolveFeatures(refs []string, useGroups bool) ([]int, error) {
	columns := e.columnsFor(useGroups)
	pos := make(map[string]int, len(columns))
	for j, name := range columns {
		pos[name] = j
	}

	out := make([]int, 0, len(refs))
	for _, ref := range refs {
		if j, ok := pos[ref]; ok {
			out = append(out, j)

			continue
		}
		if tech, ok := e.invNames[ref]; ok {
			if j, ok2 := pos[tech]; ok2 {
				out = append(out, j)

				continue
			}
		}

		return nil, fmt.Errorf("%w: %q", ErrUnknownFeature, ref)
	}

	return out, nil
}
