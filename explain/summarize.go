// SPDX-License-Identifier: MIT
// Package explain: joining ranked+masked artifacts with predictions into
// the final summary table.

package explain

import (
	"fmt"
	"strconv"

	"github.com/belkmouf/shapash/core"
	"github.com/belkmouf/shapash/summary"
)

// Summary builds the explanation table for the session.
//
// With no arguments it reuses the mask of the last Filter call when one
// exists and still matches the chosen artifact set; otherwise it runs
// Filter with the supplied criteria first (an empty criterion set means
// "everything visible").
//
// Predictions are mandatory (ErrNoPredictions). For classification the
// table keeps, per instance, the summary of the class matching the
// predicted label (ErrUnknownLabel otherwise) and resolves the label's
// display name; WithProba additionally joins the predicted class's
// probability (ErrNoProbabilities when none were compiled in).
func (e *Explainer) Summary(opts ...FilterOption) (*summary.Table, error) {
	if !e.hasPreds {
		return nil, ErrNoPredictions
	}

	var cfg filterConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	wantGroups := e.groupSpec != nil && !cfg.noGroups

	// Reuse the cached mask only for a bare call against the same artifact
	// set; any explicit criterion recomputes (last writer wins).
	bare := len(opts) == 0 || onlyProba(opts)
	if !e.hasMask || !bare || e.maskGroups != wantGroups {
		if err := e.Filter(opts...); err != nil {
			return nil, err
		}
	}

	data := e.data
	columns := e.columnsFor(false)
	if e.maskGroups {
		data = e.dataGrouped
		columns = e.columnsFor(true)
	}

	// Per-class tables, then per-instance selection of the predicted class.
	tables := make([]*summary.Table, len(data))
	width := 0
	for class, ranked := range data {
		t, err := summary.Summarize(ranked, e.masks[class], columns, e.featureNames)
		if err != nil {
			return nil, fmt.Errorf("explain: class %d: %w", class, err)
		}
		tables[class] = t
		if t.Width > width {
			width = t.Width
		}
	}

	out := &summary.Table{
		Width:    width,
		HasPreds: true,
		HasProba: cfg.wantProba,
		Rows:     make([]summary.Row, e.x.Rows()),
	}
	if cfg.wantProba && e.probas == nil {
		return nil, ErrNoProbabilities
	}

	for i := 0; i < e.x.Rows(); i++ {
		class := 0
		if e.Case() == core.Classification {
			var err error
			if class, err = e.classIndexOf(e.preds[i]); err != nil {
				return nil, fmt.Errorf("%w (instance %q)", err, e.x.RowID(i))
			}
		}
		row := tables[class].Rows[i]
		for len(row.Entries) < width {
			row.Entries = append(row.Entries, summary.Absent())
		}
		row.Pred = e.preds[i]
		if e.Case() == core.Classification {
			row.PredName = e.labelName(e.classLabels[class])
		}
		if cfg.wantProba {
			row.Proba = e.probas.At(i, class)
		}
		out.Rows[i] = row
	}

	return out, nil
}

// classIndexOf maps a predicted label value to its class position.
func (e *Explainer) classIndexOf(pred float64) (int, error) {
	for k, label := range e.classLabels {
		if float64(label) == pred {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: %v", ErrUnknownLabel, pred)
}

// labelName resolves a class label's display name, falling back to the
// numeric label itself.
func (e *Explainer) labelName(label int) string {
	if name, ok := e.labelNames[label]; ok && name != "" {
		return name
	}

	return strconv.Itoa(label)
}

// onlyProba reports whether the supplied options carry no filter criterion
// (WithProba alone does not invalidate the cached mask).
func onlyProba(opts []FilterOption) bool {
	var cfg filterConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return len(cfg.hide) == 0 && !cfg.hasThresh && cfg.sign == SignAny &&
		!cfg.hasCutoff && !cfg.noGroups
}
