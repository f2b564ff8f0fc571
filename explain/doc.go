// SPDX-License-Identifier: MIT

// Package explain is the explanation session: compile once over a
// prediction set and its contribution tables, then filter and summarize on
// demand.
//
// A session is built in one shot — Compile validates alignment, ranks every
// contribution table (one per class for classification), and precomputes
// group artifacts when feature groups are declared. The inputs are never
// mutated afterwards; derived artifacts (the current mask, the diagnostic
// results) are recomputed whenever new parameters arrive, last writer wins.
//
//	xpl, err := explain.Compile(x, contribs,
//	    explain.WithPredictions(preds),
//	    explain.WithFeatureNames(map[string]string{"age": "Age (years)"}),
//	)
//	if err != nil { ... }
//	if err := xpl.Filter(explain.WithThreshold(0.1), explain.WithMaxContrib(3)); err != nil { ... }
//	table, err := xpl.Summary()
//
// Regression and classification share every call: the session lifts each
// single-table operation over the per-class sequence, so a classification
// session behaves element-wise exactly like one regression session per
// class. Summary additionally picks, per instance, the class summary
// matching the predicted label.
//
// Errors (sentinel):
//
//	– ErrNoPredictions    prediction values required but absent.
//	– ErrNoProbabilities  probability column requested but none supplied.
//	– ErrPredictionLength prediction vector does not match the row count.
//	– ErrProbabilityShape probability table does not match rows × classes.
//	– ErrLabelCount       class labels do not match the class count.
//	– ErrUnknownFeature   a feature name that resolves to nothing.
//	– ErrUnknownLabel     a predicted label outside the declared classes.
//	– ErrNoFilter         masked artifacts requested before any Filter call.
//	– ErrNoGroups         group artifacts requested but none declared.
package explain
