// SPDX-License-Identifier: MIT
// Package explain: sentinel error set. Callers branch with errors.Is.

package explain

import "errors"

var (
	// ErrNoPredictions indicates an operation that joins against prediction
	// values (Summary) on a session compiled without WithPredictions.
	ErrNoPredictions = errors.New("explain: prediction values required; compile with WithPredictions")

	// ErrNoProbabilities indicates a probability column was requested but no
	// probability table was supplied, or the session is a regression one.
	ErrNoProbabilities = errors.New("explain: probabilities required; compile with WithProbabilities")

	// ErrPredictionLength indicates a prediction vector whose length does not
	// match the instance count.
	ErrPredictionLength = errors.New("explain: prediction length does not match instance count")

	// ErrProbabilityShape indicates a probability table that is not
	// instances × classes with the session's row index.
	ErrProbabilityShape = errors.New("explain: probability table shape mismatch")

	// ErrLabelCount indicates declared class labels whose count differs from
	// the contribution sequence length.
	ErrLabelCount = errors.New("explain: class label count does not match class count")

	// ErrUnknownFeature indicates a feature reference that matches neither a
	// column name, a display name, nor a declared group.
	ErrUnknownFeature = errors.New("explain: unknown feature")

	// ErrUnknownLabel indicates a predicted value outside the declared class
	// labels of a classification session.
	ErrUnknownLabel = errors.New("explain: predicted label not among class labels")

	// ErrNoFilter indicates masked artifacts requested before Filter ran.
	ErrNoFilter = errors.New("explain: no filter applied yet")

	// ErrNoGroups indicates group artifacts requested on a session compiled
	// without feature groups.
	ErrNoGroups = errors.New("explain: no feature groups declared")
)
