// SPDX-License-Identifier: MIT
// Package neighbors: defaults, functional options and sentinel errors.

package neighbors

import "errors"

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultNeighborCount is the neighborhood size k used when no option
	// overrides it. Always capped at rows−1 at call time.
	DefaultNeighborCount = 10

	// DefaultApproximationDistance is the compacity target distance used by
	// session-level callers that do not pick one: "stay within 10% of the
	// full-feature reconstruction" corresponds to 0.9 cumulative fidelity.
	DefaultApproximationDistance = 0.9

	// DefaultFeatureCount is the fixed feature budget compacity reports the
	// reached distance for when the caller does not pick one.
	DefaultFeatureCount = 5
)

// Sentinel errors returned by the diagnostics.
var (
	// ErrMultiClass rejects stability/compacity on classification cases with
	// more than two classes; the diagnostics are defined for regression and
	// binary classification only.
	ErrMultiClass = errors.New("neighbors: multi-class classification is not supported")

	// ErrEmptySelection indicates that no instance identifiers were selected.
	ErrEmptySelection = errors.New("neighbors: selection is empty")

	// ErrUnknownInstance indicates a selected identifier absent from the
	// instance index.
	ErrUnknownInstance = errors.New("neighbors: unknown instance identifier")

	// ErrTooFewInstances indicates a table with fewer than two instances;
	// a neighborhood needs at least one other instance.
	ErrTooFewInstances = errors.New("neighbors: need at least two instances")

	// ErrBadNeighborCount rejects a non-positive neighborhood size.
	ErrBadNeighborCount = errors.New("neighbors: neighbor count must be positive")

	// ErrBadDistance rejects a compacity target distance outside (0, 1].
	ErrBadDistance = errors.New("neighbors: approximation distance must be in (0, 1]")

	// ErrBadFeatureCount rejects a non-positive compacity feature budget.
	ErrBadFeatureCount = errors.New("neighbors: feature count must be positive")
)

// Options configures neighbor search.
//
// K — neighborhood size; capped at rows−1 at call time. Must be > 0.
type Options struct {
	K int
}

// Option represents a functional option for the diagnostics.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{K: DefaultNeighborCount}
}

// WithNeighborCount overrides the neighborhood size k.
// Panics on k ≤ 0 (programmer error, per option-constructor policy).
func WithNeighborCount(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			panic(ErrBadNeighborCount.Error())
		}
		o.K = k
	}
}
