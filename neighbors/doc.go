// SPDX-License-Identifier: MIT

// Package neighbors computes the nearest-neighbor diagnostics: explanation
// stability across a local neighborhood, and the compacity trade-off
// between feature count and approximation fidelity.
//
// Neighbor search runs in original feature space over a k-d tree built once
// per call (gonum spatial/kdtree), with Euclidean distance. Categorical
// features must already be numerically encoded by the caller's
// preprocessing; the engine only sees numeric tables.
//
// Stability — for one selected instance, returns the normalized
// contribution rows of the instance and its k nearest neighbors
// (normalization divides each row by its max absolute contribution, so
// values lie in [-1, 1]). For a multi-instance selection it returns two
// instances × features tables: amplitude (mean absolute normalized
// contribution across each neighborhood) and variability (population
// standard deviation across the neighborhood). These feed a diagnostic
// plot, never a filter.
//
// Compacity — per selected instance, the minimum number of top-ranked
// features whose partial contribution sum reconstructs the full-feature
// sum within a target relative distance, and conversely the relative
// distance reached with a fixed feature count, clamped to [0, 1].
//
// Nearest — the plain lookup underneath both: the identifiers of an
// instance's k nearest other instances, nearest first.
//
// Both diagnostics are restricted to regression and binary classification;
// a classification case with more than two classes is rejected with
// ErrMultiClass. For binary classification the positive-class (second)
// contribution table is used.
//
// Complexity: tree build O(n log n); each query O(log n) expected;
// metric aggregation O(selection × (k+1) × features).
package neighbors
