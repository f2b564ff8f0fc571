// SPDX-License-Identifier: MIT

// Package core defines the labeled-table primitives every other package in
// the module builds on.
//
// Two types matter:
//
//   - Frame — an instances × features table of float64 values with a stable
//     row index (instance identifiers) and unique column names. A Frame is
//     immutable by convention: no mutating methods are exported, and every
//     accessor that could leak internal storage returns a copy.
//
//   - Contributions — the regression/classification variant over Frames.
//     Regression carries a single Frame; Classification carries an ordered
//     sequence of Frames, one per output class, all sharing one row index
//     and one column set. Every engine operation is written once for a
//     single Frame and lifted over the sequence with MapFrames, so both
//     cases behave identically in shape and semantics.
//
// Numeric storage is a gonum *mat.Dense; labels live alongside it so
// position-based kernels and identifier-based lookups stay in lockstep.
//
// Errors (sentinel):
//
//	– ErrEmptyFrame      if a frame would have zero rows or zero columns.
//	– ErrShapeMismatch   if labels and data disagree, or two tables that
//	                     must align do not.
//	– ErrDuplicateColumn if a column name appears twice.
//	– ErrDuplicateRowID  if a row identifier appears twice.
//	– ErrNilFrame        if a nil *Frame is passed where one is required.
//	– ErrEmptySequence   if a classification sequence is empty.
//	– ErrClassCount      if a classification sequence has fewer than two frames.
package core
