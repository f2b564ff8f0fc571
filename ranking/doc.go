// SPDX-License-Identifier: MIT

// Package ranking orders every instance's feature contributions by
// descending absolute value and packages the result as three parallel,
// index-aligned tables.
//
// Rank produces, for each row independently:
//
//   - ContribSorted — contribution values, largest magnitude first
//   - VarDict       — the originating column indices (the permutation)
//   - XSorted       — the paired feature values, permuted identically
//
// Position i across the three artifacts always refers to the same feature.
// Ties keep the original column order (stable sort); NaN contributions are
// treated as least important and sort last, never as largest magnitude; an
// all-zero row keeps the original column order.
//
// Complexity: O(rows × features × log(features)).
//
// The package also computes relative feature importance — the per-column
// sum of absolute contributions, normalized to sum to one.
//
// Errors (sentinel):
//
//	– core.ErrNilFrame       if contributions or values are nil.
//	– core.ErrShapeMismatch  if contributions and values do not align.
package ranking
