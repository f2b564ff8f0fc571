// SPDX-License-Identifier: MIT

// Package mask implements the composable row-wise visibility algebra over
// ranked contribution tables.
//
// A Mask is a boolean table shaped exactly like the ranked contributions it
// filters: true means "this rank position is visible for this instance".
// Independent criteria each produce a full mask; the caller combines them
// with Combine (shape-preserving logical AND) and applies the rank cutoff
// last:
//
//	base      := mask.Init(rows, cols)                 // all-true
//	hidden, _ := mask.HideFeatures(varDict, ids)       // hide by identifier
//	strong, _ := mask.Threshold(contribSorted, 0.1)    // |v| ≥ threshold
//	pos, _    := mask.Sign(contribSorted, true)        // keep positive only
//	m, _      := mask.Combine(base, hidden, strong, pos)
//	m, _      = mask.Cutoff(m, 3)                      // first 3 survivors
//
// Cutoff counts true entries of the already-combined mask, so a cutoff of 3
// means "the first 3 still-visible features", never "the first 3 ranked
// features regardless of other filters". The order is load-bearing.
// Cutoff is idempotent: applying it twice with the same N changes nothing.
//
// Apply materializes the filtered table: visible cells keep their value,
// hidden cells become NaN — the defined absent sentinel, since zero is a
// perfectly valid contribution.
//
// Errors (sentinel):
//
//	– ErrNegativeThreshold if a threshold is < 0.
//	– ErrBadCutoff         if a cutoff is ≤ 0.
//	– ErrBadShape          if a mask would have non-positive dimensions.
//	– ErrShapeMismatch     if combined masks (or mask and table) disagree in shape.
//	– ErrNilMask           if a nil *Mask is passed where one is required.
//	– ErrNoMasks           if Combine receives nothing to combine.
package mask
