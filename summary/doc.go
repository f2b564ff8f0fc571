// SPDX-License-Identifier: MIT

// Package summary builds the final tabular explanation: per instance, an
// ordered interleaving of (feature name, feature value, contribution)
// triples for every rank position the mask left visible.
//
// Feature names are resolved through a display-name map; a feature missing
// from the map falls back to its raw column name. The table is rectangular:
// its width is the widest surviving count across instances, and rows with
// fewer survivors are padded with the absent placeholder (empty name, NaN
// numbers) — a row never goes missing.
//
// The session layer joins each row with the user-supplied prediction (and,
// optionally, a model-estimated probability) before handing the table to a
// consumer; Table carries those fields.
//
// Errors come from the underlying packages: core.ErrNilFrame and
// mask.ErrShapeMismatch style sentinels surface unchanged.
package summary
