// SPDX-License-Identifier: MIT
// Package neighbors: standalone neighbor lookup.

package neighbors

import (
	"github.com/belkmouf/shapash/core"
)

// Nearest returns the identifiers of the k nearest other instances to the
// identified instance, ordered by increasing Euclidean distance (ties broken
// by row position). The instance itself is never part of its neighborhood.
//
// Preconditions:
//  1. x non-nil (core.ErrNilFrame) with at least two rows
//     (ErrTooFewInstances).
//  2. id present in x's row index (ErrUnknownInstance).
//
// k defaults to DefaultNeighborCount and is capped at rows−1.
// Complexity: O(n log n) tree build + O(k log n) query.
func Nearest(x *core.Frame, id string, opts ...Option) ([]string, error) {
	if x == nil {
		return nil, core.ErrNilFrame
	}
	rows, err := resolveSelection(x, []string{id})
	if err != nil {
		return nil, err
	}
	if x.Rows() < 2 {
		return nil, ErrTooFewInstances
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	k := cfg.K
	if max := x.Rows() - 1; k > max {
		k = max
	}

	ix := newIndex(x)
	hood := ix.nearest(rows[0], k)
	out := make([]string, len(hood))
	for i, r := range hood {
		out[i] = x.RowID(r)
	}

	return out, nil
}
