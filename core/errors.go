// SPDX-License-Identifier: MIT
// Package core: sentinel error set.
// All constructors and alignment checks return these sentinels; callers
// branch with errors.Is. Context is attached at call sites via %w wrapping.

package core

import "errors"

var (
	// ErrEmptyFrame indicates a frame with zero rows or zero columns.
	ErrEmptyFrame = errors.New("core: frame must have at least one row and one column")

	// ErrShapeMismatch indicates that labels and data disagree in cardinality,
	// or that two tables required to align (shape and row index) do not.
	ErrShapeMismatch = errors.New("core: shape mismatch")

	// ErrDuplicateColumn indicates a repeated column name within one frame.
	ErrDuplicateColumn = errors.New("core: duplicate column name")

	// ErrDuplicateRowID indicates a repeated row identifier within one frame.
	ErrDuplicateRowID = errors.New("core: duplicate row identifier")

	// ErrNilFrame indicates that a nil *Frame was passed where one is required.
	ErrNilFrame = errors.New("core: frame is nil")

	// ErrEmptySequence indicates an empty classification contribution sequence.
	ErrEmptySequence = errors.New("core: contribution sequence is empty")

	// ErrClassCount indicates a classification sequence with fewer than two
	// per-class frames. A multi-output case needs one frame per class.
	ErrClassCount = errors.New("core: classification requires at least two contribution frames")
)
