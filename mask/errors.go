// SPDX-License-Identifier: MIT
// Package mask: sentinel error set. Callers branch with errors.Is.

package mask

import "errors"

var (
	// ErrNegativeThreshold rejects threshold criteria below zero; a magnitude
	// threshold has no meaning for negative values.
	ErrNegativeThreshold = errors.New("mask: threshold must be non-negative")

	// ErrBadCutoff rejects non-positive cutoffs; keeping "at most zero"
	// features is an empty summary and always a caller mistake.
	ErrBadCutoff = errors.New("mask: max contributions must be positive")

	// ErrBadShape rejects masks with non-positive dimensions.
	ErrBadShape = errors.New("mask: invalid shape")

	// ErrShapeMismatch indicates masks (or a mask and the table it filters)
	// that do not share one shape.
	ErrShapeMismatch = errors.New("mask: shape mismatch")

	// ErrNilMask indicates that a nil *Mask was passed where one is required.
	ErrNilMask = errors.New("mask: mask is nil")

	// ErrNoMasks indicates a Combine call with no operands.
	ErrNoMasks = errors.New("mask: nothing to combine")

	// ErrRaggedVarDict indicates a var-dict whose rows disagree in length.
	ErrRaggedVarDict = errors.New("mask: ragged variable dictionary")
)
