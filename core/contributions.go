// SPDX-License-Identifier: MIT
// Package core: the regression/classification variant over Frames.
//
// Contributions is a tagged variant: Regression carries exactly one Frame,
// Classification an ordered sequence of per-class Frames sharing one row
// index and one column set. The sequence length is fixed at construction
// and never changes for the lifetime of the value.

package core

import "fmt"

// Case tells whether contribution data describes a single-output model
// (Regression) or a multi-output one (Classification, one table per class).
type Case int

const (
	// Regression marks single-output contribution data: one Frame.
	Regression Case = iota

	// Classification marks multi-output contribution data: an ordered
	// sequence of Frames, one per class, identically indexed.
	Classification
)

// String implements fmt.Stringer for diagnostics.
func (c Case) String() string {
	if c == Classification {
		return "classification"
	}

	return "regression"
}

// Contributions is the polymorphic contribution container.
// All downstream operations are written for a single Frame and lifted over
// the sequence with MapFrames/Each, so Regression and Classification share
// one code path and one set of semantics.
type Contributions struct {
	kase   Case
	frames []*Frame
}

// Single wraps one contribution Frame as a Regression case.
func Single(f *Frame) (*Contributions, error) {
	if f == nil {
		return nil, ErrNilFrame
	}

	return &Contributions{kase: Regression, frames: []*Frame{f}}, nil
}

// PerClass wraps an ordered per-class sequence as a Classification case.
//
// Validation (in order):
//  1. The sequence must be non-empty (ErrEmptySequence).
//  2. It must hold at least two frames (ErrClassCount).
//  3. No frame may be nil (ErrNilFrame).
//  4. Every frame must align with the first — same shape, same row index,
//     same column names (ErrShapeMismatch).
func PerClass(frames []*Frame) (*Contributions, error) {
	if len(frames) == 0 {
		return nil, ErrEmptySequence
	}
	if len(frames) < 2 {
		return nil, ErrClassCount
	}
	first := frames[0]
	if first == nil {
		return nil, fmt.Errorf("%w: class 0", ErrNilFrame)
	}
	for k := 1; k < len(frames); k++ {
		f := frames[k]
		if f == nil {
			return nil, fmt.Errorf("%w: class %d", ErrNilFrame, k)
		}
		if err := first.AlignsWith(f); err != nil {
			return nil, fmt.Errorf("class %d: %w", k, err)
		}
		for j, name := range first.columns {
			if f.columns[j] != name {
				return nil, fmt.Errorf("%w: class %d column %d is %q vs %q",
					ErrShapeMismatch, k, j, f.columns[j], name)
			}
		}
	}

	return &Contributions{kase: Classification, frames: append([]*Frame(nil), frames...)}, nil
}

// Case returns the variant tag.
func (c *Contributions) Case() Case { return c.kase }

// NumClasses returns the sequence length: 1 for Regression, the number of
// classes for Classification.
func (c *Contributions) NumClasses() int { return len(c.frames) }

// Frame returns the k-th frame of the sequence (k = 0 for Regression).
func (c *Contributions) Frame(k int) *Frame { return c.frames[k] }

// Frames returns a copy of the ordered frame sequence (length 1 for
// Regression). The Frames themselves are shared, immutable references.
func (c *Contributions) Frames() []*Frame { return append([]*Frame(nil), c.frames...) }

// Each runs fn over every frame in order, stopping at the first error.
func (c *Contributions) Each(fn func(class int, f *Frame) error) error {
	for k, f := range c.frames {
		if err := fn(k, f); err != nil {
			return fmt.Errorf("class %d: %w", k, err)
		}
	}

	return nil
}

// MapFrames lifts a single-frame operation over the whole sequence,
// preserving order and length, and returns a Contributions of the same
// case. This is the one implementation point of the polymorphism
// guarantee: running an operation through MapFrames on a Classification
// sequence is element-wise identical to running it on each frame alone.
func (c *Contributions) MapFrames(fn func(f *Frame) (*Frame, error)) (*Contributions, error) {
	out := make([]*Frame, len(c.frames))
	for k, f := range c.frames {
		mapped, err := fn(f)
		if err != nil {
			return nil, fmt.Errorf("class %d: %w", k, err)
		}
		if mapped == nil {
			return nil, fmt.Errorf("class %d: %w", k, ErrNilFrame)
		}
		out[k] = mapped
	}

	return &Contributions{kase: c.kase, frames: out}, nil
}

// AlignsWith verifies that every frame in the sequence aligns with the
// prediction-set frame x: same shape, same row index, same column names.
// This is the boundary check between the external attribution backend and
// the engine; it fails fast with a wrapped ErrShapeMismatch.
func (c *Contributions) AlignsWith(x *Frame) error {
	if x == nil {
		return ErrNilFrame
	}

	return c.Each(func(_ int, f *Frame) error {
		if err := x.AlignsWith(f); err != nil {
			return err
		}
		for j, name := range x.columns {
			if f.columns[j] != name {
				return fmt.Errorf("%w: column %d is %q vs %q",
					ErrShapeMismatch, j, f.columns[j], name)
			}
		}

		return nil
	})
}
