// SPDX-License-Identifier: MIT
// Package explain: the filter pipeline over the session's ranked artifacts.
//
// Filter builds the visibility mask in the documented, order-sensitive way:
// every supplied criterion produces an independent mask, the masks are
// AND-combined, and the rank cutoff runs last over the combined result —
// so a cutoff of N keeps the first N still-visible features, never the
// first N ranked features.

package explain

import (
	"fmt"

	"github.com/belkmouf/shapash/core"
	"github.com/belkmouf/shapash/mask"
)

// SignFilter is the tri-state sign criterion.
type SignFilter int

const (
	// SignAny imposes no sign constraint (default).
	SignAny SignFilter = iota

	// SignPositive keeps strictly positive contributions.
	SignPositive

	// SignNegative keeps strictly negative contributions.
	SignNegative
)

// FilterParams records the parameters of the session's current mask, so a
// later Summary call without arguments can reuse it.
type FilterParams struct {
	Hide       []string
	Threshold  float64
	Sign       SignFilter
	MaxContrib int
	UseGroups  bool
}

// FilterOption configures one Filter (or Summary) call.
type FilterOption func(*filterConfig)

type filterConfig struct {
	hide       []string
	threshold  float64
	hasThresh  bool
	sign       SignFilter
	maxContrib int
	hasCutoff  bool
	noGroups   bool
	wantProba  bool
}

// WithHidden hides the named features (display names, technical names or
// group names) at every rank position.
func WithHidden(features ...string) FilterOption {
	return func(c *filterConfig) { c.hide = append(c.hide, features...) }
}

// WithThreshold hides every contribution whose magnitude is below t.
// Negative t is rejected by the mask layer (mask.ErrNegativeThreshold).
func WithThreshold(t float64) FilterOption {
	return func(c *filterConfig) {
		c.threshold = t
		c.hasThresh = true
	}
}

// WithPositiveOnly keeps only strictly positive contributions.
func WithPositiveOnly() FilterOption {
	return func(c *filterConfig) { c.sign = SignPositive }
}

// WithNegativeOnly keeps only strictly negative contributions.
func WithNegativeOnly() FilterOption {
	return func(c *filterConfig) { c.sign = SignNegative }
}

// WithMaxContrib keeps at most n surviving features per instance, counted
// over the combined mask. Non-positive n is rejected by the mask layer
// (mask.ErrBadCutoff).
func WithMaxContrib(n int) FilterOption {
	return func(c *filterConfig) {
		c.maxContrib = n
		c.hasCutoff = true
	}
}

// WithoutGroups filters over raw features even when the session declared
// groups. By default a session with groups filters the grouped artifacts.
func WithoutGroups() FilterOption {
	return func(c *filterConfig) { c.noGroups = true }
}

// WithProba asks Summary to join the predicted class's probability.
// Ignored by Filter.
func WithProba() FilterOption {
	return func(c *filterConfig) { c.wantProba = true }
}

// Filter computes and caches the session's visibility mask from the
// supplied criteria. Criteria not supplied impose no constraint. The mask
// is per class (length 1 for regression) and replaces any previous one —
// last writer wins.
func (e *Explainer) Filter(opts ...FilterOption) error {
	var cfg filterConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	useGroups := e.groupSpec != nil && !cfg.noGroups
	data := e.data
	if useGroups {
		data = e.dataGrouped
	}

	var hiddenIdx []int
	if len(cfg.hide) > 0 {
		var err error
		if hiddenIdx, err = e.resolveFeatures(cfg.hide, useGroups); err != nil {
			return err
		}
	}

	masks := make([]*mask.Mask, len(data))
	for class, ranked := range data {
		m, err := buildMask(ranked.ContribSorted, ranked.VarDict, hiddenIdx, cfg)
		if err != nil {
			return fmt.Errorf("explain: class %d: %w", class, err)
		}
		masks[class] = m
	}

	e.masks = masks
	e.hasMask = true
	e.maskGroups = useGroups
	e.params = FilterParams{
		Hide:       append([]string(nil), cfg.hide...),
		Threshold:  cfg.threshold,
		Sign:       cfg.sign,
		MaxContrib: cfg.maxContrib,
		UseGroups:  useGroups,
	}

	return nil
}

// buildMask assembles one class's mask: criteria first, AND-combined, then
// the cutoff over the combined mask.
func buildMask(contribSorted *core.Frame, varDict [][]int, hiddenIdx []int, cfg filterConfig) (*mask.Mask, error) {
	base, err := mask.Init(contribSorted.Rows(), contribSorted.Cols())
	if err != nil {
		return nil, err
	}
	parts := []*mask.Mask{base}

	if len(hiddenIdx) > 0 {
		m, herr := mask.HideFeatures(varDict, hiddenIdx)
		if herr != nil {
			return nil, herr
		}
		parts = append(parts, m)
	}
	if cfg.hasThresh {
		m, terr := mask.Threshold(contribSorted, cfg.threshold)
		if terr != nil {
			return nil, terr
		}
		parts = append(parts, m)
	}
	if cfg.sign != SignAny {
		m, serr := mask.Sign(contribSorted, cfg.sign == SignPositive)
		if serr != nil {
			return nil, serr
		}
		parts = append(parts, m)
	}

	combined, err := mask.Combine(parts...)
	if err != nil {
		return nil, err
	}
	if cfg.hasCutoff {
		if combined, err = mask.Cutoff(combined, cfg.maxContrib); err != nil {
			return nil, err
		}
	}

	return combined, nil
}

// CurrentMask returns the per-class masks of the last Filter call.
func (e *Explainer) CurrentMask() ([]*mask.Mask, error) {
	if !e.hasMask {
		return nil, ErrNoFilter
	}

	return append([]*mask.Mask(nil), e.masks...), nil
}

// Params returns the parameters behind the current mask.
func (e *Explainer) Params() (FilterParams, error) {
	if !e.hasMask {
		return FilterParams{}, ErrNoFilter
	}

	return e.params, nil
}

// MaskedContributions materializes the filtered ranked contributions per
// class: visible cells keep their value, hidden cells are NaN.
func (e *Explainer) MaskedContributions() ([]*core.Frame, error) {
	if !e.hasMask {
		return nil, ErrNoFilter
	}
	data := e.data
	if e.maskGroups {
		data = e.dataGrouped
	}

	out := make([]*core.Frame, len(data))
	for class, ranked := range data {
		f, err := mask.Apply(ranked.ContribSorted, e.masks[class])
		if err != nil {
			return nil, fmt.Errorf("explain: class %d: %w", class, err)
		}
		out[class] = f
	}

	return out, nil
}

// HiddenSums returns, per class and per instance, the summed contribution
// of everything the current mask hides.
func (e *Explainer) HiddenSums() ([][]float64, error) {
	if !e.hasMask {
		return nil, ErrNoFilter
	}
	data := e.data
	if e.maskGroups {
		data = e.dataGrouped
	}

	out := make([][]float64, len(data))
	for class, ranked := range data {
		sums, err := mask.HiddenSums(ranked.ContribSorted, e.masks[class])
		if err != nil {
			return nil, fmt.Errorf("explain: class %d: %w", class, err)
		}
		out[class] = sums
	}

	return out, nil
}
