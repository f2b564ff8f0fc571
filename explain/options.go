// SPDX-License-Identifier: MIT
// Package explain: functional options for Compile.
//
// Options resolve into an immutable session configuration; validation that
// depends on the compiled inputs (lengths, shapes, label counts) happens in
// Compile so every failure carries full context.

package explain

import (
	"github.com/belkmouf/shapash/core"
	"github.com/belkmouf/shapash/groups"
)

// Option configures Compile.
type Option func(*config)

type config struct {
	preds        []float64
	hasPreds     bool
	probas       *core.Frame
	classLabels  []int
	hasLabels    bool
	featureNames map[string]string
	labelNames   map[int]string
	groups       []groups.Group
}

// WithPredictions supplies the user-facing prediction value per instance,
// in row-index order. For classification these are the predicted class
// labels; Summary joins against them.
func WithPredictions(preds []float64) Option {
	return func(c *config) {
		c.preds = append([]float64(nil), preds...)
		c.hasPreds = true
	}
}

// WithProbabilities supplies the model-estimated probability table,
// instances × classes, sharing the session row index. Classification only.
func WithProbabilities(p *core.Frame) Option {
	return func(c *config) { c.probas = p }
}

// WithClassLabels declares the ordered class labels of a classification
// session — the values predictions are expressed in. Defaults to 0..n−1.
func WithClassLabels(labels []int) Option {
	return func(c *config) {
		c.classLabels = append([]int(nil), labels...)
		c.hasLabels = true
	}
}

// WithFeatureNames maps technical feature names to display names.
// Features missing from the map display under their technical name.
func WithFeatureNames(names map[string]string) Option {
	return func(c *config) {
		c.featureNames = make(map[string]string, len(names))
		for k, v := range names {
			c.featureNames[k] = v
		}
	}
}

// WithLabelNames maps class labels to display names (classification).
// Labels missing from the map display as their numeric value.
func WithLabelNames(names map[int]string) Option {
	return func(c *config) {
		c.labelNames = make(map[int]string, len(names))
		for k, v := range names {
			c.labelNames[k] = v
		}
	}
}

// WithGroups declares feature groups for the session. Declaration order is
// the synthetic column order; the declaration is validated in Compile and
// immutable afterwards.
func WithGroups(gs ...groups.Group) Option {
	return func(c *config) { c.groups = append([]groups.Group(nil), gs...) }
}
