// Package shapash is your in-memory toolkit for turning raw per-instance,
// per-feature attribution scores into ranked, filterable, human-readable
// explanation summaries — uniformly for regression and classification.
//
// 🚀 What is shapash?
//
//	A synchronous, pure-function library that brings together:
//		• Core primitives: labeled contribution tables, one per output class
//		• Ranking: per-row ordering of features by contribution magnitude
//		• Mask algebra: composable visibility filters (hide, threshold, sign, cutoff)
//		• Feature groups: aggregate declared feature sets into synthetic columns
//		• Neighbor diagnostics: stability & compacity metrics via k-nearest neighbors
//		• Summary: the final (feature, value, contribution) explanation table
//
// ✨ Why choose shapash?
//
//   - One API for both cases – regression and multi-class share every operation
//   - Rock-solid guarantees – sentinel errors, deterministic ordering, no hidden state
//   - Lean numeric core – gonum matrices, no cgo
//   - Composable – every pipeline stage is a pure function over in-memory tables
//
// Under the hood, everything is organized under seven subpackages:
//
//	core/      — labeled Frame tables & the regression/classification variant
//	ranking/   — per-row magnitude ranking + feature importance
//	mask/      — boolean visibility algebra over ranked contributions
//	groups/    — feature-group aggregation & drill-down
//	neighbors/ — nearest-neighbor stability & compacity diagnostics
//	summary/   — final tabular explanation builder
//	explain/   — the session: compile once, filter & summarize on demand
//
// Quick sketch:
//
//	contribs ──► rank ──► (groups?) ──► mask ──► summary
//	       └──────────► neighbors (stability / compacity)
//
// Attribution computation itself (SHAP & friends), encoders, dashboards and
// persistence are deliberately out of scope: the engine consumes contribution
// matrices that an external backend has already produced.
//
//	go get github.com/belkmouf/shapash/explain
package shapash
