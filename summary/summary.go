// SPDX-License-Identifier: MIT
// Package summary: the explanation table builder.

package summary

import (
	"fmt"
	"math"

	"github.com/belkmouf/shapash/core"
	"github.com/belkmouf/shapash/mask"
	"github.com/belkmouf/shapash/ranking"
)

// Entry is one surviving (feature, value, contribution) triple at one rank
// position. The zero Entry — empty Feature, NaN numbers — is the absent
// placeholder used to pad rows up to the table width.
type Entry struct {
	Feature      string
	Value        float64
	Contribution float64
}

// Absent returns the padding placeholder.
func Absent() Entry {
	return Entry{Feature: "", Value: math.NaN(), Contribution: math.NaN()}
}

// IsAbsent reports whether the entry is padding rather than a feature.
func (e Entry) IsAbsent() bool { return e.Feature == "" }

// Row is one instance's explanation: its identifier, the joined prediction
// fields, and the rank-ordered surviving entries padded to the table width.
type Row struct {
	ID   string
	Pred float64
	// PredName is the display name of the predicted class label, resolved by
	// the session layer. Empty for regression.
	PredName string
	Proba    float64
	Entries  []Entry
}

// Table is the rectangular explanation summary: one Row per instance, every
// Entries slice exactly Width long.
type Table struct {
	Width    int
	HasPreds bool
	HasProba bool
	Rows     []Row
}

// Columns returns the flat column headers of the rendered table:
// pred [, proba], then feature_i / value_i / contribution_i per position.
func (t *Table) Columns() []string {
	cols := make([]string, 0, 2+3*t.Width)
	if t.HasPreds {
		cols = append(cols, "pred")
	}
	if t.HasProba {
		cols = append(cols, "proba")
	}
	for i := 1; i <= t.Width; i++ {
		cols = append(cols,
			fmt.Sprintf("feature_%d", i),
			fmt.Sprintf("value_%d", i),
			fmt.Sprintf("contribution_%d", i))
	}

	return cols
}

// Summarize joins the ranked artifacts with the visibility mask and the
// naming maps into the explanation table (predictions not yet joined).
//
// columns is the original feature-name list var_dict indices point into;
// names maps technical feature names to display names, missing entries
// falling back to the technical name itself.
//
// Preconditions:
//  1. ranked and m non-nil (core.ErrNilFrame / mask.ErrNilMask).
//  2. m must share the ranked shape (mask.ErrShapeMismatch).
//
// Complexity: O(rows × cols).
func Summarize(ranked *ranking.Ranked, m *mask.Mask, columns []string, names map[string]string) (*Table, error) {
	if ranked == nil || ranked.ContribSorted == nil {
		return nil, core.ErrNilFrame
	}
	if m == nil {
		return nil, mask.ErrNilMask
	}
	rows, cols := ranked.Rows(), ranked.Cols()
	if m.Rows() != rows || m.Cols() != cols {
		return nil, fmt.Errorf("%w: ranked %d×%d vs mask %d×%d",
			mask.ErrShapeMismatch, rows, cols, m.Rows(), m.Cols())
	}

	// First pass: the table is as wide as the widest surviving row.
	width := 0
	for i := 0; i < rows; i++ {
		if n := m.CountRow(i); n > width {
			width = n
		}
	}

	out := &Table{Width: width, Rows: make([]Row, rows)}
	for i := 0; i < rows; i++ {
		entries := make([]Entry, 0, width)
		for j := 0; j < cols && len(entries) < width; j++ {
			if !m.At(i, j) {
				continue
			}
			feature := columns[ranked.VarDict[i][j]]
			if display, ok := names[feature]; ok && display != "" {
				feature = display
			}
			entries = append(entries, Entry{
				Feature:      feature,
				Value:        ranked.XSorted.At(i, j),
				Contribution: ranked.ContribSorted.At(i, j),
			})
		}
		for len(entries) < width {
			entries = append(entries, Absent())
		}
		out.Rows[i] = Row{
			ID:      ranked.ContribSorted.RowID(i),
			Pred:    math.NaN(),
			Proba:   math.NaN(),
			Entries: entries,
		}
	}

	return out, nil
}
