// SPDX-License-Identifier: MIT
// Package groups: declaration, validation and aggregation of feature groups.

package groups

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/belkmouf/shapash/core"
)

var (
	// ErrNoGroups indicates an empty group declaration.
	ErrNoGroups = errors.New("groups: no groups declared")

	// ErrEmptyGroup indicates a group with no member features.
	ErrEmptyGroup = errors.New("groups: group has no members")

	// ErrDuplicateGroup indicates two groups sharing one name.
	ErrDuplicateGroup = errors.New("groups: duplicate group name")

	// ErrOverlappingGroups indicates a feature referenced by two groups.
	ErrOverlappingGroups = errors.New("groups: feature referenced by two groups")

	// ErrUnknownFeature indicates a member that is not a known column.
	ErrUnknownFeature = errors.New("groups: unknown feature")

	// ErrNameCollision indicates a group named after a raw feature.
	ErrNameCollision = errors.New("groups: group name collides with a feature name")
)

// Group is a named, ordered set of member feature names.
// Declaration order is meaningful: it fixes the synthetic column order.
type Group struct {
	Name    string
	Members []string
}

// Validate checks a group declaration against the session's column names.
// All configuration errors surface here, at declaration time, never later
// in the aggregation hot path.
func Validate(gs []Group, columns []string) error {
	if len(gs) == 0 {
		return ErrNoGroups
	}

	known := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		known[c] = struct{}{}
	}

	names := make(map[string]struct{}, len(gs))
	owner := make(map[string]string) // member feature → owning group
	for _, g := range gs {
		if _, dup := names[g.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateGroup, g.Name)
		}
		names[g.Name] = struct{}{}
		if _, clash := known[g.Name]; clash {
			return fmt.Errorf("%w: %q", ErrNameCollision, g.Name)
		}
		if len(g.Members) == 0 {
			return fmt.Errorf("%w: %q", ErrEmptyGroup, g.Name)
		}
		for _, member := range g.Members {
			if _, ok := known[member]; !ok {
				return fmt.Errorf("%w: %q in group %q", ErrUnknownFeature, member, g.Name)
			}
			if other, taken := owner[member]; taken {
				return fmt.Errorf("%w: %q in %q and %q",
					ErrOverlappingGroups, member, other, g.Name)
			}
			owner[member] = g.Name
		}
	}

	return nil
}

// Columns returns the column order of the grouped table: group names in
// declaration order, then every ungrouped feature in original order.
func Columns(columns []string, gs []Group) []string {
	grouped := memberSet(gs)
	out := make([]string, 0, len(gs)+len(columns))
	for _, g := range gs {
		out = append(out, g.Name)
	}
	for _, c := range columns {
		if _, hit := grouped[c]; !hit {
			out = append(out, c)
		}
	}

	return out
}

// Contributions builds the grouped contribution table: one synthetic column
// per group equal to the row-wise sum of member contributions, then every
// ungrouped column unchanged. NaN members count as zero in the sum.
//
// The declaration must have passed Validate against contrib's columns;
// Contributions re-validates to stay total.
//
// Complexity: O(rows × cols).
func Contributions(contrib *core.Frame, gs []Group) (*core.Frame, error) {
	return aggregate(contrib, gs, sumRow)
}

// Values builds the grouped feature-value table re-entering ranking
// alongside the grouped contributions. A group's value is the row-wise
// mean of its member values — a single representative number per instance
// (see DESIGN.md for the choice). Ungrouped columns pass through unchanged.
func Values(x *core.Frame, gs []Group) (*core.Frame, error) {
	return aggregate(x, gs, meanRow)
}

// Members resolves a group name to a copy of its member features —
// the drill-down lookup. ok is false for unknown names.
func Members(gs []Group, name string) (members []string, ok bool) {
	for _, g := range gs {
		if g.Name == name {
			return append([]string(nil), g.Members...), true
		}
	}

	return nil, false
}

// aggregate implements the shared group/passthrough column layout with a
// pluggable per-row member reducer.
func aggregate(f *core.Frame, gs []Group, reduce func(vals []float64) float64) (*core.Frame, error) {
	if f == nil {
		return nil, core.ErrNilFrame
	}
	columns := f.Columns()
	if err := Validate(gs, columns); err != nil {
		return nil, err
	}

	// Resolve member positions once, per group.
	memberIdx := make([][]int, len(gs))
	for gi, g := range gs {
		idx := make([]int, len(g.Members))
		for mi, member := range g.Members {
			j, _ := f.ColIndexOf(member) // known: Validate passed
			idx[mi] = j
		}
		memberIdx[gi] = idx
	}
	grouped := memberSet(gs)
	var rest []int
	for j, c := range columns {
		if _, hit := grouped[c]; !hit {
			rest = append(rest, j)
		}
	}

	rows := f.Rows()
	outCols := len(gs) + len(rest)
	data := mat.NewDense(rows, outCols, nil)
	vals := make([]float64, 0, len(columns))
	for i := 0; i < rows; i++ {
		for gi, idx := range memberIdx {
			vals = vals[:0]
			for _, j := range idx {
				vals = append(vals, f.At(i, j))
			}
			data.Set(i, gi, reduce(vals))
		}
		for k, j := range rest {
			data.Set(i, len(gs)+k, f.At(i, j))
		}
	}

	out, err := core.NewFrame(f.Index(), Columns(columns, gs), data)
	if err != nil {
		return nil, fmt.Errorf("groups: %w", err)
	}

	return out, nil
}

func memberSet(gs []Group) map[string]struct{} {
	set := make(map[string]struct{})
	for _, g := range gs {
		for _, member := range g.Members {
			set[member] = struct{}{}
		}
	}

	return set
}

func sumRow(vals []float64) float64 {
	s := 0.0
	for _, v := range vals {
		if !math.IsNaN(v) {
			s += v
		}
	}

	return s
}

func meanRow(vals []float64) float64 {
	s, n := 0.0, 0
	for _, v := range vals {
		if !math.IsNaN(v) {
			s += v
			n++
		}
	}
	if n == 0 {
		return math.NaN()
	}

	return s / float64(n)
}
