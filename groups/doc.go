// SPDX-License-Identifier: MIT

// Package groups collapses declared feature subsets into synthetic group
// columns so a whole group can be ranked, filtered and summarized as one
// aggregate feature.
//
// A Group is a named, ordered set of member feature names. Groups are
// declared once per explanation session and validated eagerly: a feature
// referenced by two groups, an unknown member, an empty member list, a
// repeated group name, or a group name colliding with a raw feature name
// are all rejected at declaration time.
//
// Contributions produces one synthetic column per group — the row-wise sum
// of member contributions — followed by every ungrouped column unchanged.
// Column order is groups in declaration order, then remaining features in
// original order. The grouped table re-enters ranking.Rank exactly like an
// ordinary contribution table. Values builds the matching feature-value
// table, representing each group by the row-wise mean of its member values.
//
// Aggregation never destroys member addressability: Members resolves a
// group name back to its member features for drill-down.
//
// Errors (sentinel):
//
//	– ErrNoGroups           if an empty declaration is validated or applied.
//	– ErrEmptyGroup         if a group has no members.
//	– ErrDuplicateGroup     if two groups share one name.
//	– ErrOverlappingGroups  if a feature belongs to two groups.
//	– ErrUnknownFeature     if a member is not a known column.
//	– ErrNameCollision      if a group name shadows a raw feature name.
package groups
