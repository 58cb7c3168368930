package validate

import (
	"errors"
	"fmt"
	"math"

	"strategic_posture/pkg/core/dataset"
	"strategic_posture/pkg/core/profile"
	"strategic_posture/pkg/core/projection"
)

// ErrInvalidDataset is returned by Validate when any integrity check fails.
var ErrInvalidDataset = errors.New("invalid dataset")

// Integrity rules
const (
	RuleYears   = "years"
	RuleLength  = "length"
	RuleUnknown = "unknown_column"
	RuleGroup   = "group_gating"
	RuleCount   = "whole_count"
	RuleBounds  = "bounds"
)

// Violation is one failed integrity check. Year is 0 for table-level rules.
type Violation struct {
	Rule   string `json:"rule"`
	Key    string `json:"key,omitempty"`
	Year   int    `json:"year,omitempty"`
	Detail string `json:"detail"`
}

func (v Violation) String() string {
	switch {
	case v.Key != "" && v.Year != 0:
		return fmt.Sprintf("%s %s@%d: %s", v.Rule, v.Key, v.Year, v.Detail)
	case v.Key != "":
		return fmt.Sprintf("%s %s: %s", v.Rule, v.Key, v.Detail)
	}
	return fmt.Sprintf("%s: %s", v.Rule, v.Detail)
}

type knownColumn struct {
	indicator projection.Indicator
	group     dataset.Group
	optional  bool
}

func knownColumns() map[string]knownColumn {
	known := make(map[string]knownColumn)
	for _, ind := range dataset.BaseIndicators {
		known[ind.Key] = knownColumn{indicator: ind}
	}
	for _, g := range dataset.Groups {
		for _, ind := range g.Indicators {
			known[ind.Key] = knownColumn{indicator: ind, group: g, optional: true}
		}
	}
	return known
}

// Check verifies a dataset against the configuration it was built from:
// contiguous years, aligned columns, tag-gated groups, whole counts and
// formula bounds.
func Check(ds *dataset.Dataset, cfg profile.Configuration) []Violation {
	var out []Violation

	if len(ds.Years) != projection.YearCount {
		out = append(out, Violation{Rule: RuleYears, Detail: fmt.Sprintf("expected %d years, got %d", projection.YearCount, len(ds.Years))})
	}
	for i, y := range ds.Years {
		if y != projection.FirstYear+i {
			out = append(out, Violation{Rule: RuleYears, Year: y, Detail: fmt.Sprintf("expected %d at position %d", projection.FirstYear+i, i)})
			break
		}
	}

	for _, g := range dataset.Groups {
		if ds.HasGroup(g.Name) != g.Attaches(cfg) {
			out = append(out, Violation{Rule: RuleGroup, Key: g.Name, Detail: fmt.Sprintf("attached=%t but tag %q present=%t", ds.HasGroup(g.Name), g.Tag, cfg.HasTag(g.Tag))})
		}
	}

	known := knownColumns()
	in := projection.Inputs{
		BudgetBase:    cfg.BudgetBase,
		PersonnelBase: cfg.PersonnelBase,
		ExercisesBase: cfg.ExercisesBase,
	}

	for _, c := range ds.Columns {
		if len(c.Values) != len(ds.Years) {
			out = append(out, Violation{Rule: RuleLength, Key: c.Key, Detail: fmt.Sprintf("%d values for %d years", len(c.Values), len(ds.Years))})
			continue
		}
		k, ok := known[c.Key]
		if !ok {
			out = append(out, Violation{Rule: RuleUnknown, Key: c.Key, Detail: "not a known indicator"})
			continue
		}
		if k.optional && !k.group.Attaches(cfg) {
			out = append(out, Violation{Rule: RuleGroup, Key: c.Key, Detail: fmt.Sprintf("column of unattached group %q", k.group.Name)})
		}

		bounds, bounded := k.indicator.Formula(in).(projection.Bounds)
		for i, v := range c.Values {
			year := ds.Years[i]
			if k.indicator.Count && v != math.Trunc(v) {
				out = append(out, Violation{Rule: RuleCount, Key: c.Key, Year: year, Detail: fmt.Sprintf("%v is not whole", v)})
			}
			if bounded && (v < bounds.Lower() || v > bounds.Upper()) {
				out = append(out, Violation{Rule: RuleBounds, Key: c.Key, Year: year, Detail: fmt.Sprintf("%v outside [%v, %v]", v, bounds.Lower(), bounds.Upper())})
			}
		}
	}
	return out
}

// Validate wraps Check into an error.
func Validate(ds *dataset.Dataset, cfg profile.Configuration) error {
	violations := Check(ds, cfg)
	if len(violations) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d violation(s), first: %s", ErrInvalidDataset, len(violations), violations[0])
}
