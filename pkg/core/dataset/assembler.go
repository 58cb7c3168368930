// Package dataset assembles the indicator table for a selection: the fixed
// base columns plus whichever optional groups the resolved configuration's
// priority tags attach.
package dataset

import (
	"context"

	"golang.org/x/sync/errgroup"

	"strategic_posture/pkg/core/profile"
	"strategic_posture/pkg/core/projection"
)

// Assembler builds datasets. It holds no mutable state and is safe for
// concurrent use.
type Assembler struct {
	resolver *profile.Resolver
}

// NewAssembler creates an assembler over the given resolver.
// A nil resolver uses the built-in profiles.
func NewAssembler(resolver *profile.Resolver) *Assembler {
	if resolver == nil {
		resolver = profile.NewResolver()
	}
	return &Assembler{resolver: resolver}
}

// Resolver exposes the resolver the assembler was built with.
func (a *Assembler) Resolver() *profile.Resolver {
	return a.resolver
}

type plannedColumn struct {
	indicator projection.Indicator
	group     string
}

// plan lists the columns for cfg in output order.
func plan(cfg profile.Configuration) ([]plannedColumn, []string) {
	cols := make([]plannedColumn, 0, len(BaseIndicators))
	for _, ind := range BaseIndicators {
		cols = append(cols, plannedColumn{indicator: ind, group: GroupBase})
	}
	groups := make([]string, 0, len(Groups))
	for _, g := range Groups {
		if !g.Attaches(cfg) {
			continue
		}
		groups = append(groups, g.Name)
		for _, ind := range g.Indicators {
			cols = append(cols, plannedColumn{indicator: ind, group: g.Name})
		}
	}
	return cols, groups
}

func inputsFor(cfg profile.Configuration) projection.Inputs {
	return projection.Inputs{
		BudgetBase:    cfg.BudgetBase,
		PersonnelBase: cfg.PersonnelBase,
		ExercisesBase: cfg.ExercisesBase,
	}
}

func column(p plannedColumn, in projection.Inputs) Column {
	s := p.indicator.Series(in)
	return Column{
		Key:    p.indicator.Key,
		Label:  p.indicator.Label,
		Unit:   p.indicator.Unit,
		Count:  p.indicator.Count,
		Group:  p.group,
		Values: s.Values,
	}
}

// Build resolves selection and generates its dataset sequentially.
// It never fails: unknown selections use the generic profile.
func (a *Assembler) Build(selection string) (*Dataset, profile.Configuration) {
	cfg := a.resolver.Resolve(selection)
	planned, groups := plan(cfg)
	in := inputsFor(cfg)

	cols := make([]Column, len(planned))
	for i, p := range planned {
		cols[i] = column(p, in)
	}
	return newDataset(selection, cols, groups), cfg
}

// BuildContext is Build with one goroutine per column. The result is
// identical to Build; the only possible error is ctx being done.
func (a *Assembler) BuildContext(ctx context.Context, selection string) (*Dataset, profile.Configuration, error) {
	cfg := a.resolver.Resolve(selection)
	planned, groups := plan(cfg)
	in := inputsFor(cfg)

	cols := make([]Column, len(planned))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range planned {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			cols[i] = column(p, in)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, profile.Configuration{}, err
	}
	return newDataset(selection, cols, groups), cfg, nil
}

func newDataset(selection string, cols []Column, groups []string) *Dataset {
	return &Dataset{
		Selection: selection,
		Years:     projection.Years(),
		Columns:   cols,
		Groups:    groups,
	}
}

var defaultAssembler = NewAssembler(nil)

// Build uses the built-in profiles.
func Build(selection string) (*Dataset, profile.Configuration) {
	return defaultAssembler.Build(selection)
}
