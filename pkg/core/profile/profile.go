// Package profile resolves a selected branch or program into the
// Configuration that drives indicator generation.
//
// Resolution never fails: names outside the mapping degrade to a generic
// default profile.
package profile

import (
	"sort"
)

// Fixed defaults applied to any numeric base a definition leaves unset.
const (
	DefaultBudgetBase    = 60.0
	DefaultPersonnelBase = 1300.0
	DefaultExercisesBase = 80.0

	DefaultCategory = "branch"
)

// Definition is the declared profile of one entity. Numeric bases are
// optional; nil means "use the fixed default".
type Definition struct {
	Name                string   `json:"name"`
	Category            string   `json:"category,omitempty"`
	BudgetBase          *float64 `json:"budget_base,omitempty"`
	PersonnelBase       *float64 `json:"personnel_base,omitempty"`
	ExercisesBase       *float64 `json:"exercises_base,omitempty"`
	PriorityTags        []Tag    `json:"priority_tags"`
	Doctrines           []string `json:"doctrines,omitempty"`
	SpecialCapabilities []string `json:"special_capabilities,omitempty"`
	DeployedSystems     []string `json:"deployed_systems,omitempty"`
	Command             string   `json:"command,omitempty"`
}

// Configuration is a fully resolved profile: every base is defined.
type Configuration struct {
	Category            string   `json:"category"`
	BudgetBase          float64  `json:"budget_base"`
	PersonnelBase       float64  `json:"personnel_base"`
	ExercisesBase       float64  `json:"exercises_base"`
	PriorityTags        TagSet   `json:"priority_tags"`
	Doctrines           []string `json:"doctrines"`
	SpecialCapabilities []string `json:"special_capabilities"`
	DeployedSystems     []string `json:"deployed_systems"`
	Command             string   `json:"command,omitempty"`
}

// HasTag reports whether the configuration carries the tag.
func (c Configuration) HasTag(t Tag) bool {
	return c.PriorityTags.Has(t)
}

// Default returns the generic profile used for unrecognized selections.
func Default() Configuration {
	return Configuration{
		Category:      DefaultCategory,
		BudgetBase:    DefaultBudgetBase,
		PersonnelBase: DefaultPersonnelBase,
		ExercisesBase: DefaultExercisesBase,
		PriorityTags:  NewTagSet(TagGenericDefense),
	}
}

// Configuration resolves the definition, filling unset fields with defaults.
// Slices are copied so callers cannot mutate the definition through it.
func (d Definition) Configuration() Configuration {
	cfg := Configuration{
		Category:            d.Category,
		BudgetBase:          orDefault(d.BudgetBase, DefaultBudgetBase),
		PersonnelBase:       orDefault(d.PersonnelBase, DefaultPersonnelBase),
		ExercisesBase:       orDefault(d.ExercisesBase, DefaultExercisesBase),
		PriorityTags:        NewTagSet(d.PriorityTags...),
		Doctrines:           cloneStrings(d.Doctrines),
		SpecialCapabilities: cloneStrings(d.SpecialCapabilities),
		DeployedSystems:     cloneStrings(d.DeployedSystems),
		Command:             d.Command,
	}
	if cfg.Category == "" {
		cfg.Category = DefaultCategory
	}
	return cfg
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// Float is a helper for Definition literals.
func Float(v float64) *float64 { return &v }

// =============================================================================
// RESOLVER
// =============================================================================

// Resolver maps selection names to configurations.
// It is immutable after construction and safe for concurrent use.
type Resolver struct {
	definitions map[string]Definition
}

// Option customizes a Resolver.
type Option func(*Resolver)

// WithDefinitions layers extra definitions over the built-in mapping.
// A definition whose name matches a built-in one replaces it.
func WithDefinitions(defs ...Definition) Option {
	return func(r *Resolver) {
		for _, d := range defs {
			r.definitions[d.Name] = d
		}
	}
}

// NewResolver creates a resolver seeded with the built-in definitions.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{definitions: make(map[string]Definition, len(builtin))}
	for _, d := range builtin {
		r.definitions[d.Name] = d
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the configuration for selection, or Default() when the
// name is not recognized. Absence of a match is not an error.
func (r *Resolver) Resolve(selection string) Configuration {
	d, ok := r.definitions[selection]
	if !ok {
		return Default()
	}
	return d.Configuration()
}

// Known reports whether selection has an explicit definition.
func (r *Resolver) Known(selection string) bool {
	_, ok := r.definitions[selection]
	return ok
}

// Names lists every known selection in sorted order.
func (r *Resolver) Names() []string {
	names := make([]string, 0, len(r.definitions))
	for name := range r.definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultResolver = NewResolver()

// Resolve uses the built-in mapping only.
func Resolve(selection string) Configuration {
	return defaultResolver.Resolve(selection)
}
