// Package catalog holds the static, read-only reference data of the
// dashboard: selectable entities, equipment records and the context tables
// shown next to the generated indicators.
//
// Data is decoded once from an embedded YAML document and never mutated;
// every accessor returns a copy.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v2"
)

//go:embed catalog.yaml
var catalogYAML []byte

// ErrNotFound is returned by lookups that miss.
var ErrNotFound = errors.New("catalog entry not found")

// Kind distinguishes military branches from strategic programs.
type Kind string

const (
	KindBranch  Kind = "branch"
	KindProgram Kind = "program"
)

// Entity is a selectable branch or program.
type Entity struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

// Missile is a descriptive missile-system record.
type Missile struct {
	Name     string `yaml:"name" json:"name"`
	Type     string `yaml:"type" json:"type"`
	RangeKm  int    `yaml:"range_km" json:"range_km"`
	Warheads string `yaml:"warheads" json:"warheads,omitempty"`
	Speed    string `yaml:"speed" json:"speed,omitempty"`
	Status   string `yaml:"status" json:"status"`
}

// NavalAsset is a descriptive ship or submarine record.
type NavalAsset struct {
	Name          string `yaml:"name" json:"name"`
	Type          string `yaml:"type" json:"type"`
	DisplacementT int    `yaml:"displacement_t" json:"displacement_t"`
	Aircraft      int    `yaml:"aircraft" json:"aircraft,omitempty"`
	Armament      string `yaml:"armament" json:"armament,omitempty"`
	Status        string `yaml:"status" json:"status"`
}

type document struct {
	Branches      []string          `yaml:"branches"`
	Programs      []string          `yaml:"programs"`
	Missiles      []Missile         `yaml:"missiles"`
	NavalAssets   []NavalAsset      `yaml:"naval_assets"`
	Tensions      []Tension         `yaml:"tensions"`
	WeaponSystems []WeaponSystem    `yaml:"weapon_systems"`
	Modernization []DomainProgress  `yaml:"modernization"`
	Threats       []Threat          `yaml:"threats"`
	Responses     []ResponseProfile `yaml:"responses"`
}

var (
	loadOnce sync.Once
	loaded   *document
	loadErr  error
)

func data() *document {
	loadOnce.Do(func() {
		var doc document
		if err := yaml.Unmarshal(catalogYAML, &doc); err != nil {
			loadErr = fmt.Errorf("decode embedded catalog: %w", err)
			return
		}
		loaded = &doc
	})
	if loadErr != nil {
		// The document is compiled in; a decode failure is a build defect.
		panic(loadErr)
	}
	return loaded
}

func entities(names []string, kind Kind) []Entity {
	out := make([]Entity, len(names))
	for i, n := range names {
		out[i] = Entity{Name: n, Kind: kind}
	}
	return out
}

// ListBranches returns the military branches in display order.
func ListBranches() []Entity {
	return entities(data().Branches, KindBranch)
}

// ListPrograms returns the strategic programs in display order.
func ListPrograms() []Entity {
	return entities(data().Programs, KindProgram)
}

// ListMissiles returns every missile record in catalog order.
func ListMissiles() []Missile {
	return append([]Missile(nil), data().Missiles...)
}

// ListNavalAssets returns every naval record in catalog order.
func ListNavalAssets() []NavalAsset {
	return append([]NavalAsset(nil), data().NavalAssets...)
}

// LookupMissile finds a missile system by exact name.
func LookupMissile(name string) (Missile, error) {
	for _, m := range data().Missiles {
		if m.Name == name {
			return m, nil
		}
	}
	return Missile{}, fmt.Errorf("missile %q: %w", name, ErrNotFound)
}

// LookupNavalAsset finds a naval asset by exact name.
func LookupNavalAsset(name string) (NavalAsset, error) {
	for _, a := range data().NavalAssets {
		if a.Name == name {
			return a, nil
		}
	}
	return NavalAsset{}, fmt.Errorf("naval asset %q: %w", name, ErrNotFound)
}

// Lookup finds an entity by name across branches and programs.
func Lookup(name string) (Entity, error) {
	for _, e := range ListBranches() {
		if e.Name == name {
			return e, nil
		}
	}
	for _, e := range ListPrograms() {
		if e.Name == name {
			return e, nil
		}
	}
	return Entity{}, fmt.Errorf("entity %q: %w", name, ErrNotFound)
}
