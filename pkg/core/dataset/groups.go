package dataset

import (
	"strategic_posture/pkg/core/profile"
	"strategic_posture/pkg/core/projection"
)

// GroupBase labels the columns every dataset carries.
const GroupBase = "base"

// BaseIndicators are computed for every selection, in column order.
var BaseIndicators = []projection.Indicator{
	projection.Budget,
	projection.Personnel,
	projection.MilitaryGDPShare,
	projection.Exercises,
	projection.Readiness,
	projection.Deterrence,
	projection.Mobilization,
	projection.MissileTests,
	projection.TechDevelopment,
	projection.Artillery,
	projection.AirDefenseCoverage,
	projection.LogisticsResilience,
	projection.CyberCapabilities,
	projection.WeaponProduction,
}

// Group is an optional block of columns attached when Tag is present.
type Group struct {
	Name       string
	Tag        profile.Tag
	Indicators []projection.Indicator
}

// Attaches reports whether the group belongs in a dataset for cfg.
func (g Group) Attaches(cfg profile.Configuration) bool {
	return cfg.HasTag(g.Tag)
}

var (
	NuclearGroup = Group{
		Name: "nuclear",
		Tag:  profile.TagNuclear,
		Indicators: []projection.Indicator{
			projection.WarheadStockpile,
			projection.MaxMissileRange,
			projection.SubmarineCapability,
			projection.UndergroundTests,
		},
	}
	ModernizationGroup = Group{
		Name: "modernization",
		Tag:  profile.TagModernization,
		Indicators: []projection.Indicator{
			projection.NewSystems,
			projection.ModernizationRate,
			projection.WeaponExports,
		},
	}
	MaritimeGroup = Group{
		Name: "maritime",
		Tag:  profile.TagMaritime,
		Indicators: []projection.Indicator{
			projection.CombatShips,
			projection.ProjectionRange,
			projection.JointExercises,
		},
	}
	CyberGroup = Group{
		Name: "cyber",
		Tag:  profile.TagCyber,
		Indicators: []projection.Indicator{
			projection.CyberAttacks,
			projection.CyberCommand,
			projection.CyberDefense,
		},
	}
)

// Groups is the fixed enumeration of optional groups, in attachment order.
var Groups = []Group{NuclearGroup, ModernizationGroup, MaritimeGroup, CyberGroup}
