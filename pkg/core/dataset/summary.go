package dataset

import (
	"strategic_posture/pkg/core/projection"
)

// Summary holds the headline figures of the dashboard's first tab.
// Growth figures compare the last year against 2000.
type Summary struct {
	Year int `json:"year"`

	Budget   float64 `json:"budget_bn"`
	GDPShare float64 `json:"military_gdp_pct"`

	Personnel       float64 `json:"personnel_k"`
	PersonnelGrowth float64 `json:"personnel_growth_pct"`

	Deterrence float64 `json:"deterrence"`
	Warheads   int     `json:"warheads"`

	NavalPower  float64 `json:"naval_power"`
	CombatShips int     `json:"combat_ships"`

	MobilizationDays      float64 `json:"mobilization_days"`
	MobilizationReduction float64 `json:"mobilization_reduction_pct"`

	AirDefense       float64 `json:"air_defense_coverage"`
	AirDefenseGrowth float64 `json:"air_defense_growth_pct"`

	// Present only when the nuclear group is attached.
	MaxMissileRange       *float64 `json:"max_missile_range_km,omitempty"`
	MaxMissileRangeGrowth *float64 `json:"max_missile_range_growth_pct,omitempty"`

	Readiness     float64 `json:"readiness"`
	ReadinessGain float64 `json:"readiness_gain"`
}

// navalPowerDivisor scales the projection range (nm) to a 0-100 figure.
const navalPowerDivisor = 20

// Summarize derives the headline figures from a dataset. Columns of
// unattached groups contribute zero.
func Summarize(d *Dataset) Summary {
	last := projection.LastYear
	first := projection.FirstYear
	at := func(key string, year int) float64 {
		v, _ := d.Value(key, year)
		return v
	}

	s := Summary{
		Year:             last,
		Budget:           at(projection.Budget.Key, last),
		GDPShare:         at(projection.MilitaryGDPShare.Key, last),
		Personnel:        at(projection.Personnel.Key, last),
		Deterrence:       at(projection.Deterrence.Key, last),
		Warheads:         int(at(projection.WarheadStockpile.Key, last)),
		NavalPower:       at(projection.ProjectionRange.Key, last) / navalPowerDivisor,
		CombatShips:      int(at(projection.CombatShips.Key, last)),
		MobilizationDays: at(projection.Mobilization.Key, last),
		AirDefense:       at(projection.AirDefenseCoverage.Key, last),
		Readiness:        at(projection.Readiness.Key, last),
	}

	s.PersonnelGrowth = growthPct(at(projection.Personnel.Key, first), s.Personnel)
	s.MobilizationReduction = -growthPct(at(projection.Mobilization.Key, first), s.MobilizationDays)
	s.AirDefenseGrowth = growthPct(at(projection.AirDefenseCoverage.Key, first), s.AirDefense)
	s.ReadinessGain = s.Readiness - at(projection.Readiness.Key, first)

	if d.Has(projection.MaxMissileRange.Key) {
		latest := at(projection.MaxMissileRange.Key, last)
		growth := growthPct(at(projection.MaxMissileRange.Key, first), latest)
		s.MaxMissileRange = &latest
		s.MaxMissileRangeGrowth = &growth
	}
	return s
}

func growthPct(from, to float64) float64 {
	if from == 0 {
		return 0
	}
	return (to - from) / from * 100
}
