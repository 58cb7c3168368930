package projection

import "math"

// Inputs are the configuration-driven parameters a formula may consume.
// Everything else about an indicator is a fixed constant below.
type Inputs struct {
	BudgetBase    float64
	PersonnelBase float64
	ExercisesBase float64
}

// Unit constants for indicator metadata
const (
	UnitBillionUSD = "bn USD"
	UnitThousands  = "k"
	UnitPercent    = "%"
	UnitIndex      = "index"
	UnitCount      = "count"
	UnitDays       = "days"
	UnitKilometers = "km"
	UnitNautical   = "nm"
)

// Indicator binds a column key to its formula family and constants.
type Indicator struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Unit  string `json:"unit"`

	// Count indicators are whole numbers; values are rounded after evaluation.
	Count bool `json:"count"`

	formula func(in Inputs) Formula
}

// Formula instantiates the indicator's formula for the given inputs.
func (ind Indicator) Formula(in Inputs) Formula {
	return ind.formula(in)
}

// Series generates the indicator over the full year range.
func (ind Indicator) Series(in Inputs) Series {
	s := Generate(ind.formula(in))
	s.Name = ind.Key
	if ind.Count {
		for i, v := range s.Values {
			s.Values[i] = math.Round(v)
		}
	}
	return s
}

func fixed(f Formula) func(Inputs) Formula {
	return func(Inputs) Formula { return f }
}

// =============================================================================
// CALENDAR CONSTANTS
// =============================================================================

// BudgetWindows are the geopolitical periods applied to the defense budget.
// The 2020 window is shadowed by the open-ended 2016 window under first-match.
var BudgetWindows = []Window{
	{From: 2002, To: 2004, Factor: 1.1, Label: "border standoff"},
	{From: 2008, To: 2010, Factor: 1.15, Label: "accelerated modernization"},
	{From: 2016, Factor: 1.2, Label: "domestic production drive"},
	{From: 2020, Factor: 1.25, Label: "northern border tensions"},
}

// ReadinessSteps are the cumulative reform step-ups of operational readiness.
var ReadinessSteps = []Step{
	{From: 2008, Add: 8},
	{From: 2014, Add: 7},
	{From: 2020, Add: 5},
}

// =============================================================================
// BASE INDICATORS
// =============================================================================

var (
	Budget = Indicator{
		Key: "budget_bn", Label: "Defense budget", Unit: UnitBillionUSD,
		formula: func(in Inputs) Formula {
			return Windowed{Base: Linear{Base: in.BudgetBase, Rate: 0.065}, Windows: BudgetWindows}
		},
	}
	Personnel = Indicator{
		Key: "personnel_k", Label: "Personnel", Unit: UnitThousands,
		formula: func(in Inputs) Formula {
			return Linear{Base: in.PersonnelBase, Rate: 0.008}
		},
	}
	MilitaryGDPShare = Indicator{
		Key: "military_gdp_pct", Label: "Military share of GDP", Unit: UnitPercent,
		formula: fixed(Trend{Intercept: 2.5, Slope: 0.1}),
	}
	Exercises = Indicator{
		Key: "exercises", Label: "Military exercises", Unit: UnitCount,
		formula: func(in Inputs) Formula {
			return Seasonal{Base: in.ExercisesBase, Slope: 4, Amplitude: 8, Period: 4}
		},
	}
	Readiness = Indicator{
		Key: "readiness", Label: "Operational readiness", Unit: UnitPercent,
		formula: fixed(Stepped{Trend: Trend{Intercept: 65, Slope: 1.5}, Steps: ReadinessSteps, Cap: 90}),
	}
	Deterrence = Indicator{
		Key: "deterrence", Label: "Deterrence capacity", Unit: UnitPercent,
		formula: fixed(Piecewise{
			Segments: []Segment{
				{Before: 1998, Intercept: 0},
				{Before: 2003, Intercept: 40},
				{Before: 2012, Intercept: 60},
				{Before: 2018, Intercept: 75},
				{Intercept: 85, Slope: 1, Origin: 2018},
			},
			Cap: Capped(95),
		}),
	}
	Mobilization = Indicator{
		Key: "mobilization_days", Label: "Mobilization time", Unit: UnitDays,
		formula: fixed(Declining{Start: 45, Slope: 1, Floor: 15}),
	}
	MissileTests = Indicator{
		Key: "missile_tests", Label: "Missile tests", Unit: UnitCount, Count: true,
		formula: fixed(Piecewise{
			Segments: []Segment{
				{Before: 2006, Intercept: 2},
				{Before: 2012, Intercept: 4, Slope: 1, Origin: 2006},
				{Intercept: 10, Slope: 2, Origin: 2012},
			},
		}),
	}
	TechDevelopment = Indicator{
		Key: "tech_development", Label: "Technology index", Unit: UnitIndex,
		formula: fixed(Saturating{Floor: 50, Slope: 2.5, Cap: 85}),
	}
	Artillery = Indicator{
		Key: "artillery", Label: "Artillery capacity", Unit: UnitIndex,
		formula: fixed(Saturating{Floor: 70, Slope: 1.8, Cap: 90}),
	}
	AirDefenseCoverage = Indicator{
		Key: "air_defense_coverage", Label: "Air-defense coverage", Unit: UnitPercent,
		formula: fixed(Saturating{Floor: 55, Slope: 2.2, Cap: 88}),
	}
	LogisticsResilience = Indicator{
		Key: "logistics_resilience", Label: "Logistics resilience", Unit: UnitIndex,
		formula: fixed(Saturating{Floor: 60, Slope: 2, Cap: 87}),
	}
	CyberCapabilities = Indicator{
		Key: "cyber_capabilities", Label: "Cyber capabilities", Unit: UnitIndex,
		formula: fixed(Saturating{Floor: 45, Slope: 3, Cap: 82}),
	}
	WeaponProduction = Indicator{
		Key: "weapon_production", Label: "Weapon production", Unit: UnitIndex,
		formula: fixed(Saturating{Floor: 55, Slope: 2.8, Cap: 89}),
	}
)

// =============================================================================
// NUCLEAR ARSENAL
// =============================================================================

var (
	WarheadStockpile = Indicator{
		Key: "warhead_stockpile", Label: "Warhead stockpile", Unit: UnitCount, Count: true,
		formula: fixed(Piecewise{
			Segments: []Segment{
				{Before: 1998, Intercept: 0},
				{Before: 2005, Intercept: 50, Slope: 5, Origin: 1998},
				{Before: 2015, Intercept: 80, Slope: 8, Origin: 2005},
				{Intercept: 150, Slope: 10, Origin: 2015},
			},
			Cap: Capped(300),
		}),
	}
	MaxMissileRange = Indicator{
		Key: "max_missile_range_km", Label: "Max missile range", Unit: UnitKilometers,
		formula: fixed(Piecewise{
			Segments: []Segment{
				{Before: 2002, Intercept: 250},
				{Before: 2007, Intercept: 700, Slope: 200, Origin: 2002},
				{Before: 2012, Intercept: 2000, Slope: 500, Origin: 2007},
				{Before: 2018, Intercept: 3500, Slope: 500, Origin: 2012},
				{Intercept: 5000},
			},
		}),
	}
	SubmarineCapability = Indicator{
		Key: "submarine_capability", Label: "Strategic submarine capability", Unit: UnitIndex,
		formula: fixed(Piecewise{
			Segments: []Segment{
				{Before: 2009, Intercept: 0},
				{Intercept: 20, Slope: 4, Origin: 2009},
			},
			Cap: Capped(85),
		}),
	}
	UndergroundTests = Indicator{
		Key: "underground_test_readiness", Label: "Underground test readiness", Unit: UnitIndex,
		formula: fixed(Saturating{Floor: 60, Slope: 2, Cap: 90}),
	}
)

// =============================================================================
// MODERNIZATION
// =============================================================================

var (
	NewSystems = Indicator{
		Key: "new_systems", Label: "New systems deployed", Unit: UnitCount, Count: true,
		formula: fixed(Saturating{Floor: 3, Slope: 1.5, Cap: 40}),
	}
	ModernizationRate = Indicator{
		Key: "modernization_rate", Label: "Equipment modernization rate", Unit: UnitPercent,
		formula: fixed(Saturating{Floor: 25, Slope: 3.5, Cap: 80}),
	}
	WeaponExports = Indicator{
		Key: "weapon_exports_bn", Label: "Weapon exports", Unit: UnitBillionUSD,
		formula: fixed(Saturating{Floor: 0.1, Slope: 0.3, Cap: 3}),
	}
)

// =============================================================================
// MARITIME
// =============================================================================

var (
	CombatShips = Indicator{
		Key: "combat_ships", Label: "Combat fleet", Unit: UnitCount, Count: true,
		formula: fixed(Saturating{Floor: 25, Slope: 2, Cap: 70}),
	}
	ProjectionRange = Indicator{
		Key: "projection_range_nm", Label: "Naval projection range", Unit: UnitNautical,
		formula: fixed(Saturating{Floor: 500, Slope: 50, Cap: 2000}),
	}
	JointExercises = Indicator{
		Key: "joint_exercises", Label: "Joint exercises with partners", Unit: UnitCount, Count: true,
		formula: fixed(Saturating{Floor: 5, Slope: 2, Cap: 35}),
	}
)

// =============================================================================
// CYBER
// =============================================================================

var (
	CyberAttacks = Indicator{
		Key: "cyber_attacks_successful", Label: "Successful cyber attacks (est.)", Unit: UnitCount, Count: true,
		formula: fixed(Saturating{Floor: 10, Slope: 2, Cap: 60}),
	}
	CyberCommand = Indicator{
		Key: "cyber_command_network", Label: "Cyber command network", Unit: UnitIndex,
		formula: fixed(Saturating{Floor: 40, Slope: 3, Cap: 85}),
	}
	CyberDefense = Indicator{
		Key: "cyber_defense_level", Label: "Cyber defense capability", Unit: UnitIndex,
		formula: fixed(Saturating{Floor: 45, Slope: 2.8, Cap: 83}),
	}
)

// CooperationIndex tracks international partnerships. It feeds the
// geopolitical reference view, not the Dataset.
var CooperationIndex = Indicator{
	Key: "cooperation_index", Label: "International cooperation", Unit: UnitPercent,
	formula: fixed(Saturating{Floor: 40, Slope: 3, Cap: 85}),
}
