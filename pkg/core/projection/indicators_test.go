package projection_test

import (
	"math"
	"testing"

	"strategic_posture/pkg/core/projection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allIndicators = []projection.Indicator{
	projection.Budget, projection.Personnel, projection.MilitaryGDPShare, projection.Exercises,
	projection.Readiness, projection.Deterrence, projection.Mobilization, projection.MissileTests,
	projection.TechDevelopment, projection.Artillery, projection.AirDefenseCoverage,
	projection.LogisticsResilience, projection.CyberCapabilities, projection.WeaponProduction,
	projection.WarheadStockpile, projection.MaxMissileRange, projection.SubmarineCapability,
	projection.UndergroundTests, projection.NewSystems, projection.ModernizationRate,
	projection.WeaponExports, projection.CombatShips, projection.ProjectionRange,
	projection.JointExercises, projection.CyberAttacks, projection.CyberCommand,
	projection.CyberDefense, projection.CooperationIndex,
}

var sampleInputs = projection.Inputs{BudgetBase: 70, PersonnelBase: 1400, ExercisesBase: 120}

func TestIndicators_UniqueKeys(t *testing.T) {
	seen := make(map[string]bool)
	for _, ind := range allIndicators {
		require.NotEmpty(t, ind.Key)
		require.False(t, seen[ind.Key], "duplicate key %s", ind.Key)
		seen[ind.Key] = true
	}
}

func TestIndicators_BoundsHoldEveryYear(t *testing.T) {
	for _, ind := range allIndicators {
		f := ind.Formula(sampleInputs)
		b, ok := f.(projection.Bounds)
		if !ok {
			continue
		}
		s := ind.Series(sampleInputs)
		for i, v := range s.Values {
			year := projection.FirstYear + i
			assert.LessOrEqual(t, v, b.Upper(), "%s %d", ind.Key, year)
			assert.GreaterOrEqual(t, v, b.Lower(), "%s %d", ind.Key, year)
		}
	}
}

func TestIndicators_CountsAreWhole(t *testing.T) {
	for _, ind := range allIndicators {
		if !ind.Count {
			continue
		}
		for _, v := range ind.Series(sampleInputs).Values {
			assert.Equal(t, math.Trunc(v), v, ind.Key)
		}
	}
}

func TestNewSystems_Rounded(t *testing.T) {
	s := projection.NewSystems.Series(projection.Inputs{})
	v, _ := s.At(2000)
	assert.Equal(t, 3.0, v)
	// 4.5 rounds half away from zero
	v, _ = s.At(2001)
	assert.Equal(t, 5.0, v)
	v, _ = s.At(2027)
	assert.Equal(t, 40.0, v)
}

func TestMissileTests(t *testing.T) {
	s := projection.MissileTests.Series(projection.Inputs{})
	expect := map[int]float64{2000: 2, 2005: 2, 2006: 4, 2011: 9, 2012: 10, 2027: 40}
	for year, want := range expect {
		got, ok := s.At(year)
		require.True(t, ok)
		assert.Equal(t, want, got, "year %d", year)
	}
}

func TestConfigDrivenIndicators(t *testing.T) {
	in := projection.Inputs{BudgetBase: 2.5, PersonnelBase: 8, ExercisesBase: 15}

	budget := projection.Budget.Series(in)
	v, _ := budget.At(2000)
	assert.InDelta(t, 2.5, v, 1e-12)

	personnel := projection.Personnel.Series(in)
	v, _ = personnel.At(2025)
	assert.InDelta(t, 8*1.2, v, 1e-9)

	exercises := projection.Exercises.Series(in)
	v, _ = exercises.At(2000)
	assert.InDelta(t, 15.0, v, 1e-9)
}

func TestSeries_Deterministic(t *testing.T) {
	for _, ind := range allIndicators {
		assert.Equal(t, ind.Series(sampleInputs), ind.Series(sampleInputs), ind.Key)
	}
}
