package dataset_test

import (
	"testing"

	"strategic_posture/pkg/core/dataset"
	"strategic_posture/pkg/core/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_ArmedForces(t *testing.T) {
	ds, _ := dataset.Build(profile.ArmedForces)
	s := dataset.Summarize(ds)

	assert.Equal(t, 2027, s.Year)
	assert.InDelta(t, 70*(1+0.065*27)*1.2, s.Budget, 1e-9)
	assert.InDelta(t, 5.2, s.GDPShare, 1e-9)
	assert.InDelta(t, 1400*1.216, s.Personnel, 1e-9)
	assert.InDelta(t, 21.6, s.PersonnelGrowth, 1e-9)
	assert.Equal(t, 94.0, s.Deterrence)
	assert.Equal(t, 270, s.Warheads)
	assert.InDelta(t, 92.5, s.NavalPower, 1e-9)
	assert.Equal(t, 70, s.CombatShips)
	assert.Equal(t, 18.0, s.MobilizationDays)
	assert.InDelta(t, 60.0, s.MobilizationReduction, 1e-9)
	assert.Equal(t, 88.0, s.AirDefense)
	assert.InDelta(t, 60.0, s.AirDefenseGrowth, 1e-9)
	assert.Equal(t, 90.0, s.Readiness)
	assert.InDelta(t, 25.0, s.ReadinessGain, 1e-9)

	require.NotNil(t, s.MaxMissileRange)
	assert.Equal(t, 5000.0, *s.MaxMissileRange)
	assert.InDelta(t, 1900.0, *s.MaxMissileRangeGrowth, 1e-9)
}

func TestSummarize_GenericProfile(t *testing.T) {
	ds, _ := dataset.Build("")
	s := dataset.Summarize(ds)

	assert.Equal(t, 0, s.Warheads)
	assert.Equal(t, 0, s.CombatShips)
	assert.Equal(t, 0.0, s.NavalPower)
	assert.Nil(t, s.MaxMissileRange)
	assert.Nil(t, s.MaxMissileRangeGrowth)
	assert.InDelta(t, 60*(1+0.065*27)*1.2, s.Budget, 1e-9)
}
