package projection_test

import (
	"math"
	"testing"

	"strategic_posture/pkg/core/projection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYears(t *testing.T) {
	years := projection.Years()
	require.Len(t, years, 28)
	require.Equal(t, projection.YearCount, len(years))
	for i, y := range years {
		require.Equal(t, 2000+i, y)
	}

	// Callers may mutate what they get back
	years[0] = 1900
	require.Equal(t, 2000, projection.Years()[0])
}

func TestIndexOf(t *testing.T) {
	assert.Equal(t, 0, projection.IndexOf(2000))
	assert.Equal(t, 27, projection.IndexOf(2027))
	assert.Equal(t, -1, projection.IndexOf(1999))
	assert.Equal(t, -1, projection.IndexOf(2028))
}

func TestLinear(t *testing.T) {
	f := projection.Linear{Base: 70, Rate: 0.065}
	assert.InDelta(t, 70.0, f.Value(2000), 1e-9)
	assert.InDelta(t, 115.5, f.Value(2010), 1e-9)
	assert.Equal(t, "Linear", f.Name())
}

func TestTrend(t *testing.T) {
	f := projection.Trend{Intercept: 2.5, Slope: 0.1}
	assert.InDelta(t, 2.5, f.Value(2000), 1e-9)
	assert.InDelta(t, 5.2, f.Value(2027), 1e-9)
}

func TestSeasonal(t *testing.T) {
	f := projection.Seasonal{Base: 80, Slope: 4, Amplitude: 8, Period: 4}

	// Period 4: peak one year in, trough three years in, back to trend every 4 years
	assert.InDelta(t, 80.0, f.Value(2000), 1e-9)
	assert.InDelta(t, 92.0, f.Value(2001), 1e-9)
	assert.InDelta(t, 88.0, f.Value(2002), 1e-9)
	assert.InDelta(t, 84.0, f.Value(2003), 1e-9)
	assert.InDelta(t, 96.0, f.Value(2004), 1e-9)
}

func TestSaturating(t *testing.T) {
	f := projection.Saturating{Floor: 50, Slope: 2.5, Cap: 85}
	assert.InDelta(t, 50.0, f.Value(2000), 1e-9)
	assert.InDelta(t, 82.5, f.Value(2013), 1e-9)
	assert.InDelta(t, 85.0, f.Value(2014), 1e-9)

	// Far past the tuned range the cap still holds
	assert.Equal(t, 85.0, f.Value(2100))
	assert.Equal(t, 50.0, f.Lower())
	assert.Equal(t, 85.0, f.Upper())
}

func TestDeclining(t *testing.T) {
	f := projection.Declining{Start: 45, Slope: 1, Floor: 15}
	assert.Equal(t, 45.0, f.Value(2000))
	assert.Equal(t, 18.0, f.Value(2027))
	assert.Equal(t, 15.0, f.Value(2030))
	assert.Equal(t, 15.0, f.Value(2200))
	assert.Equal(t, 15.0, f.Lower())
	assert.Equal(t, 45.0, f.Upper())
}

func TestStepped_Cumulative(t *testing.T) {
	f := projection.Stepped{
		Trend: projection.Trend{Intercept: 65, Slope: 1.5},
		Steps: projection.ReadinessSteps,
		Cap:   90,
	}
	assert.InDelta(t, 65.0, f.Value(2000), 1e-9)
	assert.InDelta(t, 75.5, f.Value(2007), 1e-9)
	// 2008: trend 77 plus the first step
	assert.InDelta(t, 85.0, f.Value(2008), 1e-9)
	assert.InDelta(t, 89.5, f.Value(2011), 1e-9)
	assert.Equal(t, 90.0, f.Value(2012))
	assert.Equal(t, 90.0, f.Value(2027))
}

func TestGenerate_Alignment(t *testing.T) {
	s := projection.Generate(projection.Trend{Intercept: 0, Slope: 1})
	require.Len(t, s.Values, projection.YearCount)
	for i, v := range s.Values {
		require.Equal(t, float64(i), v)
	}

	v, ok := s.At(2010)
	require.True(t, ok)
	require.Equal(t, 10.0, v)

	_, ok = s.At(1999)
	require.False(t, ok)
}

func TestBoundsImplementations(t *testing.T) {
	var _ projection.Bounds = projection.Saturating{}
	var _ projection.Bounds = projection.Declining{}
	var _ projection.Bounds = projection.Stepped{}
	var _ projection.Bounds = projection.Piecewise{}

	p := projection.Piecewise{Segments: []projection.Segment{{Intercept: 1}}}
	assert.True(t, math.IsInf(p.Upper(), 1))
}
