// Package projection implements the formula families behind every strategic indicator.
// Core Philosophy: "Fixed Calendar, Parametrized Formulas"
// - Calendar (YearRange): fixed 2000..2027, identical for every entity
// - Formulas (Families): pure functions of the year and their constants
package projection

import (
	"math"
)

// =============================================================================
// FORMULA INTERFACE
// =============================================================================

// Formula computes one indicator value for a calendar year.
// Implementations must be pure: same year, same value.
type Formula interface {
	// Name returns the family identifier
	Name() string

	// Value evaluates the formula for any year, inside the range or not
	Value(year int) float64
}

// Bounds is implemented by families that clamp their output.
// Lower/Upper return -Inf/+Inf on the unclamped side.
type Bounds interface {
	Lower() float64
	Upper() float64
}

// =============================================================================
// BUILT-IN FAMILIES
// =============================================================================

// Linear grows proportionally from a configured base.
// Formula: Value(y) = Base * (1 + Rate * (y - 2000))
type Linear struct {
	Base float64 `json:"base"`
	Rate float64 `json:"rate"` // e.g., 0.065 for 6.5% of base per year
}

func (f Linear) Name() string { return "Linear" }

func (f Linear) Value(year int) float64 {
	return f.Base * (1 + f.Rate*elapsed(year))
}

// Trend is an absolute straight line.
// Formula: Value(y) = Intercept + Slope * (y - 2000)
type Trend struct {
	Intercept float64 `json:"intercept"`
	Slope     float64 `json:"slope"`
}

func (f Trend) Name() string { return "Trend" }

func (f Trend) Value(year int) float64 {
	return f.Intercept + f.Slope*elapsed(year)
}

// Seasonal adds a sine oscillation on top of a trend.
// Formula: Value(y) = Base + Slope*(y-2000) + Amplitude*sin(2π(y-2000)/Period)
type Seasonal struct {
	Base      float64 `json:"base"`
	Slope     float64 `json:"slope"`
	Amplitude float64 `json:"amplitude"`
	Period    float64 `json:"period"` // years
}

func (f Seasonal) Name() string { return "Seasonal" }

func (f Seasonal) Value(year int) float64 {
	t := elapsed(year)
	return f.Base + f.Slope*t + f.Amplitude*math.Sin(2*math.Pi*t/f.Period)
}

// Saturating grows linearly until it hits Cap, then stays flat.
// Formula: Value(y) = min(Floor + Slope*(y-2000), Cap)
type Saturating struct {
	Floor float64 `json:"floor"`
	Slope float64 `json:"slope"`
	Cap   float64 `json:"cap"`
}

func (f Saturating) Name() string { return "Saturating" }

func (f Saturating) Value(year int) float64 {
	return math.Min(f.Floor+f.Slope*elapsed(year), f.Cap)
}

// Lower is the 2000 value: with a non-negative slope nothing in range goes below it.
func (f Saturating) Lower() float64 {
	if f.Slope < 0 {
		return math.Inf(-1)
	}
	return math.Min(f.Floor, f.Cap)
}

func (f Saturating) Upper() float64 { return f.Cap }

// Declining shrinks linearly until it reaches Floor.
// Formula: Value(y) = max(Start - Slope*(y-2000), Floor)
type Declining struct {
	Start float64 `json:"start"`
	Slope float64 `json:"slope"`
	Floor float64 `json:"floor"`
}

func (f Declining) Name() string { return "Declining" }

func (f Declining) Value(year int) float64 {
	return math.Max(f.Start-f.Slope*elapsed(year), f.Floor)
}

func (f Declining) Lower() float64 { return f.Floor }

func (f Declining) Upper() float64 {
	if f.Slope < 0 {
		return math.Inf(1)
	}
	return math.Max(f.Start, f.Floor)
}

// =============================================================================
// STEPPED TREND
// =============================================================================

// Step raises the trend by Add for every year >= From.
type Step struct {
	From int     `json:"from"`
	Add  float64 `json:"add"`
}

// Stepped is a trend plus cumulative step-ups, capped.
// Unlike windows, every matching step applies.
type Stepped struct {
	Trend Trend   `json:"trend"`
	Steps []Step  `json:"steps"`
	Cap   float64 `json:"cap"`
}

func (f Stepped) Name() string { return "Stepped" }

func (f Stepped) Value(year int) float64 {
	v := f.Trend.Value(year)
	for _, s := range f.Steps {
		if year >= s.From {
			v += s.Add
		}
	}
	return math.Min(v, f.Cap)
}

func (f Stepped) Lower() float64 { return math.Inf(-1) }

func (f Stepped) Upper() float64 { return f.Cap }
