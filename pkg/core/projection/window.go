package projection

import "math"

// =============================================================================
// EVENT WINDOWS
// Fixed calendar knowledge: historical periods that scale a linear base
// =============================================================================

// Window multiplies a value by Factor for From <= year <= To.
// To == 0 leaves the window open-ended.
type Window struct {
	From   int     `json:"from"`
	To     int     `json:"to,omitempty"`
	Factor float64 `json:"factor"`
	Label  string  `json:"label,omitempty"`
}

// Contains reports whether year falls inside the window.
func (w Window) Contains(year int) bool {
	if year < w.From {
		return false
	}
	return w.To == 0 || year <= w.To
}

// FactorFor returns the factor of the first window containing year, or 1.
// Order matters: later windows never override an earlier match.
func FactorFor(windows []Window, year int) float64 {
	for _, w := range windows {
		if w.Contains(year) {
			return w.Factor
		}
	}
	return 1
}

// Windowed is a Linear base scaled by event windows (first match wins).
type Windowed struct {
	Base    Linear   `json:"base"`
	Windows []Window `json:"windows"`
}

func (f Windowed) Name() string { return "Windowed" }

func (f Windowed) Value(year int) float64 {
	return f.Base.Value(year) * FactorFor(f.Windows, year)
}

// =============================================================================
// PIECEWISE SEGMENTS
// =============================================================================

// Segment applies to years strictly before Before (0 = no upper bound).
// Formula: Intercept + Slope * (year - Origin)
type Segment struct {
	Before    int     `json:"before,omitempty"`
	Intercept float64 `json:"intercept"`
	Slope     float64 `json:"slope,omitempty"`
	Origin    int     `json:"origin,omitempty"`
}

func (s Segment) covers(year int) bool {
	return s.Before == 0 || year < s.Before
}

func (s Segment) eval(year int) float64 {
	return s.Intercept + s.Slope*float64(year-s.Origin)
}

// Piecewise picks the first segment covering the year.
// Segments must be ordered by Before; the last one should be open-ended.
// Adjacent segments need not meet: jumps at breakpoints are expected.
type Piecewise struct {
	Segments []Segment `json:"segments"`
	Cap      *float64  `json:"cap,omitempty"`
}

func (f Piecewise) Name() string { return "Piecewise" }

func (f Piecewise) Value(year int) float64 {
	v := 0.0
	for _, s := range f.Segments {
		if s.covers(year) {
			v = s.eval(year)
			break
		}
	}
	if f.Cap != nil {
		v = math.Min(v, *f.Cap)
	}
	return v
}

func (f Piecewise) Lower() float64 { return math.Inf(-1) }

func (f Piecewise) Upper() float64 {
	if f.Cap == nil {
		return math.Inf(1)
	}
	return *f.Cap
}

// Capped is a helper for Piecewise.Cap literals.
func Capped(v float64) *float64 { return &v }
