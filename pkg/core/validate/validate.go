// Package validate provides reusable checks over generated datasets.
// These functions can be called from tests, API handlers, or the export tool
// to verify table integrity and calculate derived trend metrics.
package validate

import (
	"fmt"
	"math"

	"strategic_posture/pkg/core/dataset"
)

// =============================================================================
// YEAR-OVER-YEAR (YoY) CALCULATIONS
// =============================================================================

// YoYResult holds the result of a YoY calculation.
type YoYResult struct {
	CurrentYear  int     `json:"current_year"`
	PriorYear    int     `json:"prior_year"`
	CurrentValue float64 `json:"current_value"`
	PriorValue   float64 `json:"prior_value"`
	ChangeAbs    float64 `json:"change_abs"`
	ChangePct    float64 `json:"change_pct"`
	Key          string  `json:"key"`
}

// CalculateYoY calculates year-over-year change between two values.
// Returns percentage change: (current - prior) / prior * 100
func CalculateYoY(current, prior float64) float64 {
	if prior == 0 {
		if current == 0 {
			return 0
		}
		return math.Inf(1) // Infinite growth from zero
	}
	return (current - prior) / prior * 100
}

// YoY calculates the change of one column between two years.
func YoY(ds *dataset.Dataset, key string, currentYear, priorYear int) (*YoYResult, error) {
	current, okCur := ds.Value(key, currentYear)
	prior, okPri := ds.Value(key, priorYear)

	if !okCur {
		return nil, fmt.Errorf("missing %s for year %d", key, currentYear)
	}
	if !okPri {
		return nil, fmt.Errorf("missing %s for year %d", key, priorYear)
	}

	return &YoYResult{
		CurrentYear:  currentYear,
		PriorYear:    priorYear,
		CurrentValue: current,
		PriorValue:   prior,
		ChangeAbs:    current - prior,
		ChangePct:    CalculateYoY(current, prior),
		Key:          key,
	}, nil
}

// =============================================================================
// CAGR (Compound Annual Growth Rate)
// =============================================================================

// CAGRResult holds the result of a CAGR calculation.
type CAGRResult struct {
	StartYear  int     `json:"start_year"`
	EndYear    int     `json:"end_year"`
	StartValue float64 `json:"start_value"`
	EndValue   float64 `json:"end_value"`
	Years      int     `json:"years"`
	CAGR       float64 `json:"cagr_pct"`
}

// CalculateCAGR calculates compound annual growth rate.
// CAGR = ((EndValue / StartValue) ^ (1/years)) - 1
func CalculateCAGR(startValue, endValue float64, years int) float64 {
	if startValue <= 0 || endValue < 0 || years <= 0 {
		return 0
	}
	return (math.Pow(endValue/startValue, 1.0/float64(years)) - 1) * 100
}

// CAGR calculates the compound growth of one column between two years.
func CAGR(ds *dataset.Dataset, key string, startYear, endYear int) (*CAGRResult, error) {
	start, okStart := ds.Value(key, startYear)
	end, okEnd := ds.Value(key, endYear)

	if !okStart {
		return nil, fmt.Errorf("missing %s start year %d", key, startYear)
	}
	if !okEnd {
		return nil, fmt.Errorf("missing %s end year %d", key, endYear)
	}

	numYears := endYear - startYear
	if numYears <= 0 {
		return nil, fmt.Errorf("end year must be after start year")
	}

	return &CAGRResult{
		StartYear:  startYear,
		EndYear:    endYear,
		StartValue: start,
		EndValue:   end,
		Years:      numYears,
		CAGR:       CalculateCAGR(start, end, numYears),
	}, nil
}

// =============================================================================
// OUTLIER DETECTION
// =============================================================================

// OutlierCheck flags a year whose change against the prior year is unusual.
// On these curves it marks calendar breakpoints rather than bad data.
type OutlierCheck struct {
	Key        string  `json:"key"`
	Year       int     `json:"year"`
	Value      float64 `json:"value"`
	PriorValue float64 `json:"prior_value"`
	ChangePct  float64 `json:"change_pct"`
	IsOutlier  bool    `json:"is_outlier"`
	Reason     string  `json:"reason,omitempty"`
	Threshold  float64 `json:"threshold"`
}

// CheckForOutlier identifies if a value change is suspicious.
func CheckForOutlier(key string, year int, current, prior, thresholdPct float64) *OutlierCheck {
	changePct := CalculateYoY(current, prior)

	check := &OutlierCheck{
		Key:        key,
		Year:       year,
		Value:      current,
		PriorValue: prior,
		ChangePct:  changePct,
		Threshold:  thresholdPct,
	}

	if current == 0 && prior > 0 {
		check.IsOutlier = true
		check.Reason = "value dropped to zero"
		return check
	}

	if math.Abs(changePct) > thresholdPct {
		check.IsOutlier = true
		check.Reason = fmt.Sprintf("change of %.1f%% exceeds threshold of %.1f%%", changePct, thresholdPct)
		return check
	}

	return check
}

// =============================================================================
// TRENDS
// =============================================================================

// DefaultOutlierThreshold is the YoY change, in percent, that Trends flags.
const DefaultOutlierThreshold = 25.0

// Trend summarizes one column over the full range.
type Trend struct {
	Key      string          `json:"key"`
	Label    string          `json:"label"`
	Growth   CAGRResult      `json:"growth"`
	Outliers []*OutlierCheck `json:"outliers,omitempty"`
}

// Trends computes the CAGR of every column from the first to the last year
// and lists the year-over-year jumps above thresholdPct.
func Trends(ds *dataset.Dataset, thresholdPct float64) []Trend {
	trends := make([]Trend, 0, len(ds.Columns))
	if len(ds.Years) < 2 {
		return trends
	}
	first, last := ds.Years[0], ds.Years[len(ds.Years)-1]

	for _, c := range ds.Columns {
		t := Trend{Key: c.Key, Label: c.Label}
		if g, err := CAGR(ds, c.Key, first, last); err == nil {
			t.Growth = *g
		}
		for i := 1; i < len(c.Values); i++ {
			// a series starting from zero is expected, not an outlier
			if c.Values[i-1] == 0 {
				continue
			}
			check := CheckForOutlier(c.Key, ds.Years[i], c.Values[i], c.Values[i-1], thresholdPct)
			if check.IsOutlier {
				t.Outliers = append(t.Outliers, check)
			}
		}
		trends = append(trends, t)
	}
	return trends
}
