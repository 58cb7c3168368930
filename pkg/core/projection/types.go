package projection

// =============================================================================
// YEAR RANGE
// =============================================================================

const (
	FirstYear = 2000
	LastYear  = 2027

	// OriginYear is the t=0 of every trend term: (year - OriginYear).
	OriginYear = 2000
)

// YearCount is the number of points in every generated series.
const YearCount = LastYear - FirstYear + 1

// Years returns the fixed inclusive year range FirstYear..LastYear.
// A fresh slice is returned on every call.
func Years() []int {
	years := make([]int, YearCount)
	for i := range years {
		years[i] = FirstYear + i
	}
	return years
}

// IndexOf returns the position of year within the range, or -1.
func IndexOf(year int) int {
	if year < FirstYear || year > LastYear {
		return -1
	}
	return year - FirstYear
}

// elapsed is the trend term shared by all formula families.
func elapsed(year int) float64 {
	return float64(year - OriginYear)
}

// =============================================================================
// SERIES
// =============================================================================

// Series holds one indicator's values aligned index-for-index with Years().
type Series struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// At returns the value for a calendar year.
func (s Series) At(year int) (float64, bool) {
	i := IndexOf(year)
	if i < 0 || i >= len(s.Values) {
		return 0, false
	}
	return s.Values[i], true
}

// Generate evaluates f once per year of the range.
func Generate(f Formula) Series {
	values := make([]float64, YearCount)
	for i := range values {
		values[i] = f.Value(FirstYear + i)
	}
	return Series{Name: f.Name(), Values: values}
}
