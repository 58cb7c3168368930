package dataset

import (
	"strategic_posture/pkg/core/projection"
)

// Column is one indicator series with its display metadata.
type Column struct {
	Key    string    `json:"key"`
	Label  string    `json:"label"`
	Unit   string    `json:"unit"`
	Count  bool      `json:"count"`
	Group  string    `json:"group"`
	Values []float64 `json:"values"`
}

// Dataset is the year-indexed indicator table for one selection.
// Every column has exactly one value per entry of Years.
type Dataset struct {
	Selection string   `json:"selection"`
	Years     []int    `json:"years"`
	Columns   []Column `json:"columns"`
	Groups    []string `json:"groups"`
}

// Row is one year of the table.
type Row struct {
	Year   int                `json:"year"`
	Values map[string]float64 `json:"values"`
}

// Keys returns the column keys in order.
func (d *Dataset) Keys() []string {
	keys := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		keys[i] = c.Key
	}
	return keys
}

// Column returns the values of a column.
func (d *Dataset) Column(key string) ([]float64, bool) {
	for _, c := range d.Columns {
		if c.Key == key {
			return c.Values, true
		}
	}
	return nil, false
}

// Has reports whether a column is present.
func (d *Dataset) Has(key string) bool {
	_, ok := d.Column(key)
	return ok
}

// HasGroup reports whether an optional group was attached.
func (d *Dataset) HasGroup(name string) bool {
	for _, g := range d.Groups {
		if g == name {
			return true
		}
	}
	return false
}

// Value returns a single cell.
func (d *Dataset) Value(key string, year int) (float64, bool) {
	values, ok := d.Column(key)
	if !ok {
		return 0, false
	}
	i := projection.IndexOf(year)
	if i < 0 || i >= len(values) {
		return 0, false
	}
	return values[i], true
}

// Rows pivots the table into per-year records.
func (d *Dataset) Rows() []Row {
	rows := make([]Row, len(d.Years))
	for i, y := range d.Years {
		values := make(map[string]float64, len(d.Columns))
		for _, c := range d.Columns {
			values[c.Key] = c.Values[i]
		}
		rows[i] = Row{Year: y, Values: values}
	}
	return rows
}
