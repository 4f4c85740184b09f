// Package timeseries holds the typed tabular data model for the rainfall
// dashboard: the raw station table, the per-period summary with its fixed
// metric records, and the aggregation that produces them. Station order is
// first-seen order everywhere, never sorted; color assignment and legend
// order across all chart types depend on it.
package timeseries

import (
	"fmt"
	"math"
	"time"
)

// Table is a raw rainfall table: a time index with one value series per
// station. Missing observations are NaN.
type Table struct {
	index    []time.Time
	stations []string
	values   map[string][]float64
}

// NewTable creates a table over the given time index.
func NewTable(index []time.Time) *Table {
	return &Table{
		index:  index,
		values: make(map[string][]float64),
	}
}

// AddStation registers a station series. Order of registration is preserved.
func (t *Table) AddStation(name string, series []float64) error {
	if len(series) != len(t.index) {
		return fmt.Errorf("station %q: series length %d does not match index length %d",
			name, len(series), len(t.index))
	}
	if _, ok := t.values[name]; ok {
		return fmt.Errorf("station %q: duplicate station name", name)
	}
	t.stations = append(t.stations, name)
	t.values[name] = series
	return nil
}

// Index returns the time index.
func (t *Table) Index() []time.Time { return t.index }

// Len returns the index length.
func (t *Table) Len() int { return len(t.index) }

// Stations returns station names in first-seen order.
func (t *Table) Stations() []string { return t.stations }

// NumStations returns the number of stations.
func (t *Table) NumStations() int { return len(t.stations) }

// Series returns the value series for a station, or nil if unknown.
func (t *Table) Series(station string) []float64 { return t.values[station] }

// Size returns the total cell count (index length times station count).
func (t *Table) Size() int { return len(t.index) * len(t.stations) }

// MeanOthers returns the row-wise mean across every station except the named
// one. NaN cells are excluded from each row's mean; rows with no finite value
// yield NaN.
func (t *Table) MeanOthers(exclude string) []float64 {
	out := make([]float64, len(t.index))
	for i := range t.index {
		var sum float64
		var n int
		for _, station := range t.stations {
			if station == exclude {
				continue
			}
			v := t.values[station][i]
			if !math.IsNaN(v) {
				sum += v
				n++
			}
		}
		if n == 0 {
			out[i] = math.NaN()
		} else {
			out[i] = sum / float64(n)
		}
	}
	return out
}
