package timeseries

import (
	"math"
	"time"
)

// Frequency is the aggregation bucket size used when summarizing a raw table.
type Frequency int

const (
	// Biweekly buckets every 16 days counted from the series start.
	Biweekly Frequency = iota
	// Monthly buckets on calendar-month starts.
	Monthly
	// Yearly buckets on calendar-year starts.
	Yearly
)

// String returns the frequency name used in labels and period parameters.
func (f Frequency) String() string {
	switch f {
	case Biweekly:
		return "biweekly"
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		return "unknown"
	}
}

// bucketStart maps a timestamp to its bucket-start time.
func (f Frequency) bucketStart(t, origin time.Time) time.Time {
	switch f {
	case Biweekly:
		days := int(t.Sub(origin).Hours() / 24)
		return origin.AddDate(0, 0, (days/16)*16)
	case Monthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	default:
		return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
	}
}

// Summarize aggregates a raw rainfall table into per-bucket statistics for
// every station: bucket length, maximum, rounded sum, rainy-day and dry-day
// counts, and the date of the maximum. Dry days count both zero and missing
// observations, so for every bucket n_rain + n_dry equals the bucket length.
func Summarize(table *Table, freq Frequency) (*Summary, error) {
	index := table.Index()

	var origin time.Time
	if len(index) > 0 {
		origin = index[0]
	}

	// Bucket boundaries, in index order.
	var starts []time.Time
	bucketOf := make([]int, len(index))
	seen := make(map[time.Time]int)
	for i, t := range index {
		start := freq.bucketStart(t, origin)
		pos, ok := seen[start]
		if !ok {
			pos = len(starts)
			seen[start] = pos
			starts = append(starts, start)
		}
		bucketOf[i] = pos
	}

	metrics := make(map[string]*Metrics, table.NumStations())
	for _, station := range table.Stations() {
		series := table.Series(station)
		m := &Metrics{
			Days:    make([]float64, len(starts)),
			Max:     make([]float64, len(starts)),
			Sum:     make([]float64, len(starts)),
			NRain:   make([]float64, len(starts)),
			NDry:    make([]float64, len(starts)),
			MaxDate: make([]time.Time, len(starts)),
		}
		for b := range starts {
			m.Max[b] = math.NaN()
		}

		for i, v := range series {
			b := bucketOf[i]
			m.Days[b]++
			if math.IsNaN(v) || v == 0 {
				m.NDry[b]++
			}
			if math.IsNaN(v) {
				continue
			}
			m.Sum[b] += v
			if v > 0 {
				m.NRain[b]++
			}
			if math.IsNaN(m.Max[b]) || v > m.Max[b] {
				m.Max[b] = v
				if v > 0 {
					m.MaxDate[b] = index[i]
				}
			}
		}
		for b := range starts {
			m.Sum[b] = math.Round(m.Sum[b]*1000) / 1000
		}
		metrics[station] = m
	}

	return NewSummary(starts, table.Stations(), metrics)
}

// SummarizeAll produces one summary per frequency, in the given order.
func SummarizeAll(table *Table, freqs ...Frequency) ([]*Summary, error) {
	if len(freqs) == 0 {
		freqs = []Frequency{Biweekly, Monthly, Yearly}
	}
	summaries := make([]*Summary, 0, len(freqs))
	for _, freq := range freqs {
		s, err := Summarize(table, freq)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// CumulativeSum resamples a raw table into calendar-year totals and returns
// the running cumulative sum per station, rounded to whole millimeters.
func CumulativeSum(table *Table) *Table {
	index := table.Index()

	var starts []time.Time
	bucketOf := make([]int, len(index))
	seen := make(map[int]int)
	for i, t := range index {
		pos, ok := seen[t.Year()]
		if !ok {
			pos = len(starts)
			seen[t.Year()] = pos
			starts = append(starts, time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location()))
		}
		bucketOf[i] = pos
	}

	out := NewTable(starts)
	for _, station := range table.Stations() {
		series := table.Series(station)
		totals := make([]float64, len(starts))
		for i, v := range series {
			if !math.IsNaN(v) {
				totals[bucketOf[i]] += v
			}
		}
		var running float64
		cumsum := make([]float64, len(starts))
		for b, v := range totals {
			running += v
			cumsum[b] = math.Round(running)
		}
		// AddStation cannot fail here: lengths match and names are unique.
		out.AddStation(station, cumsum)
	}
	return out
}
