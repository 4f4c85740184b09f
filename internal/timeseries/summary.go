package timeseries

import (
	"fmt"
	"time"
)

// Metric names carried by a summary.
const (
	MetricDays    = "days"
	MetricMax     = "max"
	MetricSum     = "sum"
	MetricNRain   = "n_rain"
	MetricNDry    = "n_dry"
	MetricMaxDate = "max_date"
)

// numMetrics is the fixed metric count per station in a summary.
const numMetrics = 6

// Metrics is the fixed record of per-bucket statistics for one station.
// Every slice has the summary's index length. MaxDate uses the zero time for
// buckets with no rainy day.
type Metrics struct {
	Days    []float64
	Max     []float64
	Sum     []float64
	NRain   []float64
	NDry    []float64
	MaxDate []time.Time
}

// Metric returns the named numeric sequence, or nil for an unknown name.
// MaxDate is not addressable by name; it is not a numeric metric.
func (m *Metrics) Metric(name string) []float64 {
	switch name {
	case MetricDays:
		return m.Days
	case MetricMax:
		return m.Max
	case MetricSum:
		return m.Sum
	case MetricNRain:
		return m.NRain
	case MetricNDry:
		return m.NDry
	default:
		return nil
	}
}

// MaxDays returns the largest bucket length observed for this station.
func (m *Metrics) MaxDays() float64 {
	var max float64
	for _, d := range m.Days {
		if d > max {
			max = d
		}
	}
	return max
}

// Summary is a per-period statistic table: a time index of bucket starts and
// one Metrics record per station. The station registry is built once at
// construction and keeps first-seen order; station order carries meaning
// downstream, it decides color and subplot assignment.
type Summary struct {
	index    []time.Time
	stations []string
	metrics  map[string]*Metrics
}

// NewSummary builds and validates a summary. Every metric sequence must have
// the index length; divergent lengths are rejected here so tick planning is
// well defined downstream.
func NewSummary(index []time.Time, stations []string, metrics map[string]*Metrics) (*Summary, error) {
	n := len(index)
	for _, station := range stations {
		m, ok := metrics[station]
		if !ok {
			return nil, fmt.Errorf("station %q: missing metrics record", station)
		}
		for name, seq := range map[string][]float64{
			MetricDays:  m.Days,
			MetricMax:   m.Max,
			MetricSum:   m.Sum,
			MetricNRain: m.NRain,
			MetricNDry:  m.NDry,
		} {
			if len(seq) != n {
				return nil, fmt.Errorf("station %q: metric %q has length %d, want %d",
					station, name, len(seq), n)
			}
		}
		if len(m.MaxDate) != n {
			return nil, fmt.Errorf("station %q: metric %q has length %d, want %d",
				station, MetricMaxDate, len(m.MaxDate), n)
		}
	}
	return &Summary{index: index, stations: stations, metrics: metrics}, nil
}

// Index returns the bucket-start time index.
func (s *Summary) Index() []time.Time { return s.index }

// Len returns the index length.
func (s *Summary) Len() int { return len(s.index) }

// Stations returns station identifiers in first-seen order.
func (s *Summary) Stations() []string { return s.stations }

// Station returns the metrics record for a station, or nil if unknown.
func (s *Summary) Station(name string) *Metrics { return s.metrics[name] }

// Size returns the total cell count: index length times the full column
// count (stations times metrics per station).
func (s *Summary) Size() int {
	return len(s.index) * len(s.stations) * numMetrics
}
