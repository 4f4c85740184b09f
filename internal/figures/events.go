package figures

import (
	"strings"
	"time"

	"github.com/taruma/dash-hidrokit-rainfall/internal/plotly"
	"github.com/taruma/dash-hidrokit-rainfall/internal/timeseries"
)

const (
	bubbleSize       = 10.0
	maxEventDateFmt  = "02 January 2006"
	eventsHoverTempl = "<i>%{y}</i><br>%{customdata[0]}<br>%{marker.size} mm<extra></extra>"
)

// PeriodSummary pairs a summary with the granularity it was bucketed at,
// for figures that overlay several aggregation levels.
type PeriodSummary struct {
	Summary *timeseries.Summary
	Period  Period
}

// maxEvent is one row of the long-form reshape: a station's largest rainfall
// within one bucket of one period.
type maxEvent struct {
	station string
	date    time.Time
	value   float64
}

// MaximumEvents builds the bubble chart of maximum rainfall events: one
// subplot row per period, one trace per station within each row, every
// recorded event a bubble at (event date, station) sized by its rainfall.
// Bubble areas are normalized per row against that period's largest event,
// and stations keep one color and one legend group across all rows.
func (b *Builder) MaximumEvents(summaries []PeriodSummary, title string) *plotly.Graph {
	if title == "" {
		title = "Maximum Rainfall Events"
	}

	rows := len(summaries)
	titles := make([]string, rows)
	for i, ps := range summaries {
		titles[i] = periodTitle(ps.Period)
	}

	fig := plotly.NewFigure()
	grid := plotly.Grid{Rows: rows, VerticalSpacing: 0.05, Titles: titles}
	grid.Apply(fig.Layout)
	fig.Layout.Images = b.watermarks(rows)

	nStations := 0
	for row, ps := range summaries {
		stations := ps.Summary.Stations()
		nStations = len(stations)

		events := make([][]maxEvent, len(stations))
		var sizeMax float64
		for i, station := range stations {
			events[i] = collectMaxEvents(ps.Summary.Station(station), station)
			for _, ev := range events[i] {
				if ev.value > sizeMax {
					sizeMax = ev.value
				}
			}
		}
		sizeRef := 2 * sizeMax / (bubbleSize * bubbleSize)

		traces := make([]*plotly.Trace, 0, len(stations))
		for i, station := range stations {
			xs := make([]string, len(events[i]))
			ys := make([]string, len(events[i]))
			sizes := make([]float64, len(events[i]))
			custom := make([][]interface{}, len(events[i]))
			for j, ev := range events[i] {
				xs[j] = ev.date.Format("2006-01-02")
				ys[j] = ev.station
				sizes[j] = ev.value
				custom[j] = []interface{}{ev.date.Format(maxEventDateFmt), ev.value}
			}
			traces = append(traces, &plotly.Trace{
				Type:             plotly.TypeScatter,
				Mode:             "markers",
				X:                xs,
				Y:                ys,
				Name:             string(ps.Period),
				LegendGroup:      station,
				LegendGroupTitle: &plotly.LegendGroupTitle{Text: station},
				CustomData:       custom,
				HoverTemplate:    eventsHoverTempl,
				Marker: &plotly.Marker{
					Size:    sizes,
					SizeRef: sizeRef,
					Line:    &plotly.MarkerLine{Width: plotly.Float(0)},
				},
			})
		}
		grid.Place(fig, row+1, traces...)
	}

	layout := fig.Layout
	layout.Title = &plotly.Title{Text: title, Pad: &plotly.Pad{B: plotly.Int(20)}}
	layout.Height = 800
	layout.DragMode = "zoom"
	layout.HoverMode = "x"
	layout.HoverDistance = 50
	layout.Legend = &plotly.Legend{
		Title:      &plotly.LegendTitle{Text: "<b>Stations</b>"},
		ItemSizing: "constant",
	}

	gridColor := b.theme.GridColor("0.1")
	for row := 1; row <= rows; row++ {
		x := layout.XAxis(row)
		x.GridColor = gridColor
		x.GridWidth = 2
		x.ShowSpikes = plotly.Bool(true)
		x.SpikeSnap = "cursor"
		x.SpikeMode = "across"
		x.SpikeThickness = 1

		y := layout.YAxis(row)
		y.GridColor = gridColor
		y.GridWidth = 2
		y.FixedRange = true
		y.SetTitle("<b>Station</b>")
	}
	if rows > 0 {
		layout.XAxis(rows).SetTitle("<b>Date</b>")
	}

	colors := b.assignColors(nStations, rows)
	for i, tr := range fig.Data {
		tr.SetMarkerColor(colors[i])
	}

	return plotly.NewGraph(fig)
}

// collectMaxEvents flattens one station's record to long form, keeping only
// the buckets where a maximum was actually recorded.
func collectMaxEvents(record *timeseries.Metrics, station string) []maxEvent {
	var out []maxEvent
	for i, d := range record.MaxDate {
		if d.IsZero() {
			continue
		}
		out = append(out, maxEvent{station: station, date: d, value: record.Max[i]})
	}
	return out
}

// periodTitle renders a period as a subplot heading.
func periodTitle(p Period) string {
	s := string(p)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
