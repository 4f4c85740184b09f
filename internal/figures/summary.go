package figures

import (
	"fmt"
	"math"

	"github.com/taruma/dash-hidrokit-rainfall/internal/plotly"
	"github.com/taruma/dash-hidrokit-rainfall/internal/timeseries"
)

// SummaryOptions configures the summary figure builders. Zero values select
// the defaults documented on each builder.
type SummaryOptions struct {
	// Metrics are the summary columns to plot, in row order for the grouped
	// builder and stack order for the stacked builder.
	Metrics []string

	// Rows overrides the subplot row count. Zero derives it from Metrics
	// (grouped) or the station registry (stacked).
	Rows int

	// SubplotTitles overrides the per-row titles.
	SubplotTitles []string

	// Title is the figure title.
	Title string

	// Period is the summary's bucket granularity.
	Period Period
}

// MaximumSum builds the grouped summary figure: one subplot row per metric
// (max and sum by default), with side-by-side bars per station and one legend
// group per station. Oversized summaries short-circuit to the placeholder.
func (b *Builder) MaximumSum(summary *timeseries.Summary, opts SummaryOptions) *plotly.Graph {
	metrics := opts.Metrics
	if len(metrics) == 0 {
		metrics = []string{timeseries.MetricMax, timeseries.MetricSum}
	}
	rows := opts.Rows
	if rows == 0 {
		rows = len(metrics)
	}
	titles := opts.SubplotTitles
	if titles == nil {
		titles = metrics
	}
	title := opts.Title
	if title == "" {
		title = "Summary Rainfall"
	}

	if exceedsThresholds(summary.Size(), summary.Len(), opts.Period) {
		return b.Empty(PlaceholderText, 0)
	}

	fig := plotly.NewFigure()
	grid := plotly.Grid{Rows: rows, VerticalSpacing: 0.05, Titles: titles}
	grid.Apply(fig.Layout)
	fig.Layout.Images = b.watermarks(rows)

	xs := sequence(summary.Len())
	traceRows := make([][]*plotly.Trace, len(metrics))
	for _, station := range summary.Stations() {
		record := summary.Station(station)
		for i, metric := range metrics {
			traceRows[i] = append(traceRows[i], &plotly.Trace{
				Type:             plotly.TypeBar,
				X:                xs,
				Y:                record.Metric(metric),
				Name:             fmt.Sprintf("%s (%s)", station, metric),
				LegendGroup:      station,
				LegendGroupTitle: &plotly.LegendGroupTitle{Text: station},
			})
		}
	}
	for i, traces := range traceRows {
		grid.Place(fig, i+1, traces...)
	}

	layout := fig.Layout
	layout.Title = &plotly.Title{Text: title, Pad: &plotly.Pad{B: plotly.Int(20)}}
	layout.BarMode = "group"
	layout.BarGap = plotly.Float(0.2)
	layout.HoverMode = "x"
	layout.Height = 800
	layout.DragMode = "zoom"
	layout.Legend = &plotly.Legend{Title: &plotly.LegendTitle{Text: "<b>Stations</b>"}}

	plan := planTicks(summary.Index(), opts.Period)
	gridColor := b.theme.GridColor("0.2")
	for row := 1; row <= rows; row++ {
		x := layout.XAxis(row)
		x.TickVals = plan.Values
		x.TickText = plan.Labels
		x.GridColor = gridColor
		x.GridWidth = 2

		y := layout.YAxis(row)
		y.GridColor = gridColor
		y.GridWidth = 2
		y.FixedRange = true
		y.SetTitle("<b>Rainfall (mm)</b>")
	}
	layout.XAxis(rows).SetTitle("<b>Date</b>")

	colors := b.assignColors(len(fig.Data)/len(metrics), len(metrics))
	for i, tr := range fig.Data {
		tr.SetMarkerColor(colors[i])
	}

	return plotly.NewGraph(fig)
}

// RainDry builds the stacked summary figure: one subplot row per station,
// each row stacking the rainy-day and dry-day counts plus a derived filler
// bar that tops every stack up to the station's largest bucket length. The
// filler contributes nothing to hover but stays in the legend under its
// station, ranked after the real metrics.
func (b *Builder) RainDry(summary *timeseries.Summary, opts SummaryOptions) *plotly.Graph {
	metrics := opts.Metrics
	if len(metrics) == 0 {
		metrics = []string{timeseries.MetricNRain, timeseries.MetricNDry}
	}
	stations := summary.Stations()
	rows := opts.Rows
	if rows == 0 {
		rows = len(stations)
	}
	titles := opts.SubplotTitles
	if titles == nil {
		titles = stations
	}
	title := opts.Title
	if title == "" {
		title = "Summary Rainfall"
	}

	if exceedsThresholds(summary.Size(), summary.Len(), opts.Period) {
		return b.Empty(PlaceholderText, 0)
	}

	fig := plotly.NewFigure()
	grid := plotly.Grid{Rows: rows, VerticalSpacing: 0.2 / float64(rows), Titles: titles}
	grid.Apply(fig.Layout)
	fig.Layout.Images = b.watermarks(rows)

	xs := sequence(summary.Len())
	dates := dateStrings(summary.Index())
	var ceiling float64
	for row, station := range stations {
		record := summary.Station(station)
		maxDays := record.MaxDays()
		if maxDays > ceiling {
			ceiling = maxDays
		}

		traces := make([]*plotly.Trace, 0, len(metrics)+1)
		for _, metric := range metrics {
			traces = append(traces, &plotly.Trace{
				Type:             plotly.TypeBar,
				X:                xs,
				Y:                record.Metric(metric),
				Name:             fmt.Sprintf("%s (%s)", station, metric),
				LegendGroup:      station,
				LegendGroupTitle: &plotly.LegendGroupTitle{Text: station},
				Marker:           &plotly.Marker{Line: &plotly.MarkerLine{Width: plotly.Float(0)}},
				CustomData:       dates,
				HoverTemplate:    fmt.Sprintf("%s<br>%s: %%{y}<extra></extra>", station, metric),
			})
		}
		traces = append(traces, &plotly.Trace{
			Type:             plotly.TypeBar,
			X:                xs,
			Y:                fillerSeries(record, maxDays),
			Name:             fmt.Sprintf("<i>%s (border)</i>", station),
			LegendGroup:      station,
			LegendGroupTitle: &plotly.LegendGroupTitle{Text: station},
			ShowLegend:       plotly.Bool(true),
			HoverInfo:        "skip",
			LegendRank:       500,
			Marker: &plotly.Marker{
				Opacity: plotly.Float(1),
				Line:    &plotly.MarkerLine{Width: plotly.Float(0)},
			},
		})
		grid.Place(fig, row+1, traces...)
	}

	layout := fig.Layout
	layout.Title = &plotly.Title{Text: title, Pad: &plotly.Pad{B: plotly.Int(20)}}
	layout.BarMode = "stack"
	layout.BarGap = plotly.Float(0)
	layout.HoverMode = "x"
	layout.Height = maxInt(600, 250*rows)
	layout.DragMode = "zoom"
	layout.Legend = &plotly.Legend{Title: &plotly.LegendTitle{Text: "<b>Stations</b>"}}

	plan := planTicks(summary.Index(), opts.Period)
	gridColor := b.theme.GridColor("0.1")
	for row := 1; row <= rows; row++ {
		x := layout.XAxis(row)
		x.TickVals = plan.Values
		x.TickText = plan.Labels
		x.GridColor = gridColor
		x.GridWidth = 2
		x.TickLabelStep = 2

		y := layout.YAxis(row)
		y.GridColor = gridColor
		y.GridWidth = 2
		y.FixedRange = true
		y.SetTitle("<b>Days</b>")
		y.Range = []float64{0, ceiling}
	}
	layout.XAxis(rows).SetTitle("<b>Date</b>")

	colors := b.stackedPalette(rows)
	for i, tr := range fig.Data {
		tr.SetMarkerColor(colors[i])
	}

	return plotly.NewGraph(fig)
}

// fillerSeries derives the n_left filler metric: whatever remains between a
// station's rainy and dry counts and its largest bucket length, so every
// stack reaches the same visual ceiling.
func fillerSeries(record *timeseries.Metrics, maxDays float64) []float64 {
	out := make([]float64, len(record.NRain))
	for i := range out {
		v := maxDays - record.NRain[i] - record.NDry[i]
		if math.IsNaN(v) {
			v = 0
		}
		out[i] = v
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
