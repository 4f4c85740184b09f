package figures

import (
	"fmt"

	"github.com/taruma/dash-hidrokit-rainfall/internal/plotly"
	"github.com/taruma/dash-hidrokit-rainfall/internal/timeseries"
)

// CumulativeSum builds the cumulative annual rainfall figure for one
// station: the running yearly totals as a dash-dot line with circle markers,
// overlaid with its OLS trendline. The x axis counts years 1..N and labels
// them with the calendar year.
func (b *Builder) CumulativeSum(cumsum *timeseries.Table, station string) *plotly.Graph {
	ys := cumsum.Series(station)
	xs := make([]float64, len(ys))
	ticks := make([]int, len(ys))
	labels := make([]string, len(ys))
	for i, t := range cumsum.Index() {
		xs[i] = float64(i + 1)
		ticks[i] = i + 1
		labels[i] = t.Format("2006")
	}

	fig := plotly.NewFigure()
	fig.AddTraces(&plotly.Trace{
		Type: plotly.TypeScatter,
		Mode: "markers+lines",
		X:    xs,
		Y:    ys,
		Name: station,
		Line: &plotly.Line{Dash: "dashdot", Width: 1},
		Marker: &plotly.Marker{
			Size:   12,
			Symbol: "circle",
		},
		HoverTemplate: fmt.Sprintf("%s<br><b>%%{y} mm</b><br><i>%%{x}</i><extra></extra>", station),
	})

	trend := fitTrendline(xs, ys)
	b.restyleTrendline(trend, "")
	fig.AddTraces(trend)

	layout := fig.Layout
	layout.Title = &plotly.Title{Text: fmt.Sprintf("<b>Cumulative Annual Rainfall of %s</b>", station)}
	layout.Margin = &plotly.Margin{L: plotly.Int(0), T: plotly.Int(35), B: plotly.Int(0), R: plotly.Int(0)}
	layout.ShowLegend = plotly.Bool(true)

	x := layout.XAxis(1)
	x.TickVals = ticks
	x.TickText = labels
	x.SetTitle("<b>Year</b>")
	y := layout.YAxis(1)
	y.TickFormat = ".0f"
	y.SetTitle("<b>Cumulative Annual (mm)</b>")

	return plotly.NewGraph(fig)
}

// Consistency builds the double-mass curve for one station: its cumulative
// annual totals against the average cumulative totals of every other
// station, plus the OLS trendline through the pairs. A registry with a
// single station has no references to compare against.
func (b *Builder) Consistency(cumsum *timeseries.Table, station string) *plotly.Graph {
	if cumsum.NumStations() < 2 {
		return b.Empty("Not Available for Single Station", 0)
	}

	xs := cumsum.Series(station)
	ys := cumsum.MeanOthers(station)

	fig := plotly.NewFigure()
	fig.AddTraces(&plotly.Trace{
		Type: plotly.TypeScatter,
		Mode: "markers+lines",
		X:    xs,
		Y:    ys,
		Name: station,
		Line: &plotly.Line{Dash: "dashdot", Width: 1},
		Marker: &plotly.Marker{
			Size:   12,
			Symbol: "circle",
		},
		HoverTemplate: fmt.Sprintf(
			"%s<br><b>y: %%{y} mm<br><i>x: %%{x} mm</i></b><extra></extra>", station),
	})

	trend := fitTrendline(xs, ys)
	b.restyleTrendline(trend, " mm")
	fig.AddTraces(trend)

	layout := fig.Layout
	layout.Title = &plotly.Title{Text: fmt.Sprintf("<b>Consistency Curve of %s</b>", station)}
	layout.Margin = &plotly.Margin{L: plotly.Int(0), T: plotly.Int(35), B: plotly.Int(0), R: plotly.Int(0)}
	layout.ShowLegend = plotly.Bool(true)

	x := layout.XAxis(1)
	x.SetTitle(fmt.Sprintf("<b>Cumulative Annual %s (mm)</b>", station))
	x.TickFormat = ".0f"
	y := layout.YAxis(1)
	y.SetTitle("<b>Cumulative Average Annual References (mm)</b>")
	y.TickFormat = ".0f"

	return plotly.NewGraph(fig)
}
