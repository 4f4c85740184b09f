package figures

import (
	"time"

	"github.com/taruma/dash-hidrokit-rainfall/internal/plotly"
	"github.com/taruma/dash-hidrokit-rainfall/internal/timeseries"
)

// rainfallLayout applies the shared raw-view labels.
func rainfallLayout(layout *plotly.Layout) {
	layout.Title = &plotly.Title{Text: "<b>Rainfall Each Station</b>"}
	layout.XAxis(1).SetTitle("<b>Date</b>")
	layout.YAxis(1).SetTitle("<b>Rainfall (mm)</b>")
	layout.Legend = &plotly.Legend{Title: &plotly.LegendTitle{Text: "Stations"}}
}

// RainfallScatter builds the raw multi-station line view, one trace per
// station plotted against the actual dates.
func (b *Builder) RainfallScatter(table *timeseries.Table) *plotly.Graph {
	fig := plotly.NewFigure()

	dates := dateStrings(table.Index())
	for _, station := range table.Stations() {
		fig.AddTraces(&plotly.Trace{
			Type: plotly.TypeScatter,
			X:    dates,
			Y:    table.Series(station),
			Mode: "lines",
			Name: station,
		})
	}

	rainfallLayout(fig.Layout)
	fig.Layout.HoverMode = "closest"

	return plotly.NewGraph(fig)
}

// RainfallBar builds the raw multi-station bar view. Stacked mode reverses
// station order so the first station ends up on top of each stack, and drops
// the bar gap; grouped mode keeps order and a 0.2 gap.
func (b *Builder) RainfallBar(table *timeseries.Table, barmode string) *plotly.Graph {
	stations := table.Stations()
	bargap := 0.2
	if barmode == "stack" {
		reversed := make([]string, len(stations))
		for i, s := range stations {
			reversed[len(stations)-1-i] = s
		}
		stations = reversed
		bargap = 0
	}

	fig := plotly.NewFigure()
	dates := dateStrings(table.Index())
	for _, station := range stations {
		fig.AddTraces(&plotly.Trace{
			Type: plotly.TypeBar,
			X:    dates,
			Y:    table.Series(station),
			Name: station,
		})
	}

	rainfallLayout(fig.Layout)
	fig.Layout.HoverMode = "x unified"
	fig.Layout.BarMode = barmode
	fig.Layout.BarGap = plotly.Float(bargap)

	return plotly.NewGraph(fig)
}

// RawRainfall picks the raw view for a table: the requested bar mode when
// the table is small enough, otherwise the line scatter, which stays
// readable (and affordable) at any size.
func (b *Builder) RawRainfall(table *timeseries.Table, barmode string) *plotly.Graph {
	if table.Size() > RawSizeThreshold {
		return b.RainfallScatter(table)
	}
	switch barmode {
	case "group", "stack":
		return b.RainfallBar(table, barmode)
	default:
		return b.RainfallScatter(table)
	}
}

// dateStrings formats a time index as ISO dates for direct use as x values.
func dateStrings(index []time.Time) []string {
	out := make([]string, len(index))
	for i, t := range index {
		out[i] = t.Format("2006-01-02")
	}
	return out
}
