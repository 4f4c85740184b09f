package dashboard

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/taruma/dash-hidrokit-rainfall/internal/timeseries"
)

// buildOverviewChart creates the monthly rainfall totals line chart shown at
// the top of the dashboard page.
func buildOverviewChart(table *timeseries.Table) (string, error) {
	summary, err := timeseries.Summarize(table, timeseries.Monthly)
	if err != nil {
		return "", fmt.Errorf("failed to summarize for overview chart: %w", err)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "1100px",
			Height: "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Monthly Rainfall Totals",
			Subtitle: "Summed per station from the daily record",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Month",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Rainfall (mm)",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
	)

	xAxis := make([]string, summary.Len())
	for i, t := range summary.Index() {
		xAxis[i] = t.Format("2006-01")
	}
	line.SetXAxis(xAxis)

	for _, station := range summary.Stations() {
		sums := summary.Station(station).Sum
		data := make([]opts.LineData, len(sums))
		for i, v := range sums {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(station, data)
	}
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return "", fmt.Errorf("failed to render overview chart: %w", err)
	}
	return buf.String(), nil
}
