// Package snapshot renders static PNG previews of the rainfall dataset for
// embedding where an interactive figure cannot run.
package snapshot

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/taruma/dash-hidrokit-rainfall/internal/theme"
	"github.com/taruma/dash-hidrokit-rainfall/internal/timeseries"
)

// Renderer draws rainfall tables as PNG line charts.
type Renderer struct {
	theme *theme.Theme
}

// NewRenderer creates a renderer using the theme's colorway for series
// strokes.
func NewRenderer(t *theme.Theme) *Renderer {
	return &Renderer{theme: t}
}

// RenderRainfall renders one line per station over the table's date index.
func (r *Renderer) RenderRainfall(table *timeseries.Table, title string) ([]byte, error) {
	if table.Len() == 0 {
		return nil, fmt.Errorf("cannot render empty table")
	}
	if title == "" {
		title = "Rainfall Each Station"
	}

	xValues := make([]time.Time, table.Len())
	copy(xValues, table.Index())

	var series []chart.Series
	for i, station := range table.Stations() {
		series = append(series, chart.TimeSeries{
			Name: station,
			Style: chart.Style{
				StrokeColor: parseHexColor(r.theme.Color(i)),
				StrokeWidth: 2,
			},
			XValues: xValues,
			YValues: sanitize(table.Series(station)),
		})
	}

	graph := chart.Chart{
		Title: title,
		TitleStyle: chart.Style{
			FontSize:  16,
			FontColor: drawing.ColorBlack,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   70,
				Right:  20,
				Bottom: 60,
			},
		},
		Height: 350,
		Width:  700,
		XAxis: chart.XAxis{
			Name:      "Date",
			NameStyle: chart.Style{FontSize: 12},
			Style:     chart.Style{FontSize: 9},
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(time.Time); ok {
					return t.Format("2006-01-02")
				}
				if f, ok := v.(float64); ok {
					return time.Unix(0, int64(f)).Format("2006-01-02")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			Name:      "Rainfall (mm)",
			NameStyle: chart.Style{FontSize: 12},
			Style:     chart.Style{FontSize: 10},
		},
		Series: series,
	}

	graph.Elements = []chart.Renderable{
		chart.Legend(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render rainfall snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitize replaces NaN gaps with zero so the renderer can draw a continuous
// line.
func sanitize(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		if v != v {
			continue
		}
		out[i] = v
	}
	return out
}

// parseHexColor converts "#rrggbb" to a drawing color, falling back to black.
func parseHexColor(s string) drawing.Color {
	if len(s) != 7 || s[0] != '#' {
		return drawing.ColorBlack
	}
	rv, err1 := strconv.ParseUint(s[1:3], 16, 8)
	gv, err2 := strconv.ParseUint(s[3:5], 16, 8)
	bv, err3 := strconv.ParseUint(s[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return drawing.ColorBlack
	}
	return drawing.Color{R: uint8(rv), G: uint8(gv), B: uint8(bv), A: 255}
}
