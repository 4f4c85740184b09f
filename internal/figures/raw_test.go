package figures

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/taruma/dash-hidrokit-rainfall/internal/timeseries"
)

func testRawTable(t *testing.T, stations []string, days int) *timeseries.Table {
	t.Helper()

	index := make([]time.Time, days)
	for i := range index {
		index[i] = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i)
	}
	table := timeseries.NewTable(index)
	for _, station := range stations {
		series := make([]float64, days)
		for i := range series {
			series[i] = float64(i % 7)
		}
		if err := table.AddStation(station, series); err != nil {
			t.Fatalf("AddStation(%q) error: %v", station, err)
		}
	}
	return table
}

func TestRainfallBarStackReversesStations(t *testing.T) {
	b := testBuilder()
	table := testRawTable(t, []string{"A", "B", "C"}, 5)

	g := b.RainfallBar(table, "stack")
	fig := g.Figure

	names := []string{fig.Data[0].Name, fig.Data[1].Name, fig.Data[2].Name}
	if names[0] != "C" || names[2] != "A" {
		t.Errorf("stacked trace order = %v, want reversed [C B A]", names)
	}
	if fig.Layout.BarGap == nil || *fig.Layout.BarGap != 0 {
		t.Error("stacked bargap should be 0")
	}
	if fig.Layout.BarMode != "stack" {
		t.Errorf("barmode = %q, want stack", fig.Layout.BarMode)
	}
}

func TestRainfallBarGroupKeepsOrder(t *testing.T) {
	b := testBuilder()
	table := testRawTable(t, []string{"A", "B"}, 5)

	g := b.RainfallBar(table, "group")
	fig := g.Figure

	if fig.Data[0].Name != "A" {
		t.Errorf("grouped first trace = %q, want A", fig.Data[0].Name)
	}
	if fig.Layout.BarGap == nil || *fig.Layout.BarGap != 0.2 {
		t.Error("grouped bargap should be 0.2")
	}
	if fig.Layout.HoverMode != "x unified" {
		t.Errorf("hovermode = %q, want x unified", fig.Layout.HoverMode)
	}
}

func TestRainfallScatter(t *testing.T) {
	b := testBuilder()
	table := testRawTable(t, []string{"A"}, 3)

	g := b.RainfallScatter(table)
	fig := g.Figure

	if fig.Data[0].Mode != "lines" {
		t.Errorf("mode = %q, want lines", fig.Data[0].Mode)
	}
	if fig.Layout.HoverMode != "closest" {
		t.Errorf("hovermode = %q, want closest", fig.Layout.HoverMode)
	}
	xs, ok := fig.Data[0].X.([]string)
	if !ok || xs[0] != "2020-01-01" {
		t.Errorf("x = %v, want ISO date strings", fig.Data[0].X)
	}
	if fig.Layout.Title.Text != "<b>Rainfall Each Station</b>" {
		t.Errorf("title = %q", fig.Layout.Title.Text)
	}
}

func TestRawRainfallPolicy(t *testing.T) {
	b := testBuilder()

	// Small tables honor the requested bar mode.
	small := testRawTable(t, []string{"A", "B"}, 10)
	if g := b.RawRainfall(small, "stack"); g.Figure.Layout.BarMode != "stack" {
		t.Error("small table should render the requested bar mode")
	}
	if g := b.RawRainfall(small, ""); g.Figure.Data[0].Type != "scatter" {
		t.Error("unspecified bar mode should fall back to the scatter view")
	}

	// Oversized tables always degrade to the scatter view. One station
	// needs more than RawSizeThreshold cells.
	big := testRawTable(t, []string{"A"}, RawSizeThreshold+1)
	if g := b.RawRainfall(big, "stack"); g.Figure.Data[0].Type != "scatter" {
		t.Error("oversized table must degrade to the scatter view")
	}
}

func TestRainfallScatterMarshalsMissingCells(t *testing.T) {
	b := testBuilder()

	index := []time.Time{
		time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 1, 3, 0, 0, 0, 0, time.UTC),
	}
	table := timeseries.NewTable(index)
	if err := table.AddStation("A", []float64{4, math.NaN(), 7}); err != nil {
		t.Fatalf("AddStation() error: %v", err)
	}

	g := b.RainfallScatter(table)
	data, err := json.Marshal(g.Figure)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.Contains(string(data), `"y":[4,null,7]`) {
		t.Errorf("missing cell not serialized as null: %s", data)
	}
}
