package figures

import (
	"strings"
	"testing"

	"github.com/taruma/dash-hidrokit-rainfall/internal/plotly"
	"github.com/taruma/dash-hidrokit-rainfall/internal/theme"
)

func TestFitTrendlineLinearData(t *testing.T) {
	// y = 2x + 1 fits exactly.
	xs := []float64{1, 2, 3, 4}
	ys := []float64{3, 5, 7, 9}

	tr := fitTrendline(xs, ys)

	fitted, ok := tr.Y.([]float64)
	if !ok {
		t.Fatalf("trendline Y type = %T, want []float64", tr.Y)
	}
	for i, x := range xs {
		want := 2*x + 1
		if diff := fitted[i] - want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("fitted[%d] = %v, want %v", i, fitted[i], want)
		}
	}

	if !strings.Contains(tr.HoverTemplate, "OLS trendline") {
		t.Errorf("hover = %q, want OLS header", tr.HoverTemplate)
	}
	if !strings.Contains(tr.HoverTemplate, "R<sup>2</sup>=1.000000") {
		t.Errorf("hover = %q, want perfect R-squared", tr.HoverTemplate)
	}
}

func TestFitTrendlineTooFewPoints(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		ys   []float64
	}{
		{"empty", nil, nil},
		{"single point", []float64{1}, []float64{2}},
		{"length mismatch", []float64{1, 2}, []float64{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := fitTrendline(tt.xs, tt.ys)
			if tr.HoverTemplate != "<extra></extra>" {
				t.Errorf("hover = %q, want bare sentinel", tr.HoverTemplate)
			}
			if tr.Name != "trendline" {
				t.Errorf("name = %q, want trendline", tr.Name)
			}
		})
	}
}

func TestRestyleTrendlineRewrite(t *testing.T) {
	b := testBuilder()
	tr := &plotly.Trace{
		HoverTemplate: "<b>OLS trendline</b><br>y = 2 * x + 1<br>R<sup>2</sup>=0.987654<br><extra></extra>",
	}

	b.restyleTrendline(tr, " mm")

	if tr.Name != "trendline" {
		t.Errorf("name = %q, want trendline", tr.Name)
	}
	if tr.ShowLegend == nil || !*tr.ShowLegend {
		t.Error("showlegend should be forced true")
	}
	if tr.Line == nil || tr.Line.Color != theme.DefaultColorway[1] {
		t.Errorf("trendline color = %+v, want second theme color", tr.Line)
	}

	want := "<b>OLS trendline</b><br><i>y = 2 * x + 1</i><br><i>R<sup>2</sup>: 0.987654</i><br>" +
		"<b>%{y} mm</b> (trend)<br><i>%{x} mm</i><extra></extra>"
	if tr.HoverTemplate != want {
		t.Errorf("hover = %q, want %q", tr.HoverTemplate, want)
	}
}

func TestRestyleTrendlineNoUnit(t *testing.T) {
	b := testBuilder()
	tr := fitTrendline([]float64{1, 2, 3}, []float64{2, 4, 6})

	b.restyleTrendline(tr, "")

	if !strings.Contains(tr.HoverTemplate, "<i>%{x}</i>") {
		t.Errorf("hover = %q, want bare x value without unit", tr.HoverTemplate)
	}
}

func TestRestyleTrendlineSentinel(t *testing.T) {
	b := testBuilder()
	tr := fitTrendline(nil, nil)

	b.restyleTrendline(tr, " mm")

	if tr.HoverTemplate != "<extra></extra>" {
		t.Errorf("sentinel hover changed to %q, want untouched", tr.HoverTemplate)
	}
	if tr.ShowLegend == nil || !*tr.ShowLegend {
		t.Error("sentinel trace should still be renamed and shown in legend")
	}
}

func TestRestyleTrendlineUnrecognized(t *testing.T) {
	b := testBuilder()
	original := "something else entirely"
	tr := &plotly.Trace{HoverTemplate: original}

	b.restyleTrendline(tr, " mm")

	if tr.HoverTemplate != original {
		t.Errorf("unrecognized hover changed to %q, want untouched", tr.HoverTemplate)
	}
	if tr.Name != "trendline" {
		t.Errorf("name = %q, want trendline even when hover is left alone", tr.Name)
	}
}
