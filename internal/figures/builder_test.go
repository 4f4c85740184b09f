package figures

import (
	"testing"

	"github.com/taruma/dash-hidrokit-rainfall/internal/theme"
)

func testBuilder() *Builder {
	return NewBuilder(theme.Default("https://example.com/watermark.png"))
}

func TestExceedsThresholds(t *testing.T) {
	tests := []struct {
		name      string
		cellCount int
		indexLen  int
		period    Period
		expected  bool
	}{
		{"small summary", 100, 10, PeriodMonthly, false},
		{"at cell threshold", SummaryCellThreshold, 10, PeriodMonthly, false},
		{"above cell threshold", SummaryCellThreshold + 1, 10, PeriodMonthly, true},
		{"at axis threshold", 100, XAxisLengthThreshold, PeriodBiweekly, false},
		{"above axis threshold", 100, XAxisLengthThreshold + 1, PeriodBiweekly, true},
		{"yearly bypasses cells", SummaryCellThreshold + 1, 10, PeriodYearly, false},
		{"yearly bypasses axis", 100, XAxisLengthThreshold + 1, PeriodYearly, false},
		{"daily default guarded", SummaryCellThreshold + 1, 10, PeriodDaily, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := exceedsThresholds(tt.cellCount, tt.indexLen, tt.period)
			if got != tt.expected {
				t.Errorf("exceedsThresholds(%d, %d, %s) = %v, want %v",
					tt.cellCount, tt.indexLen, tt.period, got, tt.expected)
			}
		})
	}
}

func TestEmptyFigure(t *testing.T) {
	g := testBuilder().Empty("Not Available", 0)

	if !g.Config.StaticPlot {
		t.Error("Empty() config.staticPlot = false, want true")
	}
	if g.Figure.Layout.Height != 450 {
		t.Errorf("Empty() height = %d, want 450", g.Figure.Layout.Height)
	}
	anns := g.Figure.Layout.Annotations
	if len(anns) != 1 {
		t.Fatalf("Empty() annotation count = %d, want 1", len(anns))
	}
	if anns[0].Text != "<i>Not Available</i>" {
		t.Errorf("annotation text = %q, want italic wrapped", anns[0].Text)
	}
	if anns[0].Opacity != 0.3 {
		t.Errorf("annotation opacity = %v, want 0.3", anns[0].Opacity)
	}
	if anns[0].Font == nil || anns[0].Font.Size != 40 {
		t.Error("annotation font size should default to 40")
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		input    string
		expected Period
	}{
		{"monthly", PeriodMonthly},
		{"MONTHLY", PeriodMonthly},
		{" yearly ", PeriodYearly},
		{"biweekly", PeriodBiweekly},
		{"daily", PeriodDaily},
		{"", PeriodDaily},
		{"fortnightly", PeriodDaily},
	}
	for _, tt := range tests {
		if got := ParsePeriod(tt.input); got != tt.expected {
			t.Errorf("ParsePeriod(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestThresholdValues(t *testing.T) {
	// A year of 8 stations is the sizing unit for the circuit breakers.
	if SummaryCellThreshold != 1468 {
		t.Errorf("SummaryCellThreshold = %d, want 1468", SummaryCellThreshold)
	}
	if XAxisLengthThreshold != 120 {
		t.Errorf("XAxisLengthThreshold = %d, want 120", XAxisLengthThreshold)
	}
	if RawSizeThreshold != 365*8 {
		t.Errorf("RawSizeThreshold = %d, want %d", RawSizeThreshold, 365*8)
	}
}
