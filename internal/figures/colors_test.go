package figures

import (
	"testing"

	"github.com/taruma/dash-hidrokit-rainfall/internal/theme"
)

func TestAssignColorsPrefix(t *testing.T) {
	b := testBuilder()

	colors := b.assignColors(3, 1)
	want := theme.DefaultColorway[:3]
	for i := range want {
		if colors[i] != want[i] {
			t.Errorf("assignColors(3,1)[%d] = %q, want %q", i, colors[i], want[i])
		}
	}
}

func TestAssignColorsCycles(t *testing.T) {
	b := testBuilder()
	n := len(theme.DefaultColorway) + 2

	colors := b.assignColors(n, 1)
	if len(colors) != n {
		t.Fatalf("assignColors length = %d, want %d", len(colors), n)
	}
	if colors[len(theme.DefaultColorway)] != theme.DefaultColorway[0] {
		t.Error("cycle should wrap to the first color past the colorway length")
	}
}

func TestAssignColorsMultiplier(t *testing.T) {
	b := testBuilder()

	// Two metric rows over three stations: the whole base list repeats, so
	// station i keeps the same color on both rows.
	colors := b.assignColors(3, 2)
	if len(colors) != 6 {
		t.Fatalf("assignColors(3,2) length = %d, want 6", len(colors))
	}
	for i := 0; i < 3; i++ {
		if colors[i] != colors[i+3] {
			t.Errorf("station %d color differs across rows: %q vs %q", i, colors[i], colors[i+3])
		}
	}
}

func TestStackedPalette(t *testing.T) {
	b := testBuilder()

	palette := b.stackedPalette(2)
	if len(palette) != 6 {
		t.Fatalf("stackedPalette(2) length = %d, want 6", len(palette))
	}
	want := []string{theme.DefaultColorway[0], theme.DefaultColorway[1], "DarkGray"}
	for row := 0; row < 2; row++ {
		for i, color := range want {
			if palette[row*3+i] != color {
				t.Errorf("stackedPalette row %d slot %d = %q, want %q", row, i, palette[row*3+i], color)
			}
		}
	}
}
