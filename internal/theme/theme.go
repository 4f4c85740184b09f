package theme

import "strings"

// Theme carries the figure styling shared by every builder: an ordered color
// cycle, the translucent font color used for gridlines, and the watermark
// image source. It is passed explicitly into each builder call; this package
// holds no mutable state.
type Theme struct {
	// Colorway is the ordered color cycle assigned to stations.
	Colorway []string

	// FontColor is an rgba() token whose alpha component is "0.4". Gridline
	// variants are derived from it textually, see GridColor.
	FontColor string

	// WatermarkSource is the URI of the watermark image stamped on subplots.
	WatermarkSource string
}

// DefaultColorway mirrors the palette the dashboard theme ships with.
var DefaultColorway = []string{
	"#636efa", "#ef553b", "#00cc96", "#ab63fa", "#ffa15a",
	"#19d3f3", "#ff6692", "#b6e880", "#ff97ff", "#fecb52",
}

const defaultFontColor = "rgba(42,63,95,0.4)"

// Default returns the built-in theme with the given watermark source.
func Default(watermarkSource string) *Theme {
	return &Theme{
		Colorway:        DefaultColorway,
		FontColor:       defaultFontColor,
		WatermarkSource: watermarkSource,
	}
}

// GridColor derives a lighter gridline color by substituting the font color's
// alpha component, e.g. GridColor("0.2") turns "rgba(42,63,95,0.4)" into
// "rgba(42,63,95,0.2)".
func (t *Theme) GridColor(alpha string) string {
	return strings.Replace(t.FontColor, "0.4", alpha, 1)
}

// Color returns the color cycle entry for position i, wrapping around when i
// exceeds the cycle length.
func (t *Theme) Color(i int) string {
	return t.Colorway[i%len(t.Colorway)]
}
