package figures

import (
	"github.com/taruma/dash-hidrokit-rainfall/internal/plotly"
)

// watermark builds the watermark image for one subplot row, anchored at the
// row's domain center, half the subplot in both axes, below the data traces.
func (b *Builder) watermark(row int) *plotly.Image {
	return &plotly.Image{
		Source:  b.theme.WatermarkSource,
		XRef:    plotly.AxisRef("x", row) + " domain",
		YRef:    plotly.AxisRef("y", row) + " domain",
		X:       0.5,
		Y:       0.5,
		SizeX:   0.5,
		SizeY:   0.5,
		XAnchor: "center",
		YAnchor: "middle",
		Name:    "watermark-hidrokit",
		Layer:   "below",
		Opacity: 0.1,
	}
}

// watermarks stamps every row after the first; the first row already carries
// the template watermark in the dashboard shell.
func (b *Builder) watermarks(rows int) []*plotly.Image {
	if rows < 2 || b.theme.WatermarkSource == "" {
		return nil
	}
	images := make([]*plotly.Image, 0, rows-1)
	for row := 2; row <= rows; row++ {
		images = append(images, b.watermark(row))
	}
	return images
}
