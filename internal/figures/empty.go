package figures

import (
	"fmt"

	"github.com/taruma/dash-hidrokit-rainfall/internal/plotly"
)

// Empty builds the static placeholder figure: no data, hidden axes, and one
// faint italic annotation. size 0 means the default annotation size.
func (b *Builder) Empty(text string, size int) *plotly.Graph {
	if size == 0 {
		size = 40
	}

	fig := plotly.NewFigure()
	fig.AddTraces(&plotly.Trace{Type: plotly.TypeScatter, X: []float64{}, Y: []float64{}})

	layout := fig.Layout
	layout.Height = 450
	layout.Margin = &plotly.Margin{
		T: plotly.Int(55), L: plotly.Int(55), R: plotly.Int(55), B: plotly.Int(55),
	}

	hidden := func(ax *plotly.Axis) {
		ax.SetTitle("")
		ax.ShowGrid = plotly.Bool(false)
		ax.ShowTickLabels = plotly.Bool(false)
		ax.ZeroLine = plotly.Bool(false)
	}
	hidden(layout.XAxis(1))
	hidden(layout.YAxis(1))

	layout.Annotations = []*plotly.Annotation{{
		Name:      "text",
		Text:      fmt.Sprintf("<i>%s</i>", text),
		Opacity:   0.3,
		Font:      &plotly.Font{Size: size},
		XRef:      "x domain",
		YRef:      "y domain",
		X:         0.5,
		Y:         0.05,
		ShowArrow: plotly.Bool(false),
	}}

	return plotly.NewStaticGraph(fig)
}
