package plotly

// Grid lays out a single column of vertically stacked subplot rows with a
// shared x axis. Row 1 is the top row; row Rows anchors the shared tick
// labels, matching the subplot convention of the upstream charting library.
type Grid struct {
	Rows            int
	VerticalSpacing float64
	Titles          []string
}

// Apply configures the layout's numbered axes for the grid: per-row y
// domains, x axes matched to the first row with tick labels only on the
// bottom row, and one title annotation centered above each row.
func (g Grid) Apply(layout *Layout) {
	rows := g.Rows
	if rows < 1 {
		rows = 1
	}

	spacing := g.VerticalSpacing
	rowHeight := (1.0 - spacing*float64(rows-1)) / float64(rows)

	for row := 1; row <= rows; row++ {
		top := 1.0 - float64(row-1)*(rowHeight+spacing)
		bottom := top - rowHeight
		if bottom < 0 {
			bottom = 0
		}

		y := layout.YAxis(row)
		y.Domain = []float64{bottom, top}
		y.Anchor = AxisRef("x", row)

		x := layout.XAxis(row)
		x.Domain = []float64{0, 1}
		x.Anchor = AxisRef("y", row)
		if row > 1 {
			x.Matches = "x"
		}
		if row < rows {
			x.ShowTickLabels = Bool(false)
		}

		if row-1 < len(g.Titles) && g.Titles[row-1] != "" {
			layout.Annotations = append(layout.Annotations, &Annotation{
				Text:      g.Titles[row-1],
				X:         0.5,
				Y:         top,
				XRef:      "paper",
				YRef:      "paper",
				XAnchor:   "center",
				YAnchor:   "bottom",
				ShowArrow: Bool(false),
				Font:      &Font{Size: 16},
			})
		}
	}
}

// Place assigns the traces to a subplot row and appends them to the figure.
func (g Grid) Place(fig *Figure, row int, traces ...*Trace) {
	for _, tr := range traces {
		tr.XAxis = AxisRef("x", row)
		tr.YAxis = AxisRef("y", row)
	}
	fig.AddTraces(traces...)
}
