package figures

import (
	"fmt"
	"regexp"

	"gonum.org/v1/gonum/stat"

	"github.com/taruma/dash-hidrokit-rainfall/internal/plotly"
)

// trendlineHoverPattern matches the equation and R-squared value embedded in
// an OLS trace's hover text.
var trendlineHoverPattern = regexp.MustCompile(`<br>(.+)<br>R.+=([0-9.]+)<br>`)

const trendlineSentinel = "<extra></extra>"

// fitTrendline fits an ordinary least squares line through (xs, ys) and
// returns a scatter trace carrying the fitted values. With fewer than two
// points there is nothing to fit and the trace degrades to an empty line
// whose hover shows nothing.
func fitTrendline(xs, ys []float64) *plotly.Trace {
	tr := &plotly.Trace{
		Type: plotly.TypeScatter,
		Mode: "lines",
		Name: "trendline",
	}
	if len(xs) < 2 || len(xs) != len(ys) {
		tr.X = []float64{}
		tr.Y = []float64{}
		tr.HoverTemplate = trendlineSentinel
		return tr
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	fitted := make([]float64, len(xs))
	for i, x := range xs {
		fitted[i] = alpha + beta*x
	}
	r2 := stat.RSquared(xs, ys, nil, alpha, beta)

	tr.X = xs
	tr.Y = fitted
	tr.HoverTemplate = fmt.Sprintf(
		"<b>OLS trendline</b><br>y = %g * x + %g<br>R<sup>2</sup>=%.6f<br><extra></extra>",
		beta, alpha, r2,
	)
	return tr
}

// restyleTrendline normalizes a fitted trendline trace for display: the
// trace is always renamed and forced into the legend, and when the hover
// text carries the fit metadata it is rewritten into the reading-friendly
// form. unit is appended to the x value in the hover, e.g. " mm".
func (b *Builder) restyleTrendline(tr *plotly.Trace, unit string) {
	tr.Name = "trendline"
	tr.ShowLegend = plotly.Bool(true)
	tr.Line = &plotly.Line{Color: b.theme.Color(1)}

	if tr.HoverTemplate == trendlineSentinel {
		return
	}
	m := trendlineHoverPattern.FindStringSubmatch(tr.HoverTemplate)
	if m == nil {
		b.log.Warn("trendline hover text not recognized, leaving as is",
			map[string]interface{}{"hovertemplate": tr.HoverTemplate})
		return
	}
	tr.HoverTemplate = fmt.Sprintf(
		"<b>OLS trendline</b><br><i>%s</i><br><i>R<sup>2</sup>: %s</i><br>"+
			"<b>%%{y} mm</b> (trend)<br><i>%%{x}%s</i><extra></extra>",
		m[1], m[2], unit,
	)
}
