// Package plotly models the subset of the Plotly figure JSON schema used by
// the rainfall dashboard: bar and scatter traces, a layout with numbered
// subplot axes, and the embeddable graph object consumed by the web shell.
package plotly

import "encoding/json"

// Figure is a complete chart: an ordered trace list plus its layout. A Figure
// is immutable once returned by a builder; ownership passes to the caller.
type Figure struct {
	Data   []*Trace `json:"data"`
	Layout *Layout  `json:"layout"`
}

// NewFigure returns an empty figure with an initialized layout.
func NewFigure() *Figure {
	return &Figure{Layout: NewLayout()}
}

// AddTraces appends traces in order.
func (f *Figure) AddTraces(traces ...*Trace) {
	f.Data = append(f.Data, traces...)
}

// MarshalJSON renders the figure; a nil trace list serializes as [] so the
// client always receives a well-formed figure object.
func (f *Figure) MarshalJSON() ([]byte, error) {
	data := f.Data
	if data == nil {
		data = []*Trace{}
	}
	return json.Marshal(struct {
		Data   []*Trace `json:"data"`
		Layout *Layout  `json:"layout"`
	}{data, f.Layout})
}

// GraphConfig mirrors the dcc.Graph config object. StaticPlot marks the chart
// non-interactive; the placeholder path sets it.
type GraphConfig struct {
	StaticPlot bool `json:"staticPlot"`
}

// Graph is the embeddable chart object handed to the dashboard shell.
type Graph struct {
	Figure *Figure     `json:"figure"`
	Config GraphConfig `json:"config"`
}

// NewGraph wraps a figure in an interactive graph object.
func NewGraph(fig *Figure) *Graph {
	return &Graph{Figure: fig}
}

// NewStaticGraph wraps a figure in a non-interactive graph object.
func NewStaticGraph(fig *Figure) *Graph {
	return &Graph{Figure: fig, Config: GraphConfig{StaticPlot: true}}
}

// Bool returns a pointer to b, for optional schema fields where false is
// meaningful (e.g. showlegend).
func Bool(b bool) *bool { return &b }

// Float returns a pointer to v, for optional schema fields where zero is
// meaningful (e.g. bargap, marker line width).
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }
