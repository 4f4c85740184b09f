package plotly

import (
	"encoding/json"
	"math"
)

// Trace kinds used by the dashboard.
const (
	TypeBar     = "bar"
	TypeScatter = "scatter"
)

// Trace is a single renderable mark sequence. X, Y and CustomData accept any
// JSON-serializable sequence; builders plot against sequential integer x
// positions where calendar gaps must not distort spacing.
type Trace struct {
	Type             string            `json:"type"`
	X                interface{}       `json:"x,omitempty"`
	Y                interface{}       `json:"y,omitempty"`
	Name             string            `json:"name,omitempty"`
	Mode             string            `json:"mode,omitempty"`
	LegendGroup      string            `json:"legendgroup,omitempty"`
	LegendGroupTitle *LegendGroupTitle `json:"legendgrouptitle,omitempty"`
	LegendRank       int               `json:"legendrank,omitempty"`
	ShowLegend       *bool             `json:"showlegend,omitempty"`
	HoverTemplate    string            `json:"hovertemplate,omitempty"`
	HoverInfo        string            `json:"hoverinfo,omitempty"`
	CustomData       interface{}       `json:"customdata,omitempty"`
	Marker           *Marker           `json:"marker,omitempty"`
	Line             *Line             `json:"line,omitempty"`

	// XAxis/YAxis are subplot axis references ("x", "x2", ...). Grid.Place
	// assigns them; leave empty for single-panel figures.
	XAxis string `json:"xaxis,omitempty"`
	YAxis string `json:"yaxis,omitempty"`
}

// LegendGroupTitle titles a group of traces that toggle together.
type LegendGroupTitle struct {
	Text string `json:"text"`
}

// Marker styles bar fills and scatter points. Size may be a scalar or a
// per-point sequence (bubble charts).
type Marker struct {
	Color   string      `json:"color,omitempty"`
	Size    interface{} `json:"size,omitempty"`
	SizeRef float64     `json:"sizeref,omitempty"`
	Symbol  string      `json:"symbol,omitempty"`
	Opacity *float64    `json:"opacity,omitempty"`
	Line    *MarkerLine `json:"line,omitempty"`
}

// MarkerLine is the outline drawn around each mark.
type MarkerLine struct {
	Width *float64 `json:"width,omitempty"`
	Color string   `json:"color,omitempty"`
}

// Line styles the connecting line of a scatter trace.
type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
	Dash  string  `json:"dash,omitempty"`
}

// MarshalJSON renders NaN cells as null, the wire encoding for a missing
// observation. Builders carry gaps as NaN all the way from CSV parsing, and
// encoding/json rejects NaN outright.
func (t *Trace) MarshalJSON() ([]byte, error) {
	type trace Trace
	clone := trace(*t)
	clone.X = nullableNumbers(clone.X)
	clone.Y = nullableNumbers(clone.Y)
	if t.Marker != nil {
		if sizes, ok := t.Marker.Size.([]float64); ok {
			marker := *t.Marker
			marker.Size = nullableNumbers(sizes)
			clone.Marker = &marker
		}
	}
	return json.Marshal(&clone)
}

// nullableNumbers rewrites a float sequence holding NaN into a pointer slice
// whose gaps marshal as null. Anything else passes through untouched.
func nullableNumbers(v interface{}) interface{} {
	s, ok := v.([]float64)
	if !ok {
		return v
	}
	clean := true
	for _, f := range s {
		if math.IsNaN(f) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}
	out := make([]*float64, len(s))
	for i := range s {
		if !math.IsNaN(s[i]) {
			out[i] = &s[i]
		}
	}
	return out
}

// SetMarkerColor assigns a fill color, allocating the marker when needed.
func (t *Trace) SetMarkerColor(color string) {
	if t.Marker == nil {
		t.Marker = &Marker{}
	}
	t.Marker.Color = color
}
