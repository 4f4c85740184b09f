package plotly

import (
	"encoding/json"
	"strconv"
)

// Layout holds figure-level styling plus the numbered axis table. Plotly keys
// subplot axes as "xaxis", "xaxis2", ... so the axis table is flattened into
// the top-level object during marshaling.
type Layout struct {
	Title         *Title        `json:"title,omitempty"`
	BarMode       string        `json:"barmode,omitempty"`
	BarGap        *float64      `json:"bargap,omitempty"`
	HoverMode     string        `json:"hovermode,omitempty"`
	HoverDistance int           `json:"hoverdistance,omitempty"`
	DragMode      string        `json:"dragmode,omitempty"`
	Height        int           `json:"height,omitempty"`
	ShowLegend    *bool         `json:"showlegend,omitempty"`
	Legend        *Legend       `json:"legend,omitempty"`
	Margin        *Margin       `json:"margin,omitempty"`
	Images        []*Image      `json:"images,omitempty"`
	Annotations   []*Annotation `json:"annotations,omitempty"`

	axes map[string]*Axis
}

// NewLayout returns an empty layout.
func NewLayout() *Layout {
	return &Layout{axes: make(map[string]*Axis)}
}

// Axis returns the axis at the given key ("xaxis", "yaxis3", ...), creating
// it on first use.
func (l *Layout) Axis(key string) *Axis {
	if l.axes == nil {
		l.axes = make(map[string]*Axis)
	}
	ax, ok := l.axes[key]
	if !ok {
		ax = &Axis{}
		l.axes[key] = ax
	}
	return ax
}

// XAxis returns the x axis for subplot row n (1-based).
func (l *Layout) XAxis(n int) *Axis { return l.Axis(AxisKey("x", n)) }

// YAxis returns the y axis for subplot row n (1-based).
func (l *Layout) YAxis(n int) *Axis { return l.Axis(AxisKey("y", n)) }

// MarshalJSON flattens the axis table into the layout object.
func (l *Layout) MarshalJSON() ([]byte, error) {
	type plain Layout
	base, err := json.Marshal((*plain)(l))
	if err != nil {
		return nil, err
	}
	if len(l.axes) == 0 {
		return base, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for key, ax := range l.axes {
		raw, err := json.Marshal(ax)
		if err != nil {
			return nil, err
		}
		merged[key] = raw
	}
	return json.Marshal(merged)
}

// AxisKey builds the layout key for an axis: AxisKey("x", 1) == "xaxis",
// AxisKey("y", 3) == "yaxis3".
func AxisKey(prefix string, n int) string {
	return prefix + "axis" + axisSuffix(n)
}

// AxisRef builds the trace-side axis reference: AxisRef("x", 1) == "x",
// AxisRef("y", 3) == "y3".
func AxisRef(prefix string, n int) string {
	return prefix + axisSuffix(n)
}

func axisSuffix(n int) string {
	if n <= 1 {
		return ""
	}
	return strconv.Itoa(n)
}

// Axis describes one x or y axis of a (sub)plot.
type Axis struct {
	Title          *AxisTitle `json:"title,omitempty"`
	TickVals       []int      `json:"tickvals,omitempty"`
	TickText       []string   `json:"ticktext,omitempty"`
	TickFormat     string     `json:"tickformat,omitempty"`
	TickLabelStep  int        `json:"ticklabelstep,omitempty"`
	GridColor      string     `json:"gridcolor,omitempty"`
	GridWidth      int        `json:"gridwidth,omitempty"`
	ShowGrid       *bool      `json:"showgrid,omitempty"`
	ShowTickLabels *bool      `json:"showticklabels,omitempty"`
	ZeroLine       *bool      `json:"zeroline,omitempty"`
	FixedRange     bool       `json:"fixedrange,omitempty"`
	Range          []float64  `json:"range,omitempty"`
	Domain         []float64  `json:"domain,omitempty"`
	Anchor         string     `json:"anchor,omitempty"`
	Matches        string     `json:"matches,omitempty"`
	ShowSpikes     *bool      `json:"showspikes,omitempty"`
	SpikeSnap      string     `json:"spikesnap,omitempty"`
	SpikeMode      string     `json:"spikemode,omitempty"`
	SpikeThickness int        `json:"spikethickness,omitempty"`
}

// SetTitle sets the axis title text.
func (a *Axis) SetTitle(text string) *Axis {
	a.Title = &AxisTitle{Text: text}
	return a
}

// AxisTitle is the axis title object.
type AxisTitle struct {
	Text string `json:"text"`
}

// Title is the figure title object.
type Title struct {
	Text string   `json:"text"`
	Pad  *Pad     `json:"pad,omitempty"`
	X    *float64 `json:"x,omitempty"`
}

// Pad is a padding object in pixels.
type Pad struct {
	T *int `json:"t,omitempty"`
	B *int `json:"b,omitempty"`
	L *int `json:"l,omitempty"`
	R *int `json:"r,omitempty"`
}

// Legend styles the figure legend.
type Legend struct {
	Title      *LegendTitle `json:"title,omitempty"`
	ItemSizing string       `json:"itemsizing,omitempty"`
	GroupClick string       `json:"groupclick,omitempty"`
}

// LegendTitle is the legend title object.
type LegendTitle struct {
	Text string `json:"text"`
}

// Margin is the figure margin object.
type Margin struct {
	T *int `json:"t,omitempty"`
	B *int `json:"b,omitempty"`
	L *int `json:"l,omitempty"`
	R *int `json:"r,omitempty"`
}

// Image is a layout image such as the watermark overlay.
type Image struct {
	Source  string  `json:"source"`
	XRef    string  `json:"xref"`
	YRef    string  `json:"yref"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	SizeX   float64 `json:"sizex"`
	SizeY   float64 `json:"sizey"`
	XAnchor string  `json:"xanchor"`
	YAnchor string  `json:"yanchor"`
	Name    string  `json:"name,omitempty"`
	Layer   string  `json:"layer,omitempty"`
	Opacity float64 `json:"opacity,omitempty"`
}

// Annotation is a layout annotation (subplot titles, placeholder text).
type Annotation struct {
	Text      string  `json:"text"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	XRef      string  `json:"xref,omitempty"`
	YRef      string  `json:"yref,omitempty"`
	XAnchor   string  `json:"xanchor,omitempty"`
	YAnchor   string  `json:"yanchor,omitempty"`
	ShowArrow *bool   `json:"showarrow,omitempty"`
	Opacity   float64 `json:"opacity,omitempty"`
	Font      *Font   `json:"font,omitempty"`
	Name      string  `json:"name,omitempty"`
}

// Font styles annotation text.
type Font struct {
	Size  int    `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
}
