package dashboard

import (
	"encoding/json"
	"fmt"

	"github.com/taruma/dash-hidrokit-rainfall/internal/plotly"
)

// GraphSnippet represents an embeddable Plotly figure fragment.
// Div should contain a single root <div id="..."></div>.
// Script should contain the <script>...</script> block that renders the
// figure into that div. HTML combines both for template substitution.
type GraphSnippet struct {
	ID     string
	Title  string
	Div    string
	Script string
	HTML   string
}

// NewGraphSnippet marshals a graph into an embeddable HTML fragment.
func NewGraphSnippet(id, title string, g *plotly.Graph) (GraphSnippet, error) {
	figJSON, err := json.Marshal(g.Figure)
	if err != nil {
		return GraphSnippet{}, fmt.Errorf("failed to marshal figure %s: %w", id, err)
	}
	cfgJSON, err := json.Marshal(g.Config)
	if err != nil {
		return GraphSnippet{}, fmt.Errorf("failed to marshal config %s: %w", id, err)
	}

	div := fmt.Sprintf("<div id=%q style=\"width:100%%;\"></div>", id)
	script := fmt.Sprintf(
		`<script>(function(){var el=document.getElementById('%s');if(!el)return;var fig=%s;Plotly.newPlot(el,fig.data,fig.layout,%s);})();</script>`,
		id, string(figJSON), string(cfgJSON))

	completeHTML := fmt.Sprintf(`<div class="chart-container">
	<h3>%s</h3>
	%s
</div>
%s`, title, div, script)

	return GraphSnippet{ID: id, Title: title, Div: div, Script: script, HTML: completeHTML}, nil
}
