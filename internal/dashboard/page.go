// Package dashboard composes the rainfall dashboard page: the markdown
// intro, the overview chart and every interactive figure rendered as
// embeddable HTML fragments.
package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/taruma/dash-hidrokit-rainfall/internal/figures"
	"github.com/taruma/dash-hidrokit-rainfall/internal/logger"
	"github.com/taruma/dash-hidrokit-rainfall/internal/timeseries"
)

const plotlyCDN = `<script src="https://cdn.plot.ly/plotly-2.27.0.min.js"></script>`

const introMarkdown = `## About This Dashboard

This dashboard explores a multi-station daily rainfall record. The figures
below summarize the record at **biweekly**, **monthly** and **yearly**
granularity, chart the maximum rainfall events per period, and check
inter-station consistency through double-mass curves.

> Rainfall totals are in millimeters. Gaps in the record are shown as
> missing, not zero.`

// Builder renders complete dashboard pages.
type Builder struct {
	figures *figures.Builder
	log     *logger.Logger
}

// NewBuilder creates a dashboard page builder.
func NewBuilder(fb *figures.Builder) *Builder {
	return &Builder{
		figures: fb,
		log:     logger.Global().WithComponent("dashboard"),
	}
}

// BuildPage renders the full dashboard HTML for a rainfall table.
func (b *Builder) BuildPage(table *timeseries.Table, generatedAt time.Time) (string, error) {
	b.log.Info("Building dashboard page", map[string]interface{}{
		"stations": table.NumStations(),
		"rows":     table.Len(),
	})

	intro := markdownToHTML(introMarkdown)

	overview, err := buildOverviewChart(table)
	if err != nil {
		b.log.Warn("Overview chart unavailable", map[string]interface{}{"error": err.Error()})
		overview = "<p>Overview chart unavailable</p>"
	}

	snippets, err := b.buildFigureSnippets(table)
	if err != nil {
		return "", err
	}

	return b.buildCompleteHTML(table, generatedAt, intro, overview, snippets), nil
}

// buildFigureSnippets renders every interactive figure of the dashboard.
func (b *Builder) buildFigureSnippets(table *timeseries.Table) ([]GraphSnippet, error) {
	var snippets []GraphSnippet

	raw := b.figures.RawRainfall(table, "stack")
	snippet, err := NewGraphSnippet("fig-rainfall", "Rainfall Each Station", raw)
	if err != nil {
		return nil, err
	}
	snippets = append(snippets, snippet)

	freqs := []timeseries.Frequency{timeseries.Biweekly, timeseries.Monthly, timeseries.Yearly}
	summaries, err := timeseries.SummarizeAll(table, freqs...)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize rainfall table: %w", err)
	}

	var periodSummaries []figures.PeriodSummary
	for i, s := range summaries {
		freq := freqs[i]
		period := figures.ParsePeriod(freq.String())
		periodSummaries = append(periodSummaries, figures.PeriodSummary{
			Summary: s,
			Period:  period,
		})

		id := fmt.Sprintf("fig-maxsum-%s", freq)
		title := fmt.Sprintf("Maximum and Total Rainfall (%s)", freq)
		g := b.figures.MaximumSum(s, figures.SummaryOptions{
			Title:  title,
			Period: period,
		})
		snippet, err := NewGraphSnippet(id, title, g)
		if err != nil {
			return nil, err
		}
		snippets = append(snippets, snippet)

		id = fmt.Sprintf("fig-raindry-%s", freq)
		title = fmt.Sprintf("Rainy and Dry Days (%s)", freq)
		g = b.figures.RainDry(s, figures.SummaryOptions{
			Title:  title,
			Period: period,
		})
		snippet, err = NewGraphSnippet(id, title, g)
		if err != nil {
			return nil, err
		}
		snippets = append(snippets, snippet)
	}

	events := b.figures.MaximumEvents(periodSummaries, "")
	snippet, err = NewGraphSnippet("fig-events", "Maximum Rainfall Events", events)
	if err != nil {
		return nil, err
	}
	snippets = append(snippets, snippet)

	cumsum := timeseries.CumulativeSum(table)
	for _, station := range cumsum.Stations() {
		id := fmt.Sprintf("fig-cumsum-%s", slugify(station))
		title := fmt.Sprintf("Cumulative Annual Rainfall (%s)", station)
		snippet, err := NewGraphSnippet(id, title, b.figures.CumulativeSum(cumsum, station))
		if err != nil {
			return nil, err
		}
		snippets = append(snippets, snippet)

		id = fmt.Sprintf("fig-consistency-%s", slugify(station))
		title = fmt.Sprintf("Consistency Curve (%s)", station)
		snippet, err = NewGraphSnippet(id, title, b.figures.Consistency(cumsum, station))
		if err != nil {
			return nil, err
		}
		snippets = append(snippets, snippet)
	}

	return snippets, nil
}

// markdownToHTML converts markdown to HTML
func markdownToHTML(markdownText string) string {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(markdownText))

	htmlFlags := html.CommonFlags | html.HrefTargetBlank
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})

	return string(markdown.Render(doc, renderer))
}

// slugify lowercases a station name for use in element IDs.
func slugify(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	return s
}

// buildCompleteHTML creates a complete HTML document
func (b *Builder) buildCompleteHTML(table *timeseries.Table, generatedAt time.Time, intro, overview string, snippets []GraphSnippet) string {
	var figuresHTML strings.Builder
	for _, s := range snippets {
		figuresHTML.WriteString("\n        <div class=\"chart-container\">\n            ")
		figuresHTML.WriteString(s.Div)
		figuresHTML.WriteString("\n            ")
		figuresHTML.WriteString(s.Script)
		figuresHTML.WriteString("\n        </div>\n")
	}

	index := table.Index()
	var firstYear, lastYear string
	if len(index) > 0 {
		firstYear = index[0].Format("2006")
		lastYear = index[len(index)-1].Format("2006")
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Rainfall Dashboard - %s</title>
    %s
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 1200px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f8f9fa;
        }
        .header {
            background: linear-gradient(135deg, #636efa 0%%, #2a3f5f 100%%);
            color: white;
            padding: 30px;
            border-radius: 10px;
            margin-bottom: 30px;
            text-align: center;
        }
        .header h1 {
            margin: 0;
            font-size: 2.5em;
        }
        .header .timestamp {
            opacity: 0.9;
            margin-top: 10px;
        }
        .summary-cards {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(250px, 1fr));
            gap: 20px;
            margin-bottom: 30px;
        }
        .card {
            background: white;
            padding: 20px;
            border-radius: 8px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
            border-left: 4px solid #636efa;
        }
        .card h3 {
            margin-top: 0;
            color: #636efa;
        }
        .metric {
            font-size: 1.5em;
            font-weight: bold;
            color: #333;
        }
        .content, .charts-section {
            background: white;
            padding: 30px;
            border-radius: 8px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
            margin-bottom: 30px;
        }
        .chart-container {
            margin-bottom: 40px;
        }
        .footer {
            text-align: center;
            color: #666;
            font-size: 0.9em;
            margin-top: 30px;
        }
        h1, h2, h3 { color: #333; }
        h2 { border-bottom: 2px solid #636efa; padding-bottom: 5px; }
        blockquote { border-left: 4px solid #636efa; margin: 0; padding-left: 20px; color: #666; }
        table { border-collapse: collapse; width: 100%%; margin: 20px 0; }
        th, td { border: 1px solid #ddd; padding: 12px; text-align: left; }
        th { background-color: #f8f9fa; font-weight: bold; }
    </style>
</head>
<body>
    <div class="header">
        <h1>🌧️ Rainfall Dashboard</h1>
        <div class="timestamp">Generated: %s</div>
    </div>

    <div class="summary-cards">
        <div class="card">
            <h3>Stations</h3>
            <div class="metric">%d</div>
            <div>In the record</div>
        </div>
        <div class="card">
            <h3>Daily Records</h3>
            <div class="metric">%d</div>
            <div>Per station</div>
        </div>
        <div class="card">
            <h3>Coverage</h3>
            <div class="metric">%s - %s</div>
            <div>Calendar years</div>
        </div>
    </div>

    <div class="content">
        %s
    </div>

    <div class="charts-section">
        <h2>📈 Monthly Overview</h2>
        <div class="chart-container">
            %s
        </div>
    </div>

    <div class="charts-section">
        <h2>📊 Rainfall Figures</h2>
        %s
    </div>

    <div class="footer">
        <p>Dashboard generated by the Rainfall Dashboard Service</p>
    </div>
</body>
</html>`,
		generatedAt.Format("2006-01-02"),
		plotlyCDN,
		generatedAt.Format("2006-01-02 15:04:05 UTC"),
		table.NumStations(),
		table.Len(),
		firstYear, lastYear,
		intro,
		overview,
		figuresHTML.String(),
	)
}
