package tools

import (
	"context"
	"fmt"
	"html"

	"data-analysis-agents/internal/agent"
	"data-analysis-agents/internal/artifact"
	"data-analysis-agents/internal/dataset"
)

// RenderChartTool aggregates a column and renders the result as a
// standalone chart artifact.
type RenderChartTool struct {
	ds    *dataset.Dataset
	store *artifact.Store
}

// NewRenderChartTool creates a chart tool bound to one dataset and store.
func NewRenderChartTool(ds *dataset.Dataset, store *artifact.Store) agent.Tool {
	return &RenderChartTool{ds: ds, store: store}
}

func (t *RenderChartTool) Name() string {
	return "render_chart"
}

func (t *RenderChartTool) Description() string {
	return "Render a bar, line, or pie chart from a grouped aggregation of the dataset. Saves the chart as a downloadable file and returns its URL."
}

func (t *RenderChartTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"chart_type": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"bar", "line", "pie"},
				"description": "Chart type",
			},
			"title": map[string]interface{}{
				"type":        "string",
				"description": "Chart title",
			},
			"group_by": map[string]interface{}{
				"type":        "string",
				"description": "Column to group by (x axis / slices)",
			},
			"value_column": map[string]interface{}{
				"type":        "string",
				"description": "Numeric column to reduce (not needed for count)",
			},
			"agg": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"sum", "mean", "count", "min", "max"},
				"description": "Aggregation function (default sum)",
			},
		},
		"required": []string{"chart_type", "group_by"},
	}
}

func (t *RenderChartTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	chartType, _ := params["chart_type"].(string)
	title, _ := params["title"].(string)

	groups, groupBy, fn, err := aggregateFromParams(t.ds, params)
	if err != nil {
		return nil, err
	}
	if title == "" {
		title = fmt.Sprintf("%s by %s", fn, groupBy)
	}

	svg, err := chartSVG(chartType, title, groups)
	if err != nil {
		return nil, err
	}

	body := fmt.Sprintf(`<h1>%s</h1><figure>%s</figure>`, html.EscapeString(title), svg)
	art, err := t.store.Save(artifact.KindChart, ".html", []byte(pageHTML(title, body)))
	if err != nil {
		return nil, fmt.Errorf("save chart: %w", err)
	}

	return map[string]interface{}{
		"url":      art.URL,
		"filename": art.Filename,
		"points":   len(groups),
	}, nil
}
