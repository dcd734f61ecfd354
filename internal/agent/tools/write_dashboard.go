package tools

import (
	"context"
	"fmt"
	"html"
	"strings"

	"data-analysis-agents/internal/agent"
	"data-analysis-agents/internal/artifact"
)

// WriteDashboardTool turns KPI cards plus a narrative into a dashboard
// artifact.
type WriteDashboardTool struct {
	store *artifact.Store
}

// NewWriteDashboardTool creates a dashboard writer bound to the artifact store.
func NewWriteDashboardTool(store *artifact.Store) agent.Tool {
	return &WriteDashboardTool{store: store}
}

func (t *WriteDashboardTool) Name() string {
	return "write_dashboard"
}

func (t *WriteDashboardTool) Description() string {
	return "Write an overview dashboard from a list of KPI cards (label + value) and an optional markdown narrative. Saves the dashboard as a downloadable file and returns its URL."
}

func (t *WriteDashboardTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"title": map[string]interface{}{
				"type":        "string",
				"description": "Dashboard title",
			},
			"kpis": map[string]interface{}{
				"type":        "array",
				"description": "Headline metrics",
				"items": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"label": map[string]interface{}{
							"type":        "string",
							"description": "Metric name",
						},
						"value": map[string]interface{}{
							"type":        "string",
							"description": "Formatted metric value",
						},
					},
					"required": []string{"label", "value"},
				},
			},
			"narrative": map[string]interface{}{
				"type":        "string",
				"description": "Supporting commentary in markdown",
			},
		},
		"required": []string{"title", "kpis"},
	}
}

func (t *WriteDashboardTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	title, _ := params["title"].(string)
	rawKPIs, _ := params["kpis"].([]interface{})
	if title == "" || len(rawKPIs) == 0 {
		return nil, fmt.Errorf("title and at least one kpi are required")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<h1>%s</h1>", html.EscapeString(title))
	b.WriteString(`<div class="kpi-grid">`)

	for i, raw := range rawKPIs {
		kpi, ok := raw.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("kpi %d is not an object", i+1)
		}
		label, _ := kpi["label"].(string)
		value := fmt.Sprintf("%v", kpi["value"])

		fmt.Fprintf(&b, `<div class="kpi"><div class="value">%s</div><div class="label">%s</div></div>`,
			html.EscapeString(value), html.EscapeString(label))
	}
	b.WriteString(`</div>`)

	if narrative, _ := params["narrative"].(string); narrative != "" {
		rendered, err := artifact.RenderMarkdown(narrative)
		if err != nil {
			return nil, err
		}
		b.WriteString(rendered)
	}

	art, err := t.store.Save(artifact.KindDashboard, ".html", []byte(pageHTML(title, b.String())))
	if err != nil {
		return nil, fmt.Errorf("save dashboard: %w", err)
	}

	return map[string]interface{}{
		"url":      art.URL,
		"filename": art.Filename,
		"kpis":     len(rawKPIs),
	}, nil
}
