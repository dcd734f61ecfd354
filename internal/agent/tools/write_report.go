package tools

import (
	"context"
	"fmt"

	"data-analysis-agents/internal/agent"
	"data-analysis-agents/internal/artifact"
)

// WriteReportTool turns markdown content into a formal report artifact.
type WriteReportTool struct {
	store *artifact.Store
}

// NewWriteReportTool creates a report writer bound to the artifact store.
func NewWriteReportTool(store *artifact.Store) agent.Tool {
	return &WriteReportTool{store: store}
}

func (t *WriteReportTool) Name() string {
	return "write_report"
}

func (t *WriteReportTool) Description() string {
	return "Write a formal report from markdown content (headings, tables, lists supported). Saves the report as a downloadable document and returns its URL."
}

func (t *WriteReportTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"title": map[string]interface{}{
				"type":        "string",
				"description": "Report title",
			},
			"content": map[string]interface{}{
				"type":        "string",
				"description": "Full report body in markdown",
			},
		},
		"required": []string{"title", "content"},
	}
}

func (t *WriteReportTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	title, _ := params["title"].(string)
	content, _ := params["content"].(string)
	if title == "" || content == "" {
		return nil, fmt.Errorf("title and content parameters are required")
	}

	body, err := artifact.RenderMarkdown(content)
	if err != nil {
		return nil, err
	}

	art, err := t.store.Save(artifact.KindReport, ".html", []byte(pageHTML(title, body)))
	if err != nil {
		return nil, fmt.Errorf("save report: %w", err)
	}

	return map[string]interface{}{
		"url":      art.URL,
		"filename": art.Filename,
	}, nil
}
