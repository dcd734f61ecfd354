package tools

import (
	"context"
	"fmt"
	"html"
	"strings"

	"data-analysis-agents/internal/agent"
	"data-analysis-agents/internal/artifact"
)

// WriteDeckTool turns titled slide sections into a presentation artifact.
type WriteDeckTool struct {
	store *artifact.Store
}

// NewWriteDeckTool creates a deck writer bound to the artifact store.
func NewWriteDeckTool(store *artifact.Store) agent.Tool {
	return &WriteDeckTool{store: store}
}

func (t *WriteDeckTool) Name() string {
	return "write_deck"
}

func (t *WriteDeckTool) Description() string {
	return "Write a slide presentation from a list of slides, each with a title and markdown content. Saves the deck as a downloadable file and returns its URL."
}

func (t *WriteDeckTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"title": map[string]interface{}{
				"type":        "string",
				"description": "Presentation title",
			},
			"slides": map[string]interface{}{
				"type":        "array",
				"description": "Slides in order",
				"items": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"title": map[string]interface{}{
							"type":        "string",
							"description": "Slide title",
						},
						"content": map[string]interface{}{
							"type":        "string",
							"description": "Slide body in markdown (bullets preferred)",
						},
					},
					"required": []string{"title"},
				},
			},
		},
		"required": []string{"title", "slides"},
	}
}

func (t *WriteDeckTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	title, _ := params["title"].(string)
	rawSlides, _ := params["slides"].([]interface{})
	if title == "" || len(rawSlides) == 0 {
		return nil, fmt.Errorf("title and at least one slide are required")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<h1>%s</h1>", html.EscapeString(title))

	for i, raw := range rawSlides {
		slide, ok := raw.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("slide %d is not an object", i+1)
		}
		slideTitle, _ := slide["title"].(string)
		content, _ := slide["content"].(string)

		body := ""
		if content != "" {
			rendered, err := artifact.RenderMarkdown(content)
			if err != nil {
				return nil, err
			}
			body = rendered
		}

		fmt.Fprintf(&b, `<section class="slide"><h2>%d. %s</h2>%s</section>`,
			i+1, html.EscapeString(slideTitle), body)
	}

	art, err := t.store.Save(artifact.KindDeck, ".html", []byte(pageHTML(title, b.String())))
	if err != nil {
		return nil, fmt.Errorf("save deck: %w", err)
	}

	return map[string]interface{}{
		"url":      art.URL,
		"filename": art.Filename,
		"slides":   len(rawSlides),
	}, nil
}
