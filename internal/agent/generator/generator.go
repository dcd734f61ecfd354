package generator

import (
	"context"
	"fmt"
	"strings"

	"data-analysis-agents/pkg/llmprovider"
)

// Run executes the tool-calling loop for one query: the LLM reasons,
// calls tools, observes results, and eventually answers in plain text.
func (g *Generator) Run(ctx context.Context, query string) (string, error) {
	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: g.systemPrompt()}},
		},
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: query}}},
		},
		Tools:       g.registry.ToFunctionDefinitions(),
		Temperature: g.temperature,
	}

	for step := 0; step < g.maxSteps; step++ {
		g.l.Infof(ctx, "%s agent step %d/%d", g.category, step+1, g.maxSteps)

		resp, err := g.llm.GenerateContent(ctx, req)
		if err != nil {
			return "", fmt.Errorf("%s agent LLM error at step %d: %w", g.category, step+1, err)
		}
		if len(resp.Content.Parts) == 0 {
			return "", fmt.Errorf("%s agent: empty LLM response", g.category)
		}

		part := resp.Content.Parts[0]
		if part.FunctionCall == nil {
			g.l.Infof(ctx, "%s agent finished at step %d", g.category, step+1)
			return part.Text, nil
		}

		toolName := part.FunctionCall.Name
		g.l.Infof(ctx, "%s agent calling tool: %s", g.category, toolName)

		var toolResult interface{}
		if tool, ok := g.registry.Get(toolName); !ok {
			g.l.Errorf(ctx, "Tool %s not found", toolName)
			toolResult = map[string]string{"error": "tool not found"}
		} else if res, err := tool.Execute(ctx, part.FunctionCall.Args); err != nil {
			g.l.Errorf(ctx, "Tool %s failed: %v", toolName, err)
			toolResult = map[string]string{"error": err.Error()}
		} else {
			toolResult = res
		}

		req.Messages = append(req.Messages, llmprovider.Message{
			Role:  "assistant",
			Parts: []llmprovider.Part{{FunctionCall: part.FunctionCall}},
		})
		req.Messages = append(req.Messages, llmprovider.Message{
			Role: "user",
			Parts: []llmprovider.Part{{
				FunctionResponse: &llmprovider.FunctionResponse{
					Name:     toolName,
					Response: toolResult,
				},
			}},
		})
	}

	g.l.Warnf(ctx, "%s agent exceeded max steps (%d)", g.category, g.maxSteps)
	return maxStepsMessage, nil
}

func (g *Generator) systemPrompt() string {
	var b strings.Builder
	b.WriteString(basePrompt)
	b.WriteString("\n\n")
	b.WriteString(categoryPrompts[g.category])

	if g.stats != nil {
		b.WriteString("\n\nDataset profile:\n")
		b.WriteString(g.stats.String())
	}

	if g.history != nil {
		if recent := g.history.RecentContext(recentContextTurns); recent != "" {
			b.WriteString("\n\nRecent conversation:\n")
			b.WriteString(recent)
		}
	}

	return b.String()
}
