package llmprovider

import (
	"context"

	"data-analysis-agents/pkg/groq"
)

// GroqAdapter adapts pkg/groq to the llmprovider.Provider interface.
// It also serves any OpenAI-compatible endpoint via a custom base URL.
type GroqAdapter struct {
	client groq.IGroq
	name   string
}

// NewGroqAdapter creates a new Groq adapter
func NewGroqAdapter(client groq.IGroq) *GroqAdapter {
	return &GroqAdapter{client: client, name: "groq"}
}

// NewOpenAICompatAdapter wraps an OpenAI-compatible endpoint under a custom provider name
func NewOpenAICompatAdapter(client groq.IGroq, name string) *GroqAdapter {
	return &GroqAdapter{client: client, name: name}
}

// GenerateContent implements Provider interface
func (a *GroqAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	groqReq := &groq.Request{
		SystemInstruction: convertToGroqContent(req.SystemInstruction),
		Messages:          convertToGroqContents(req.Messages),
		Tools:             convertToGroqTools(req.Tools),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, groqReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      convertFromGroqContent(resp.Content),
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GroqAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *GroqAdapter) Model() string {
	return a.client.Model()
}

func convertToGroqContent(msg *Message) *groq.Content {
	if msg == nil {
		return nil
	}
	parts := make([]groq.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = groq.Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &groq.FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &groq.FunctionResponse{
				Name:     p.FunctionResponse.Name,
				Response: p.FunctionResponse.Response,
			}
		}
	}
	return &groq.Content{Role: msg.Role, Parts: parts}
}

func convertToGroqContents(msgs []Message) []groq.Content {
	contents := make([]groq.Content, len(msgs))
	for i, msg := range msgs {
		contents[i] = *convertToGroqContent(&msg)
	}
	return contents
}

func convertToGroqTools(tools []Tool) []groq.Tool {
	groqTools := make([]groq.Tool, len(tools))
	for i, t := range tools {
		groqTools[i] = groq.Tool{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		}
	}
	return groqTools
}

func convertFromGroqContent(content groq.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &FunctionResponse{
				Name:     p.FunctionResponse.Name,
				Response: p.FunctionResponse.Response,
			}
		}
	}
	return Message{Role: content.Role, Parts: parts}
}
