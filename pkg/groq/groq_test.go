package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	t.Run("Missing API Key", func(t *testing.T) {
		cfg := Config{}
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for missing API key")
		}
	})

	t.Run("Defaults Applied", func(t *testing.T) {
		cfg := Config{APIKey: "test-key"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Model != DefaultModel {
			t.Errorf("expected default model, got %s", cfg.Model)
		}
		if cfg.BaseURL != DefaultBaseURL {
			t.Errorf("expected default base URL, got %s", cfg.BaseURL)
		}
		if cfg.HTTPClient == nil {
			t.Error("expected default HTTP client")
		}
	})
}

func TestGenerateContent(t *testing.T) {
	t.Run("Text Response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/chat/completions" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
				t.Errorf("unexpected auth header: %s", got)
			}

			var req openAIRequest
			json.NewDecoder(r.Body).Decode(&req)
			if len(req.Messages) != 2 {
				t.Errorf("expected system + user message, got %d", len(req.Messages))
			}
			if req.Messages[0].Role != "system" {
				t.Errorf("expected first message role system, got %s", req.Messages[0].Role)
			}

			json.NewEncoder(w).Encode(openAIResponse{
				Choices: []openAIChoice{
					{Message: openAIMessage{Role: "assistant", Content: "42 rows"}},
				},
				Usage: openAIUsage{PromptTokens: 10, CompletionTokens: 3, TotalTokens: 13},
			})
		}))
		defer srv.Close()

		client, err := New(Config{APIKey: "test-key", BaseURL: srv.URL})
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		resp, err := client.GenerateContent(context.Background(), &Request{
			SystemInstruction: &Content{Parts: []Part{{Text: "You analyze data."}}},
			Messages:          []Content{{Role: "user", Parts: []Part{{Text: "How many rows?"}}}},
		})
		if err != nil {
			t.Fatalf("GenerateContent: %v", err)
		}

		if len(resp.Content.Parts) != 1 || resp.Content.Parts[0].Text != "42 rows" {
			t.Errorf("unexpected response content: %+v", resp.Content)
		}
		if resp.Usage.TotalTokens != 13 {
			t.Errorf("expected 13 total tokens, got %d", resp.Usage.TotalTokens)
		}
	})

	t.Run("Tool Call Response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(openAIResponse{
				Choices: []openAIChoice{{
					Message: openAIMessage{
						Role: "assistant",
						ToolCalls: []openAIToolCall{{
							ID:   "call_1",
							Type: "function",
							Function: openAIFunctionCall{
								Name:      "query_dataset",
								Arguments: `{"operation":"overview"}`,
							},
						}},
					},
				}},
			})
		}))
		defer srv.Close()

		client, _ := New(Config{APIKey: "test-key", BaseURL: srv.URL})

		resp, err := client.GenerateContent(context.Background(), &Request{
			Messages: []Content{{Role: "user", Parts: []Part{{Text: "describe my data"}}}},
			Tools:    []Tool{{Name: "query_dataset", Description: "query", Parameters: map[string]interface{}{}}},
		})
		if err != nil {
			t.Fatalf("GenerateContent: %v", err)
		}

		if len(resp.Content.Parts) != 1 || resp.Content.Parts[0].FunctionCall == nil {
			t.Fatalf("expected function call part, got %+v", resp.Content.Parts)
		}
		fc := resp.Content.Parts[0].FunctionCall
		if fc.Name != "query_dataset" {
			t.Errorf("unexpected tool name: %s", fc.Name)
		}
		if fc.Args["operation"] != "overview" {
			t.Errorf("unexpected args: %v", fc.Args)
		}
	})

	t.Run("API Error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":"rate limited"}`))
		}))
		defer srv.Close()

		client, _ := New(Config{APIKey: "test-key", BaseURL: srv.URL})
		_, err := client.GenerateContent(context.Background(), &Request{
			Messages: []Content{{Role: "user", Parts: []Part{{Text: "hi"}}}},
		})
		if err == nil {
			t.Error("expected error on 429")
		}
	})
}
