package analysis

import (
	"data-analysis-agents/internal/agent/orchestrator"
	"data-analysis-agents/internal/conversation"
	"data-analysis-agents/internal/model"
)

// AnalyzeInput is one analysis request. Either FileContent (a fresh
// upload that starts a new session) or SessionID (an existing session)
// must be set.
type AnalyzeInput struct {
	SessionID   string
	Prompt      string
	AgentType   string // pdf|ppt|dashboard|data_analysis|analysis|auto|""
	FileName    string
	FileContent []byte
}

// ArtifactURLs groups generated file links by output kind, extracted
// from the agent's response text.
type ArtifactURLs struct {
	Images     []string `json:"images"`
	Reports    []string `json:"reports"`
	Decks      []string `json:"decks"`
	Dashboards []string `json:"dashboards"`
	Tables     []string `json:"tables"`
}

// AnalyzeOutput is one completed analysis turn.
type AnalyzeOutput struct {
	SessionID string
	Response  string
	Category  model.Category
	Source    orchestrator.Source
	Artifacts ArtifactURLs
}

// AgentDescriptor describes one available agent category.
type AgentDescriptor struct {
	Category    model.Category `json:"category"`
	DisplayName string         `json:"display_name"`
	Tools       []string       `json:"tools"`
}

// AgentInfoOutput describes a session's agents and conversation state.
type AgentInfoOutput struct {
	SessionID    string
	DatasetName  string
	Agents       []AgentDescriptor
	Conversation conversation.Stats
}
