package http

import (
	"time"

	"data-analysis-agents/internal/analysis"
	"data-analysis-agents/internal/conversation"
)

type artifactsResp struct {
	Images     []string `json:"images"`
	Reports    []string `json:"reports"`
	Decks      []string `json:"decks"`
	Dashboards []string `json:"dashboards"`
	Tables     []string `json:"tables"`
}

type analyzeResp struct {
	SessionID string        `json:"session_id"`
	Response  string        `json:"response"`
	Category  string        `json:"category"`
	Source    string        `json:"source"`
	Artifacts artifactsResp `json:"artifacts"`
}

func (h *handler) newAnalyzeResp(out analysis.AnalyzeOutput) analyzeResp {
	return analyzeResp{
		SessionID: out.SessionID,
		Response:  out.Response,
		Category:  string(out.Category),
		Source:    string(out.Source),
		Artifacts: artifactsResp{
			Images:     emptyIfNil(out.Artifacts.Images),
			Reports:    emptyIfNil(out.Artifacts.Reports),
			Decks:      emptyIfNil(out.Artifacts.Decks),
			Dashboards: emptyIfNil(out.Artifacts.Dashboards),
			Tables:     emptyIfNil(out.Artifacts.Tables),
		},
	}
}

type historyEntryResp struct {
	Query     string    `json:"query"`
	Response  string    `json:"response"`
	Category  string    `json:"category"`
	Timestamp time.Time `json:"timestamp"`
}

type historyResp struct {
	SessionID string             `json:"session_id"`
	Entries   []historyEntryResp `json:"entries"`
}

func (h *handler) newHistoryResp(sessionID string, entries []conversation.HistoryEntry) historyResp {
	resp := historyResp{
		SessionID: sessionID,
		Entries:   make([]historyEntryResp, len(entries)),
	}
	for i, e := range entries {
		resp.Entries[i] = historyEntryResp{
			Query:     e.Query,
			Response:  e.Response,
			Category:  string(e.Category),
			Timestamp: e.Timestamp,
		}
	}
	return resp
}

type agentResp struct {
	Category    string   `json:"category"`
	DisplayName string   `json:"display_name"`
	Tools       []string `json:"tools"`
}

type agentInfoResp struct {
	SessionID    string             `json:"session_id"`
	DatasetName  string             `json:"dataset_name"`
	Agents       []agentResp        `json:"agents"`
	Conversation conversation.Stats `json:"conversation"`
}

func (h *handler) newAgentInfoResp(out analysis.AgentInfoOutput) agentInfoResp {
	agents := make([]agentResp, len(out.Agents))
	for i, a := range out.Agents {
		agents[i] = agentResp{
			Category:    string(a.Category),
			DisplayName: a.DisplayName,
			Tools:       a.Tools,
		}
	}
	return agentInfoResp{
		SessionID:    out.SessionID,
		DatasetName:  out.DatasetName,
		Agents:       agents,
		Conversation: out.Conversation,
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
