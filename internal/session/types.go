package session

import (
	"context"
	"sync"
	"time"

	"data-analysis-agents/internal/agent/orchestrator"
	"data-analysis-agents/internal/conversation"
	"data-analysis-agents/internal/dataset"
	"data-analysis-agents/internal/model"
)

// Session binds one loaded dataset to its orchestrator and conversation
// state. One analyze runs at a time per session; concurrent requests for
// the same session serialize on the mutex.
type Session struct {
	ID        string
	Dataset   *dataset.Dataset
	Stats     *dataset.Stats
	CreatedAt time.Time

	conv *conversation.Store
	orch *orchestrator.Orchestrator
	mu   sync.Mutex
}

// Analyze runs one query against the session's orchestrator.
func (s *Session) Analyze(ctx context.Context, query string, override model.Category) (orchestrator.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.orch.Analyze(ctx, query, override)
}

// History returns the session's recorded turns, oldest first.
func (s *Session) History() []conversation.HistoryEntry {
	return s.conv.History()
}

// ConversationStats returns history and cache counts.
func (s *Session) ConversationStats() conversation.Stats {
	return s.conv.Stats()
}

// ClearCache empties the response cache, keeping history.
func (s *Session) ClearCache() {
	s.conv.ClearCache()
}

// ClearAll empties both the response cache and the history.
func (s *Session) ClearAll() {
	s.conv.ClearAll()
}
