package usecase

import (
	"context"

	"data-analysis-agents/internal/agent/tools"
	"data-analysis-agents/internal/analysis"
	"data-analysis-agents/internal/conversation"
	"data-analysis-agents/internal/model"
)

// History returns a session's recorded turns, oldest first.
func (uc *implUseCase) History(ctx context.Context, sessionID string) ([]conversation.HistoryEntry, error) {
	sess, err := uc.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.History(), nil
}

// ClearHistory empties a session's history and cache.
func (uc *implUseCase) ClearHistory(ctx context.Context, sessionID string) error {
	sess, err := uc.sessions.Get(sessionID)
	if err != nil {
		return err
	}
	sess.ClearAll()
	uc.l.Infof(ctx, "cleared history and cache for session %s", sessionID)
	return nil
}

// ClearCache empties a session's response cache, keeping history.
func (uc *implUseCase) ClearCache(ctx context.Context, sessionID string) error {
	sess, err := uc.sessions.Get(sessionID)
	if err != nil {
		return err
	}
	sess.ClearCache()
	uc.l.Infof(ctx, "cleared cache for session %s", sessionID)
	return nil
}

// AgentInfo describes the session's available agents and conversation
// state.
func (uc *implUseCase) AgentInfo(ctx context.Context, sessionID string) (analysis.AgentInfoOutput, error) {
	sess, err := uc.sessions.Get(sessionID)
	if err != nil {
		return analysis.AgentInfoOutput{}, err
	}

	agents := make([]analysis.AgentDescriptor, 0, len(model.Categories()))
	for _, category := range model.Categories() {
		registry := tools.ForCategory(category, sess.Dataset, uc.artifacts)

		names := make([]string, 0, len(registry.List()))
		for _, tool := range registry.List() {
			names = append(names, tool.Name())
		}

		agents = append(agents, analysis.AgentDescriptor{
			Category:    category,
			DisplayName: category.DisplayName(),
			Tools:       names,
		})
	}

	return analysis.AgentInfoOutput{
		SessionID:    sess.ID,
		DatasetName:  sess.Dataset.Name,
		Agents:       agents,
		Conversation: sess.ConversationStats(),
	}, nil
}

// ResolveDownload locates a generated artifact by filename.
func (uc *implUseCase) ResolveDownload(filename string) (string, error) {
	return uc.artifacts.Resolve(filename)
}
