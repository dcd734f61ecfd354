package analysis

import (
	"context"

	"data-analysis-agents/internal/conversation"
)

// UseCase is the analysis business logic surface.
type UseCase interface {
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)
	History(ctx context.Context, sessionID string) ([]conversation.HistoryEntry, error)
	ClearHistory(ctx context.Context, sessionID string) error
	ClearCache(ctx context.Context, sessionID string) error
	AgentInfo(ctx context.Context, sessionID string) (AgentInfoOutput, error)
	ResolveDownload(filename string) (string, error)
}
