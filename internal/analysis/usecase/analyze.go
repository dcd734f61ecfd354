package usecase

import (
	"context"
	"fmt"

	"data-analysis-agents/internal/analysis"
	"data-analysis-agents/internal/dataset"
	"data-analysis-agents/internal/model"
	"data-analysis-agents/internal/session"
)

// Analyze resolves the target session (creating one when a file is
// uploaded) and runs the query through its orchestrator.
func (uc *implUseCase) Analyze(ctx context.Context, input analysis.AnalyzeInput) (analysis.AnalyzeOutput, error) {
	if input.Prompt == "" {
		return analysis.AnalyzeOutput{}, analysis.ErrPromptRequired
	}

	sess, err := uc.resolveSession(ctx, input)
	if err != nil {
		return analysis.AnalyzeOutput{}, err
	}

	override, _ := model.ParseCategory(input.AgentType)

	result, err := sess.Analyze(ctx, input.Prompt, override)
	if err != nil {
		return analysis.AnalyzeOutput{}, err
	}

	return analysis.AnalyzeOutput{
		SessionID: sess.ID,
		Response:  result.Response,
		Category:  result.Category,
		Source:    result.Source,
		Artifacts: extractArtifacts(result.Response),
	}, nil
}

func (uc *implUseCase) resolveSession(ctx context.Context, input analysis.AnalyzeInput) (*session.Session, error) {
	if len(input.FileContent) > 0 {
		ds, err := dataset.LoadBytes(input.FileName, input.FileContent)
		if err != nil {
			return nil, fmt.Errorf("load dataset: %w", err)
		}

		sess, err := uc.sessions.Create(ds)
		if err != nil {
			return nil, err
		}
		uc.l.Infof(ctx, "created session %s for dataset %s (%d rows)", sess.ID, ds.Name, ds.RowCount())
		return sess, nil
	}

	if input.SessionID != "" {
		return uc.sessions.Get(input.SessionID)
	}

	return nil, analysis.ErrNoDataset
}
