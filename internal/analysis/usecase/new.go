package usecase

import (
	"errors"

	"data-analysis-agents/internal/analysis"
	"data-analysis-agents/internal/artifact"
	"data-analysis-agents/internal/session"
	"data-analysis-agents/pkg/log"
)

type implUseCase struct {
	l         log.Logger
	sessions  *session.Manager
	artifacts *artifact.Store
}

var _ analysis.UseCase = (*implUseCase)(nil)

// New creates the analysis use case.
func New(l log.Logger, sessions *session.Manager, artifacts *artifact.Store) (analysis.UseCase, error) {
	if l == nil {
		return nil, errors.New("analysis: logger is required")
	}
	if sessions == nil {
		return nil, errors.New("analysis: session manager is required")
	}
	if artifacts == nil {
		return nil, errors.New("analysis: artifact store is required")
	}
	return &implUseCase{
		l:         l,
		sessions:  sessions,
		artifacts: artifacts,
	}, nil
}
