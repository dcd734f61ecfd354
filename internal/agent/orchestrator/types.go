package orchestrator

import (
	"context"

	"data-analysis-agents/internal/model"
)

// Source tells where a response came from.
type Source string

const (
	SourceCache    Source = "cache"
	SourcePrimary  Source = "primary"
	SourceFallback Source = "fallback"
)

// Result is one completed analysis turn.
type Result struct {
	Response string         `json:"response"`
	Category model.Category `json:"category"`
	Source   Source         `json:"source"`
}

// Runner is the generation surface of one category agent.
// Satisfied by *generator.Generator.
type Runner interface {
	Run(ctx context.Context, query string) (string, error)
}

// RunnerFactory builds the runner for a category on first use.
type RunnerFactory func(category model.Category) (Runner, error)
