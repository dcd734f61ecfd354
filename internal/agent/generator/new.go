package generator

import (
	"context"
	"errors"

	"data-analysis-agents/internal/agent"
	"data-analysis-agents/internal/conversation"
	"data-analysis-agents/internal/dataset"
	"data-analysis-agents/internal/model"
	"data-analysis-agents/pkg/llmprovider"
	pkgLog "data-analysis-agents/pkg/log"
)

// LLM is the generation surface the loop depends on. Satisfied by
// *llmprovider.Manager.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Generator runs one category's tool-calling loop against the LLM.
type Generator struct {
	category    model.Category
	llm         LLM
	registry    *agent.ToolRegistry
	stats       *dataset.Stats
	history     *conversation.Store
	l           pkgLog.Logger
	maxSteps    int
	temperature float64
}

// Config bundles generator dependencies.
type Config struct {
	Category    model.Category
	LLM         LLM
	Registry    *agent.ToolRegistry
	Stats       *dataset.Stats
	History     *conversation.Store
	Logger      pkgLog.Logger
	MaxSteps    int
	Temperature float64
}

func (c Config) validate() error {
	if !c.Category.Valid() {
		return errors.New("generator: invalid category")
	}
	if c.LLM == nil {
		return errors.New("generator: llm is required")
	}
	if c.Registry == nil {
		return errors.New("generator: tool registry is required")
	}
	if c.Logger == nil {
		return errors.New("generator: logger is required")
	}
	return nil
}

// New creates a generator for one category.
func New(cfg Config) (*Generator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = DefaultMaxSteps
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}

	return &Generator{
		category:    cfg.Category,
		llm:         cfg.LLM,
		registry:    cfg.Registry,
		stats:       cfg.Stats,
		history:     cfg.History,
		l:           cfg.Logger,
		maxSteps:    cfg.MaxSteps,
		temperature: cfg.Temperature,
	}, nil
}
