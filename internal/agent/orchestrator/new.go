package orchestrator

import (
	"errors"
	"sync"

	"data-analysis-agents/internal/conversation"
	"data-analysis-agents/internal/model"
	"data-analysis-agents/internal/router"
	pkgLog "data-analysis-agents/pkg/log"
)

// Orchestrator routes queries to category agents, serves cached answers,
// and falls back to the data analysis agent when a specialized agent
// fails. Agents are created lazily, one instance per category.
type Orchestrator struct {
	router  router.Router
	store   *conversation.Store
	factory RunnerFactory
	l       pkgLog.Logger

	mu      sync.Mutex
	runners map[model.Category]Runner
}

// Config bundles orchestrator dependencies.
type Config struct {
	Router  router.Router
	Store   *conversation.Store
	Factory RunnerFactory
	Logger  pkgLog.Logger
}

func (c Config) validate() error {
	if c.Router == nil {
		return errors.New("orchestrator: router is required")
	}
	if c.Store == nil {
		return errors.New("orchestrator: conversation store is required")
	}
	if c.Factory == nil {
		return errors.New("orchestrator: runner factory is required")
	}
	if c.Logger == nil {
		return errors.New("orchestrator: logger is required")
	}
	return nil
}

// New creates an orchestrator.
func New(cfg Config) (*Orchestrator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Orchestrator{
		router:  cfg.Router,
		store:   cfg.Store,
		factory: cfg.Factory,
		l:       cfg.Logger,
		runners: make(map[model.Category]Runner),
	}, nil
}
