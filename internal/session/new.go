package session

import (
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"data-analysis-agents/internal/agent/generator"
	"data-analysis-agents/internal/artifact"
	"data-analysis-agents/pkg/log"
)

const (
	DefaultMaxSessions = 64
	DefaultTTL         = 30 * time.Minute
)

// Manager creates and looks up sessions. Sessions live in an expirable
// LRU: idle sessions age out after the TTL and the oldest session is
// evicted when the capacity is reached.
type Manager struct {
	sessions *expirable.LRU[string, *Session]
	deps     Deps
}

// Deps bundles what every session's agents need. LLM is satisfied by
// *llmprovider.Manager.
type Deps struct {
	LLM         generator.LLM
	Artifacts   *artifact.Store
	Logger      log.Logger
	MaxSessions int
	TTL         time.Duration
	MaxHistory  int
	MaxSteps    int
	Temperature float64
}

func (d Deps) validate() error {
	if d.LLM == nil {
		return errors.New("session: llm is required")
	}
	if d.Artifacts == nil {
		return errors.New("session: artifact store is required")
	}
	if d.Logger == nil {
		return errors.New("session: logger is required")
	}
	return nil
}

// NewManager creates a session manager.
func NewManager(deps Deps) (*Manager, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}

	if deps.MaxSessions <= 0 {
		deps.MaxSessions = DefaultMaxSessions
	}
	if deps.TTL <= 0 {
		deps.TTL = DefaultTTL
	}

	return &Manager{
		sessions: expirable.NewLRU[string, *Session](deps.MaxSessions, nil, deps.TTL),
		deps:     deps,
	}, nil
}
