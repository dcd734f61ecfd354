package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"data-analysis-agents/internal/agent/generator"
	"data-analysis-agents/internal/agent/orchestrator"
	"data-analysis-agents/internal/agent/tools"
	"data-analysis-agents/internal/conversation"
	"data-analysis-agents/internal/dataset"
	"data-analysis-agents/internal/model"
	"data-analysis-agents/internal/router"
)

// Create builds a session around a loaded dataset: conversation store,
// keyword router, and an orchestrator whose category agents are created
// lazily with the session's toolset.
func (m *Manager) Create(ds *dataset.Dataset) (*Session, error) {
	r, err := router.New()
	if err != nil {
		return nil, fmt.Errorf("create router: %w", err)
	}

	s := &Session{
		ID:        uuid.NewString(),
		Dataset:   ds,
		Stats:     ds.ComputeStats(),
		CreatedAt: time.Now(),
		conv:      conversation.New(m.deps.MaxHistory),
	}

	s.orch, err = orchestrator.New(orchestrator.Config{
		Router:  r,
		Store:   s.conv,
		Logger:  m.deps.Logger,
		Factory: m.runnerFactory(s),
	})
	if err != nil {
		return nil, fmt.Errorf("create orchestrator: %w", err)
	}

	m.sessions.Add(s.ID, s)
	return s, nil
}

// Get returns a live session by ID. Lookups refresh LRU recency, so
// active sessions stay resident.
func (m *Manager) Get(id string) (*Session, error) {
	s, ok := m.sessions.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}

// Remove drops a session immediately.
func (m *Manager) Remove(id string) {
	m.sessions.Remove(id)
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	return m.sessions.Len()
}

func (m *Manager) runnerFactory(s *Session) orchestrator.RunnerFactory {
	return func(category model.Category) (orchestrator.Runner, error) {
		return generator.New(generator.Config{
			Category:    category,
			LLM:         m.deps.LLM,
			Registry:    tools.ForCategory(category, s.Dataset, m.deps.Artifacts),
			Stats:       s.Stats,
			History:     s.conv,
			Logger:      m.deps.Logger,
			MaxSteps:    m.deps.MaxSteps,
			Temperature: m.deps.Temperature,
		})
	}
}
