package conversation

import (
	"time"

	"data-analysis-agents/internal/model"
)

// CacheEntry is the latest answer for one normalized query.
type CacheEntry struct {
	Response  string         `json:"response"`
	Category  model.Category `json:"category"`
	CreatedAt time.Time      `json:"created_at"`
}

// HistoryEntry is one recorded interaction turn.
type HistoryEntry struct {
	Query     string         `json:"query"`
	Response  string         `json:"response"`
	Category  model.Category `json:"category"`
	Timestamp time.Time      `json:"timestamp"`
}

// Stats summarizes store sizes for monitoring.
type Stats struct {
	HistoryCount int `json:"history_count"`
	CacheCount   int `json:"cache_count"`
	MaxHistory   int `json:"max_history"`
}
