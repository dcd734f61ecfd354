package conversation

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"data-analysis-agents/internal/model"
)

// Normalize lower-cases the query, trims it, and collapses internal
// whitespace runs to single spaces. Normalize is idempotent.
func Normalize(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}

// HashQuery returns the stable cache key for a query.
func HashQuery(query string) string {
	sum := sha256.Sum256([]byte(Normalize(query)))
	return hex.EncodeToString(sum[:])
}

// GetCached returns the cached entry for a query, if any. Pure lookup,
// no mutation.
func (s *Store) GetCached(query string) (CacheEntry, bool) {
	key := HashQuery(query)

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.cache[key]
	return entry, ok
}

// Record appends a history entry unconditionally, then upserts the cache
// entry for the normalized query. History records every turn; the cache
// keeps only the latest answer per distinct normalized question.
func (s *Store) Record(query, response string, category model.Category) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, HistoryEntry{
		Query:     query,
		Response:  response,
		Category:  category,
		Timestamp: now,
	})

	// Keep-most-recent: drop oldest entries beyond the cap.
	if len(s.history) > s.maxHistory {
		s.history = s.history[len(s.history)-s.maxHistory:]
	}

	s.cache[HashQuery(query)] = CacheEntry{
		Response:  response,
		Category:  category,
		CreatedAt: now,
	}
}

// History returns a copy of the retained history, oldest first.
func (s *Store) History() []HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// RecentContext formats the last n turns (oldest of the window first)
// for use as conversational context in generation prompts. Queries are
// truncated to 100 runes and responses to 200.
func (s *Store) RecentContext(n int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.history) == 0 || n <= 0 {
		return ""
	}

	start := len(s.history) - n
	if start < 0 {
		start = 0
	}

	var parts []string
	for _, entry := range s.history[start:] {
		parts = append(parts, fmt.Sprintf("User: %s", truncate(entry.Query, 100)))
		parts = append(parts, fmt.Sprintf("Assistant: %s", truncate(entry.Response, 200)))
	}
	return strings.Join(parts, "\n")
}

// ClearCache empties the cache only; history stays intact and identical
// queries will recompute and repopulate the cache.
func (s *Store) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache = make(map[string]CacheEntry)
}

// ClearAll empties both cache and history.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = nil
	s.cache = make(map[string]CacheEntry)
}

// Stats returns current store sizes.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Stats{
		HistoryCount: len(s.history),
		CacheCount:   len(s.cache),
		MaxHistory:   s.maxHistory,
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
