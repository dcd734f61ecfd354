package conversation

import "sync"

// DefaultMaxHistory caps retained history entries per store.
const DefaultMaxHistory = 50

// Store keeps the bounded conversation history and the response cache
// for one analysis session. All methods are safe for concurrent use.
//
// History is FIFO-truncated at maxHistory; the cache holds one entry per
// distinct normalized query and is only bounded by the session lifetime.
type Store struct {
	mu         sync.Mutex
	history    []HistoryEntry
	cache      map[string]CacheEntry
	maxHistory int
}

// New creates a Store with the given history cap. A non-positive cap
// falls back to DefaultMaxHistory.
func New(maxHistory int) *Store {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Store{
		cache:      make(map[string]CacheEntry),
		maxHistory: maxHistory,
	}
}
