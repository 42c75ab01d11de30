package search_cache

import (
	"sync"
)

// ── Search pipeline memo ─────────────────────────────────────────────────────
// Memoizes fully computed search results keyed on (catalog version, search
// state). Keys embed the catalog version, so a reload naturally stops
// hitting stale entries; the bounded map keeps abandoned versions from
// accumulating. This is per-process request memoization, not a result cache
// shared across sessions.

const maxEntries = 512

var (
	mu      sync.RWMutex
	entries = make(map[string]any, maxEntries)
)

func Get(key string) (any, bool) {
	mu.RLock()
	defer mu.RUnlock()
	v, ok := entries[key]
	return v, ok
}

func Set(key string, value any) {
	mu.Lock()
	defer mu.Unlock()
	if len(entries) >= maxEntries {
		// Dropping everything is cheaper than tracking recency for a memo
		// that is rebuilt in microseconds.
		entries = make(map[string]any, maxEntries)
	}
	entries[key] = value
}

// Flush empties the memo. Called when the catalog files are rewritten.
func Flush() {
	mu.Lock()
	defer mu.Unlock()
	entries = make(map[string]any, maxEntries)
}

// Len reports the current number of memoized results.
func Len() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(entries)
}
