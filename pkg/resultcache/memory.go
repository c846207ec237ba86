package resultcache

import (
	"sync"
	"time"

	"github.com/chatdf/chatdf/pkg/models"
)

// memoryEntry holds a cached result with its monotonic-clock expiry.
type memoryEntry struct {
	result   *models.QueryResult
	storedAt time.Time
}

// memoryTier is a bounded in-memory cache. When full, the oldest-inserted
// entry is evicted. TTL comparisons use the monotonic clock carried by
// time.Time, so wall-clock adjustments cannot extend entry lifetimes.
type memoryTier struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	order   []string // insertion order, oldest first
	maxSize int
	ttl     time.Duration
}

func newMemoryTier(maxSize int, ttl time.Duration) *memoryTier {
	return &memoryTier{
		entries: make(map[string]*memoryEntry),
		maxSize: maxSize,
		ttl:     ttl,
	}
}

// get returns a copy-safe result for the key if present and unexpired.
func (t *memoryTier) get(key string) (*models.QueryResult, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, ok := t.entries[key]
	if !ok {
		return nil, false
	}
	if time.Since(entry.storedAt) > t.ttl {
		delete(t.entries, key)
		t.removeFromOrder(key)
		return nil, false
	}
	return entry.result, true
}

// put stores a result, evicting the oldest-inserted entry when full.
func (t *memoryTier) put(key string, result *models.QueryResult) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.entries[key]; !exists {
		if len(t.entries) >= t.maxSize && len(t.order) > 0 {
			oldest := t.order[0]
			t.order = t.order[1:]
			delete(t.entries, oldest)
		}
		t.order = append(t.order, key)
	}
	t.entries[key] = &memoryEntry{result: result, storedAt: time.Now()}
}

func (t *memoryTier) clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = make(map[string]*memoryEntry)
	t.order = nil
}

func (t *memoryTier) len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// removeFromOrder drops one occurrence of key from the insertion order.
// Caller holds the lock.
func (t *memoryTier) removeFromOrder(key string) {
	for i, k := range t.order {
		if k == key {
			t.order = append(t.order[:i], t.order[i+1:]...)
			return
		}
	}
}
