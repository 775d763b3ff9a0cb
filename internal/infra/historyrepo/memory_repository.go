package historyrepo

import (
	"context"
	"sync"

	"github.com/yanqian/convertia/internal/domain/conversion"
)

const defaultCapacity = 200

// MemoryRepository keeps the most recent conversions in a bounded buffer.
type MemoryRepository struct {
	mu       sync.RWMutex
	entries  []conversion.HistoryEntry
	capacity int
}

// NewMemoryRepository constructs an in-memory repository holding at most
// capacity entries.
func NewMemoryRepository(capacity int) *MemoryRepository {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &MemoryRepository{capacity: capacity}
}

// Record appends an entry, evicting the oldest once full.
func (r *MemoryRepository) Record(_ context.Context, entry conversion.HistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	if overflow := len(r.entries) - r.capacity; overflow > 0 {
		r.entries = append(r.entries[:0], r.entries[overflow:]...)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (r *MemoryRepository) Recent(_ context.Context, limit int) ([]conversion.HistoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if limit <= 0 || limit > len(r.entries) {
		limit = len(r.entries)
	}
	out := make([]conversion.HistoryEntry, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}

var _ conversion.HistoryRepository = (*MemoryRepository)(nil)
