package journal

import (
	"context"
	"sync"

	dnderr "github.com/inferenco/cedra-randomness-demos/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu           sync.RWMutex
	entries      map[string]*Entry
	recent       []string // newest first
	timeProvider TimeProvider
}

// NewInMemoryRepository creates a new in-memory journal
func NewInMemoryRepository(timeProvider TimeProvider) Repository {
	if timeProvider == nil {
		timeProvider = RealTimeProvider{}
	}

	return &inMemoryRepository{
		entries:      make(map[string]*Entry),
		timeProvider: timeProvider,
	}
}

func (r *inMemoryRepository) Append(ctx context.Context, entry *Entry) error {
	if entry == nil {
		return dnderr.InvalidArgumentf("entry cannot be nil")
	}
	if entry.ID == "" {
		return dnderr.InvalidArgumentf("entry ID cannot be empty")
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.timeProvider.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entryCopy := *entry
	r.entries[entry.ID] = &entryCopy
	r.recent = append([]string{entry.ID}, r.recent...)

	if len(r.recent) > MaxRecent {
		for _, id := range r.recent[MaxRecent:] {
			delete(r.entries, id)
		}
		r.recent = r.recent[:MaxRecent]
	}

	return nil
}

func (r *inMemoryRepository) Get(ctx context.Context, id string) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.entries[id]
	if !exists {
		return nil, dnderr.NotFoundf("outcome not found: %s", id)
	}

	entryCopy := *entry
	return &entryCopy, nil
}

func (r *inMemoryRepository) ListRecent(ctx context.Context, limit int) ([]*Entry, error) {
	if limit < 1 {
		limit = DefaultListLimit
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit > len(r.recent) {
		limit = len(r.recent)
	}

	entries := make([]*Entry, 0, limit)
	for _, id := range r.recent[:limit] {
		entryCopy := *r.entries[id]
		entries = append(entries, &entryCopy)
	}

	return entries, nil
}
