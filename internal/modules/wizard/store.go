package wizard

import (
	"context"
	"sync"
)

// DraftStore holds in-progress wizard drafts. Implementations expire drafts
// after a TTL; an expired draft simply reports ErrDraftNotFound.
type DraftStore interface {
	Save(ctx context.Context, d *Draft) error
	Get(ctx context.Context, id string) (*Draft, error)
	Delete(ctx context.Context, id string) error
}

// MemoryStore is a map-backed DraftStore for tests and single-process runs.
type MemoryStore struct {
	mu     sync.RWMutex
	drafts map[string]Draft
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{drafts: make(map[string]Draft)}
}

func (m *MemoryStore) Save(ctx context.Context, d *Draft) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drafts[d.ID] = *d
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, id string) (*Draft, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	out := d
	return &out, nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drafts, id)
	return nil
}
