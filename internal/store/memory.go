package store

import (
	"sync"

	"procurement/internal/model"
)

// MemoryStore keeps the snapshot in process memory only. Used by tests and
// as the embedded core of the file-backed store.
type MemoryStore struct {
	mu   sync.RWMutex
	snap *model.Snapshot
}

// NewMemoryStore wraps an initial snapshot. The store takes ownership of it.
func NewMemoryStore(snap *model.Snapshot) *MemoryStore {
	return &MemoryStore{snap: snap}
}

func (s *MemoryStore) View(fn func(*model.Snapshot) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.snap)
}

func (s *MemoryStore) Update(fn func(*model.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	work := s.snap.Clone()
	if err := fn(work); err != nil {
		return err
	}
	s.snap = work
	return nil
}
