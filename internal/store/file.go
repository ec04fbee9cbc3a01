package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"procurement/internal/catalog"
	"procurement/internal/model"
)

// FileStore persists the snapshot as one JSON document, rewritten after
// every successful update. The write goes through a temp file and rename so
// a crash mid-write never leaves a corrupt snapshot behind.
type FileStore struct {
	mu   sync.RWMutex
	path string
	snap *model.Snapshot
}

// OpenFileStore loads the snapshot at path, applying schema migrations to
// older files. A missing file starts from the seed snapshot.
func OpenFileStore(path string) (*FileStore, error) {
	snap := catalog.NewSnapshot()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		loaded := &model.Snapshot{}
		if err := json.Unmarshal(data, loaded); err != nil {
			return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
		}
		Migrate(loaded)
		snap = loaded
	case errors.Is(err, fs.ErrNotExist):
		// first run, keep the seed
	default:
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	s := &FileStore{path: path, snap: snap}
	if err := s.persist(snap); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) View(fn func(*model.Snapshot) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.snap)
}

func (s *FileStore) Update(fn func(*model.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	work := s.snap.Clone()
	if err := fn(work); err != nil {
		return err
	}
	if err := s.persist(work); err != nil {
		return err
	}
	s.snap = work
	return nil
}

func (s *FileStore) persist(snap *model.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create snapshot directory: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}
