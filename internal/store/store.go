// Package store owns the snapshot: one in-memory state object read and
// written atomically. Every mutating operation runs as a single guarded
// load-mutate-save unit; a failed operation leaves the stored state
// completely untouched, counters included.
package store

import "procurement/internal/model"

// Store provides scoped access to the snapshot. Implementations serialize
// all access behind a single writer, so callers never see a half-applied
// operation.
type Store interface {
	// View runs fn against the current snapshot. fn must not mutate it.
	View(fn func(*model.Snapshot) error) error
	// Update runs fn against a working copy of the snapshot and commits
	// the copy only when fn returns nil.
	Update(fn func(*model.Snapshot) error) error
}
