package store

import (
	"sync"
	"time"

	"salespulse/internal/model"
)

// MemoryStore holds the active dataset snapshot. The snapshot is treated as
// immutable by every reader; an import replaces it wholesale, never edits it
// in place.
type MemoryStore struct {
	mu         sync.RWMutex
	dataset    *model.Dataset
	filename   string
	importedAt time.Time
}

// NewMemoryStore creates an empty snapshot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Dataset returns the current snapshot, or nil when no data is loaded.
// Callers must not mutate the returned dataset.
func (s *MemoryStore) Dataset() *model.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset
}

// Replace installs a new snapshot.
func (s *MemoryStore) Replace(ds *model.Dataset, filename string, importedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = ds
	s.filename = filename
	s.importedAt = importedAt
}

// Count returns the number of records in the current snapshot.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dataset == nil {
		return 0
	}
	return len(s.dataset.Records)
}

// ImportMeta returns the filename and time of the last import.
func (s *MemoryStore) ImportMeta() (string, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filename, s.importedAt
}
