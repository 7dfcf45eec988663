package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/codify-labs/codify-cli/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore is an in-memory implementation of driven.SessionStore.
type SessionStore struct {
	mu      sync.Mutex
	entries map[string]driven.RecentProject

	// now is swappable for tests.
	now func() time.Time
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		entries: make(map[string]driven.RecentProject),
		now:     time.Now,
	}
}

// Touch inserts or refreshes the entry for a project path.
func (s *SessionStore) Touch(path, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[path]
	if !ok {
		entry = driven.RecentProject{ID: uuid.NewString(), Path: path}
	}
	entry.Name = name
	entry.LastOpened = s.now()
	s.entries[path] = entry
	return nil
}

// Recent returns up to limit entries, most recent first.
func (s *SessionStore) Recent(limit int) ([]driven.RecentProject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]driven.RecentProject, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastOpened.After(out[j].LastOpened)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Forget removes the entry for a path, if present.
func (s *SessionStore) Forget(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, path)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *SessionStore) Close() error {
	return nil
}
