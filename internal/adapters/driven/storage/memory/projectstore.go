// Package memory provides in-memory storage adapters for testing.
package memory

import (
	"fmt"
	"sync"

	"github.com/codify-labs/codify-cli/internal/core/domain"
	"github.com/codify-labs/codify-cli/internal/core/ports/driven"
)

// Ensure ProjectStore implements the interface.
var _ driven.ProjectStore = (*ProjectStore)(nil)

// ProjectStore is an in-memory implementation of driven.ProjectStore.
// Projects are deep-copied on save and load so stored state cannot be
// mutated through retained references.
type ProjectStore struct {
	mu       sync.RWMutex
	projects map[string]*domain.Project
}

// NewProjectStore creates a new in-memory project store.
func NewProjectStore() *ProjectStore {
	return &ProjectStore{projects: make(map[string]*domain.Project)}
}

// Save stores a deep copy of the project under path.
func (s *ProjectStore) Save(path string, project *domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects[path] = clone(project)
	return nil
}

// Load returns a deep copy of the project stored under path.
func (s *ProjectStore) Load(path string) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	project, ok := s.projects[path]
	if !ok {
		return nil, fmt.Errorf("%w: no project at %q", domain.ErrNotFound, path)
	}
	if err := project.Validate(); err != nil {
		return nil, err
	}
	return clone(project), nil
}

// Len returns the number of stored projects.
func (s *ProjectStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.projects)
}

// clone deep-copies a project through the domain API.
func clone(p *domain.Project) *domain.Project {
	out := domain.NewProject(p.Name)
	out.Mode = p.Mode

	if !p.Dataset.Empty() {
		responses := make([]domain.Response, len(p.Dataset.Responses))
		copy(responses, p.Dataset.Responses)
		columns := make([]string, len(p.Dataset.Columns))
		copy(columns, p.Dataset.Columns)
		out.Dataset = domain.NewDataset(p.Dataset.IDColumn, columns, responses)
	}

	for _, name := range p.Codeframe.Names() {
		// Names were validated on the way in; Create cannot fail here.
		_ = out.Codeframe.Create(name)
	}
	for _, key := range p.Ledger.Keys() {
		for _, c := range p.Ledger.Categories(key) {
			out.Ledger.Add(key, c)
		}
	}
	return out
}
