// Package memory provides in-memory implementations of driven port
// interfaces, used for testing and ephemeral runs.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/briefly-cli/internal/core/domain"
	"github.com/custodia-labs/briefly-cli/internal/core/ports/driven"
)

// Ensure BriefStore implements the interface.
var _ driven.BriefStore = (*BriefStore)(nil)

// BriefStore is an in-memory implementation of driven.BriefStore.
type BriefStore struct {
	mu     sync.RWMutex
	briefs map[string]domain.Brief
}

// NewBriefStore creates a new in-memory brief store.
func NewBriefStore() *BriefStore {
	return &BriefStore{
		briefs: make(map[string]domain.Brief),
	}
}

// SaveBrief stores a generated brief.
func (s *BriefStore) SaveBrief(_ context.Context, brief *domain.Brief) error {
	if brief == nil || brief.ID == "" {
		return fmt.Errorf("brief id is required: %w", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.briefs[brief.ID] = *brief
	return nil
}

// GetBrief retrieves a brief by ID.
func (s *BriefStore) GetBrief(_ context.Context, id string) (*domain.Brief, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	brief, ok := s.briefs[id]
	if !ok {
		return nil, fmt.Errorf("brief %s: %w", id, domain.ErrNotFound)
	}
	return &brief, nil
}

// ListBriefs returns stored briefs, newest first.
func (s *BriefStore) ListBriefs(_ context.Context) ([]domain.Brief, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	briefs := make([]domain.Brief, 0, len(s.briefs))
	for _, brief := range s.briefs {
		briefs = append(briefs, brief)
	}

	sort.Slice(briefs, func(i, j int) bool {
		if !briefs[i].CreatedAt.Equal(briefs[j].CreatedAt) {
			return briefs[i].CreatedAt.After(briefs[j].CreatedAt)
		}
		return briefs[i].ID < briefs[j].ID
	})
	return briefs, nil
}

// Close releases resources (no-op for memory store).
func (s *BriefStore) Close() error {
	return nil
}
