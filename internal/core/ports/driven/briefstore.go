package driven

import (
	"context"

	"github.com/custodia-labs/briefly-cli/internal/core/domain"
)

// BriefStore persists generated briefs for later retrieval.
type BriefStore interface {
	// SaveBrief stores a generated brief.
	SaveBrief(ctx context.Context, brief *domain.Brief) error

	// GetBrief retrieves a brief by ID.
	// Returns domain.ErrNotFound when no such brief exists.
	GetBrief(ctx context.Context, id string) (*domain.Brief, error)

	// ListBriefs returns stored briefs, newest first.
	ListBriefs(ctx context.Context) ([]domain.Brief, error)

	// Close releases resources.
	Close() error
}
