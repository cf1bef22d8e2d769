package driving

import (
	"context"

	"github.com/custodia-labs/briefly-cli/internal/core/domain"
)

// BriefService assembles meeting-brief payloads and runs the external
// generation step.
type BriefService interface {
	// Generate assembles the payload for the request, calls the
	// configured LLM and persists the resulting deck.
	Generate(ctx context.Context, req domain.BriefRequest) (*domain.Brief, error)

	// AssemblePayload builds the generation payload without calling
	// the LLM. Used for inspection and dry runs.
	AssemblePayload(ctx context.Context, req domain.BriefRequest) (string, error)

	// List returns previously generated briefs, newest first.
	List(ctx context.Context) ([]domain.Brief, error)

	// Get retrieves a stored brief by ID.
	Get(ctx context.Context, id string) (*domain.Brief, error)
}
