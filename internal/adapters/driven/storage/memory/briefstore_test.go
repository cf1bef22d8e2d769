package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/briefly-cli/internal/core/domain"
)

func TestBriefStore_SaveAndGet(t *testing.T) {
	store := NewBriefStore()
	ctx := context.Background()

	brief := &domain.Brief{
		ID:          "b1",
		EventID:     "evt-1",
		CompanyID:   "acme",
		ContactName: "Jane Doe",
		Step:        domain.DefaultStep,
		Markdown:    "# Deck",
		CreatedAt:   time.Now(),
	}
	require.NoError(t, store.SaveBrief(ctx, brief))

	got, err := store.GetBrief(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.ContactName)

	// Returned copy must not alias the stored value
	got.ContactName = "changed"
	again, err := store.GetBrief(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", again.ContactName)
}

func TestBriefStore_SaveRequiresID(t *testing.T) {
	store := NewBriefStore()

	err := store.SaveBrief(context.Background(), &domain.Brief{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = store.SaveBrief(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBriefStore_GetNotFound(t *testing.T) {
	store := NewBriefStore()

	_, err := store.GetBrief(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBriefStore_ListNewestFirst(t *testing.T) {
	store := NewBriefStore()
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for _, b := range []struct {
		id string
		at time.Time
	}{
		{"old", base},
		{"new", base.Add(2 * time.Hour)},
		{"mid", base.Add(time.Hour)},
	} {
		require.NoError(t, store.SaveBrief(ctx, &domain.Brief{ID: b.id, CreatedAt: b.at}))
	}

	briefs, err := store.ListBriefs(ctx)
	require.NoError(t, err)
	require.Len(t, briefs, 3)
	assert.Equal(t, "new", briefs[0].ID)
	assert.Equal(t, "mid", briefs[1].ID)
	assert.Equal(t, "old", briefs[2].ID)
}

func TestBriefStore_Close(t *testing.T) {
	store := NewBriefStore()
	assert.NoError(t, store.Close())
}
