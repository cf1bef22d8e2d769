package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/briefly-cli/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})

	return store
}

func testBrief(id string, createdAt time.Time) *domain.Brief {
	return &domain.Brief{
		ID:          id,
		EventID:     "evt-" + id,
		CompanyID:   "acme",
		ContactName: "Jane Doe",
		Step:        domain.DefaultStep,
		Markdown:    "# Cover Page\n---\n# Table of Contents",
		CreatedAt:   createdAt,
	}
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	tempDir := t.TempDir()

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(tempDir, "briefs.db"), store.Path())

	_, err = os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestNewStore_MigrationsAreIdempotent(t *testing.T) {
	tempDir := t.TempDir()

	store1, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NoError(t, store1.Close())

	// Reopening must not re-run applied migrations
	store2, err := NewStore(tempDir)
	require.NoError(t, err)
	defer store2.Close()

	var version int
	row := store2.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	require.NoError(t, row.Scan(&version))
	assert.Equal(t, 1, version)
}

func TestStore_SaveAndGetBrief(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	brief := testBrief("b1", created)

	require.NoError(t, store.SaveBrief(ctx, brief))

	got, err := store.GetBrief(ctx, "b1")
	require.NoError(t, err)

	assert.Equal(t, brief.ID, got.ID)
	assert.Equal(t, brief.EventID, got.EventID)
	assert.Equal(t, brief.CompanyID, got.CompanyID)
	assert.Equal(t, brief.ContactName, got.ContactName)
	assert.Equal(t, brief.Step, got.Step)
	assert.Equal(t, brief.Markdown, got.Markdown)
	assert.True(t, created.Equal(got.CreatedAt))
}

func TestStore_SaveBrief_UpsertsOnID(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	brief := testBrief("b1", time.Now())
	require.NoError(t, store.SaveBrief(ctx, brief))

	brief.Markdown = "# Revised Deck"
	require.NoError(t, store.SaveBrief(ctx, brief))

	got, err := store.GetBrief(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "# Revised Deck", got.Markdown)

	briefs, err := store.ListBriefs(ctx)
	require.NoError(t, err)
	assert.Len(t, briefs, 1)
}

func TestStore_SaveBrief_RequiresID(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	err := store.SaveBrief(ctx, &domain.Brief{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = store.SaveBrief(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStore_GetBrief_NotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.GetBrief(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_ListBriefs_NewestFirst(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveBrief(ctx, testBrief("old", base)))
	require.NoError(t, store.SaveBrief(ctx, testBrief("mid", base.Add(time.Hour))))
	require.NoError(t, store.SaveBrief(ctx, testBrief("new", base.Add(2*time.Hour))))

	briefs, err := store.ListBriefs(ctx)
	require.NoError(t, err)
	require.Len(t, briefs, 3)

	assert.Equal(t, "new", briefs[0].ID)
	assert.Equal(t, "mid", briefs[1].ID)
	assert.Equal(t, "old", briefs[2].ID)
}

func TestStore_ListBriefs_Empty(t *testing.T) {
	store := setupTestStore(t)

	briefs, err := store.ListBriefs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, briefs)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	tempDir := t.TempDir()
	ctx := context.Background()

	store1, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NoError(t, store1.SaveBrief(ctx, testBrief("b1", time.Now())))
	require.NoError(t, store1.Close())

	store2, err := NewStore(tempDir)
	require.NoError(t, err)
	defer store2.Close()

	got, err := store2.GetBrief(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.ContactName)
}
