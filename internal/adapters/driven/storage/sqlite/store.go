package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/briefly-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/briefly-cli/internal/core/domain"
	"github.com/custodia-labs/briefly-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.BriefStore = (*Store)(nil)

// Store is a SQLite-backed brief store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.briefly/data/briefs.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".briefly", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "briefs.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SaveBrief stores a generated brief.
func (s *Store) SaveBrief(ctx context.Context, brief *domain.Brief) error {
	if brief == nil || brief.ID == "" {
		return fmt.Errorf("brief id is required: %w", domain.ErrInvalidInput)
	}

	createdAt := brief.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO briefs (id, event_id, company_id, contact_name, step, markdown, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			event_id = excluded.event_id,
			company_id = excluded.company_id,
			contact_name = excluded.contact_name,
			step = excluded.step,
			markdown = excluded.markdown
	`, brief.ID, brief.EventID, brief.CompanyID, brief.ContactName,
		brief.Step, brief.Markdown, createdAt.UTC())

	if err != nil {
		return fmt.Errorf("saving brief: %w", err)
	}
	return nil
}

// GetBrief retrieves a brief by ID.
func (s *Store) GetBrief(ctx context.Context, id string) (*domain.Brief, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, event_id, company_id, contact_name, step, markdown, created_at
		FROM briefs WHERE id = ?
	`, id)

	brief, err := scanBrief(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("brief %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("getting brief: %w", err)
	}
	return brief, nil
}

// ListBriefs returns stored briefs, newest first.
func (s *Store) ListBriefs(ctx context.Context) ([]domain.Brief, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, event_id, company_id, contact_name, step, markdown, created_at
		FROM briefs ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("listing briefs: %w", err)
	}
	defer rows.Close()

	var briefs []domain.Brief
	for rows.Next() {
		brief, err := scanBrief(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning brief: %w", err)
		}
		briefs = append(briefs, *brief)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating briefs: %w", err)
	}
	return briefs, nil
}

// scanner abstracts over *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanBrief reads one brief row.
func scanBrief(row scanner) (*domain.Brief, error) {
	var brief domain.Brief
	var createdAt sql.NullTime
	if err := row.Scan(&brief.ID, &brief.EventID, &brief.CompanyID,
		&brief.ContactName, &brief.Step, &brief.Markdown, &createdAt); err != nil {
		return nil, err
	}
	if createdAt.Valid {
		brief.CreatedAt = createdAt.Time
	}
	return &brief, nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "0001_create_briefs.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}
