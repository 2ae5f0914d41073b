package host

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/gentrystinson/cabquote/internal/quote"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// QuoteStore persists quote records in sqlite. It backs the local host used
// by the CLI and tests; a production deployment would answer the same
// message types from its own storage.
type QuoteStore struct {
	db *sql.DB
}

// OpenStore opens (or creates) the quote database and applies migrations.
func OpenStore(path string) (*QuoteStore, error) {
	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_journal_mode=WAL", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open quote database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping quote database: %w", err)
	}
	if err := runMigrations(db); err != nil {
		if cerr := db.Close(); cerr != nil {
			return nil, fmt.Errorf("run migrations: %w (also failed to close db: %v)", err, cerr)
		}
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &QuoteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *QuoteStore) Close() error {
	return s.db.Close()
}

func runMigrations(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY
		)
	`)
	if err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("read migrations directory: %w", err)
	}

	type migration struct {
		version int
		name    string
	}
	var migrations []migration
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".up.sql") {
			continue
		}
		version, err := strconv.Atoi(strings.SplitN(name, "_", 2)[0])
		if err != nil {
			continue
		}
		migrations = append(migrations, migration{version: version, name: name})
	}
	sort.Slice(migrations, func(i, j int) bool { return migrations[i].version < migrations[j].version })

	for _, m := range migrations {
		var applied int
		err := db.QueryRow(`SELECT COUNT(*) FROM schema_migrations WHERE version = ?`, m.version).Scan(&applied)
		if err != nil {
			return fmt.Errorf("check migration %d: %w", m.version, err)
		}
		if applied > 0 {
			continue
		}
		script, err := migrationsFS.ReadFile("migrations/" + m.name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", m.name, err)
		}
		if _, err := db.Exec(string(script)); err != nil {
			return fmt.Errorf("apply migration %s: %w", m.name, err)
		}
		if _, err := db.Exec(`INSERT INTO schema_migrations (version) VALUES (?)`, m.version); err != nil {
			return fmt.Errorf("record migration %d: %w", m.version, err)
		}
	}
	return nil
}

// nextID derives the next sequential quote id (Q0001, Q0002, ...) from the
// highest id already stored.
func (s *QuoteStore) nextID(ctx context.Context) (string, error) {
	var last sql.NullString
	err := s.db.QueryRowContext(ctx, `SELECT MAX(id) FROM quotes WHERE id LIKE 'Q%'`).Scan(&last)
	if err != nil {
		return "", fmt.Errorf("query last quote id: %w", err)
	}
	seq := 0
	if last.Valid {
		if n, err := strconv.Atoi(strings.TrimPrefix(last.String, "Q")); err == nil {
			seq = n
		}
	}
	return quote.FormatID(seq + 1), nil
}

// Save persists a quote, assigning a sequential id when the quote has none.
// Saving an existing id overwrites that quote. Returns the stored id.
func (s *QuoteStore) Save(ctx context.Context, q *quote.Quote) (string, error) {
	if strings.TrimSpace(q.ID) == "" {
		id, err := s.nextID(ctx)
		if err != nil {
			return "", err
		}
		q.ID = id
	}
	if q.Status == "" {
		q.Status = "Pending"
	}

	payload, err := json.Marshal(q)
	if err != nil {
		return "", fmt.Errorf("encode quote %s: %w", q.ID, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO quotes (id, project_name, created_at, final_total, status, payload)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			project_name = excluded.project_name,
			created_at = excluded.created_at,
			final_total = excluded.final_total,
			status = excluded.status,
			payload = excluded.payload
	`, q.ID, q.ProjectName, q.Timestamp.UTC().Format(time.RFC3339), q.FinalTotal, q.Status, string(payload))
	if err != nil {
		return "", fmt.Errorf("save quote %s: %w", q.ID, err)
	}
	return q.ID, nil
}

// List returns summaries of all saved quotes, newest first.
func (s *QuoteStore) List(ctx context.Context) ([]quote.Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, project_name, created_at, final_total, status
		FROM quotes ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	var summaries []quote.Summary
	for rows.Next() {
		var sum quote.Summary
		var createdAt string
		if err := rows.Scan(&sum.ID, &sum.ProjectName, &createdAt, &sum.FinalTotal, &sum.Status); err != nil {
			return nil, fmt.Errorf("scan quote summary: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
			sum.Timestamp = ts
		}
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quote summaries: %w", err)
	}
	return summaries, nil
}

// Get returns the full quote record for an id, or nil when it does not
// exist.
func (s *QuoteStore) Get(ctx context.Context, id string) (*quote.Quote, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM quotes WHERE id = ?`, id).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get quote %s: %w", id, err)
	}
	var q quote.Quote
	if err := json.Unmarshal([]byte(payload), &q); err != nil {
		return nil, fmt.Errorf("decode quote %s: %w", id, err)
	}
	return &q, nil
}
