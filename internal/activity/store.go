// Package activity persists an audit trail of mutating engine
// operations. Recording is best effort: a failure to write is logged
// and swallowed so it can never fail the request being recorded.
package activity

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/wharfd/wharfd/pkg/logger"
)

const (
	// DefaultLimit applies when a listing gives no limit.
	DefaultLimit = 50
	// MaxLimit caps a listing regardless of what was asked for.
	MaxLimit = 500
)

const schema = `
CREATE TABLE IF NOT EXISTS activity (
	id        TEXT PRIMARY KEY,
	time      TEXT NOT NULL,
	kind      TEXT NOT NULL,
	operation TEXT NOT NULL,
	subject   TEXT NOT NULL,
	outcome   TEXT NOT NULL,
	detail    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS activity_time ON activity (time DESC);
`

// Record is one audited operation.
type Record struct {
	ID        string `json:"id"`
	Time      string `json:"time"`
	Kind      string `json:"kind"`
	Operation string `json:"operation"`
	Subject   string `json:"subject"`
	Outcome   string `json:"outcome"`
	Detail    string `json:"detail"`
}

// Store is a sqlite-backed activity log.
type Store struct {
	db *sql.DB
}

// Open creates (or reopens) the activity database under dir.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create activity dir: %w", err)
	}
	path := filepath.Join(dir, "activity.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open activity db: %w", err)
	}
	// modernc/sqlite serializes writes itself but a single connection
	// avoids SQLITE_BUSY under concurrent handlers.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init activity schema: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens a throwaway store, for tests.
func OpenInMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open activity db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init activity schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Record implements facade.Auditor. Errors are logged, never returned.
func (s *Store) Record(ctx context.Context, kind, operation, subject, outcome, detail string) {
	rec := Record{
		ID:        uuid.NewString(),
		Time:      time.Now().UTC().Format(time.RFC3339),
		Kind:      kind,
		Operation: operation,
		Subject:   subject,
		Outcome:   outcome,
		Detail:    detail,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO activity (id, time, kind, operation, subject, outcome, detail) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Time, rec.Kind, rec.Operation, rec.Subject, rec.Outcome, rec.Detail,
	)
	if err != nil {
		logger.Warn("activity record failed", "kind", kind, "operation", operation, "error", err)
	}
}

// List returns the newest records first. limit <= 0 means DefaultLimit.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, time, kind, operation, subject, outcome, detail FROM activity ORDER BY time DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Time, &rec.Kind, &rec.Operation, &rec.Subject, &rec.Outcome, &rec.Detail); err != nil {
			return nil, fmt.Errorf("scan activity row: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return out, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
