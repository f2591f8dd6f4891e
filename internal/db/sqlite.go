// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/timewheel/internal/selection"
)

// SQLite implements selection.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Open creates the data directory for path when missing and opens the
// repository there.
func Open(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := New(path)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return repo, nil
}

// RecordSelection persists a confirmed selection and sets its ID.
func (s *SQLite) RecordSelection(ctx context.Context, sel *selection.Selection) error {
	if sel.Hour < 0 || sel.Hour > 23 || sel.Minute < 0 || sel.Minute > 59 {
		return fmt.Errorf("selection %02d:%02d out of range", sel.Hour, sel.Minute)
	}
	if sel.CreatedAt.IsZero() {
		sel.CreatedAt = time.Now()
	}
	if sel.Source == "" {
		sel.Source = selection.SourceWheel
	}

	query := `
		INSERT INTO selections (session_id, hour, minute, selected_at, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		sel.SessionID,
		sel.Hour,
		sel.Minute,
		sel.At.Format(time.RFC3339),
		string(sel.Source),
		sel.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting selection: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	sel.ID = id

	return nil
}

// ListSelections returns up to limit selections, newest first.
// A non-positive limit returns all selections.
func (s *SQLite) ListSelections(ctx context.Context, limit int) ([]*selection.Selection, error) {
	query := `
		SELECT id, session_id, hour, minute, selected_at, source, created_at
		FROM selections
		ORDER BY id DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying selections: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []*selection.Selection
	for rows.Next() {
		sel, err := scanSelection(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating selections: %w", err)
	}

	return out, nil
}

// LastSelection returns the newest selection or selection.ErrNotFound.
func (s *SQLite) LastSelection(ctx context.Context) (*selection.Selection, error) {
	query := `
		SELECT id, session_id, hour, minute, selected_at, source, created_at
		FROM selections
		ORDER BY id DESC
		LIMIT 1
	`

	sel, err := scanSelection(s.db.QueryRowContext(ctx, query))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, selection.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return sel, nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSelection(row scanner) (*selection.Selection, error) {
	var (
		sel        selection.Selection
		source     string
		selectedAt string
		createdAt  string
	)

	err := row.Scan(
		&sel.ID,
		&sel.SessionID,
		&sel.Hour,
		&sel.Minute,
		&selectedAt,
		&source,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning selection: %w", err)
	}

	sel.Source = selection.Source(source)

	sel.At, err = parseTimestamp(selectedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing selected at: %w", err)
	}

	sel.CreatedAt, err = parseTimestamp(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}

	return &sel, nil
}

// parseTimestamp parses a timestamp in the formats SQLite might return.
func parseTimestamp(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %s", s)
}
