package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS selections (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id  TEXT NOT NULL,
			hour        INTEGER NOT NULL CHECK(hour BETWEEN 0 AND 23),
			minute      INTEGER NOT NULL CHECK(minute BETWEEN 0 AND 59),
			selected_at TEXT NOT NULL,
			source      TEXT NOT NULL DEFAULT 'wheel' CHECK(source IN ('wheel', 'text')),
			created_at  TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_selections_session ON selections(session_id);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating selections table: %w", err)
	}

	return nil
}
