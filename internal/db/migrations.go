package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS tasks (
			id          TEXT PRIMARY KEY,
			title       TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			date        TEXT NOT NULL,
			end_date    TEXT,
			start_time  TIME NOT NULL,
			end_time    TIME NOT NULL,
			completed   INTEGER NOT NULL DEFAULT 0,
			progress    INTEGER NOT NULL DEFAULT 0,
			color       TEXT NOT NULL DEFAULT '',
			emoji       TEXT NOT NULL DEFAULT '',
			subtasks    TEXT NOT NULL DEFAULT '[]',
			created_at  DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_tasks_date ON tasks(date);

		CREATE TABLE IF NOT EXISTS energy_levels (
			date  TEXT NOT NULL,
			hour  INTEGER NOT NULL CHECK(hour BETWEEN 0 AND 23),
			value INTEGER NOT NULL CHECK(value BETWEEN 1 AND 5),
			PRIMARY KEY (date, hour)
		);

		CREATE TABLE IF NOT EXISTS todos (
			id         TEXT PRIMARY KEY,
			title      TEXT NOT NULL,
			completed  INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
