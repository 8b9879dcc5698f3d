package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and
// re-run on every open; "duplicate column name" errors from ALTER TABLE
// are tolerated for the same reason.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS scenarios (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		payload    TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_scenarios_name ON scenarios(name)`,

	`CREATE TABLE IF NOT EXISTS reflow_runs (
		id              TEXT PRIMARY KEY,
		scenario_id     TEXT NOT NULL REFERENCES scenarios(id) ON DELETE CASCADE,
		ran_at          TEXT NOT NULL,
		rescheduled     INTEGER NOT NULL,
		unchanged       INTEGER NOT NULL,
		total_delay_min INTEGER NOT NULL,
		max_delay_min   INTEGER NOT NULL,
		audit_valid     INTEGER NOT NULL,
		explanation     TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_reflow_runs_scenario ON reflow_runs(scenario_id)`,
	`CREATE INDEX IF NOT EXISTS idx_reflow_runs_ran_at ON reflow_runs(ran_at)`,
}
