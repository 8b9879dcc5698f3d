package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const runColumns = `id, scenario_id, ran_at, rescheduled, unchanged,
		total_delay_min, max_delay_min, audit_valid, explanation`

// SQLiteRunRepo implements RunRepo using a SQLite database.
type SQLiteRunRepo struct {
	db *sql.DB
}

// NewSQLiteRunRepo creates a new SQLiteRunRepo.
func NewSQLiteRunRepo(db *sql.DB) *SQLiteRunRepo {
	return &SQLiteRunRepo{db: db}
}

func (r *SQLiteRunRepo) Record(ctx context.Context, run *ReflowRun) error {
	query := `INSERT INTO reflow_runs (id, scenario_id, ran_at, rescheduled, unchanged,
		total_delay_min, max_delay_min, audit_valid, explanation)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		run.ScenarioID,
		run.RanAt.UTC().Format(time.RFC3339),
		run.Rescheduled,
		run.Unchanged,
		run.TotalDelayMin,
		run.MaxDelayMin,
		boolToInt(run.AuditValid),
		run.Explanation,
	)
	if err != nil {
		return fmt.Errorf("inserting reflow run: %w", err)
	}
	return nil
}

func (r *SQLiteRunRepo) ListByScenario(ctx context.Context, scenarioID string) ([]*ReflowRun, error) {
	query := `SELECT ` + runColumns + ` FROM reflow_runs WHERE scenario_id = ? ORDER BY ran_at`
	rows, err := r.db.QueryContext(ctx, query, scenarioID)
	if err != nil {
		return nil, fmt.Errorf("listing reflow runs: %w", err)
	}
	defer rows.Close()

	var out []*ReflowRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

func scanRun(rows *sql.Rows) (*ReflowRun, error) {
	var run ReflowRun
	var ranAt string
	var valid int
	if err := rows.Scan(&run.ID, &run.ScenarioID, &ranAt, &run.Rescheduled, &run.Unchanged,
		&run.TotalDelayMin, &run.MaxDelayMin, &valid, &run.Explanation); err != nil {
		return nil, fmt.Errorf("scanning reflow run: %w", err)
	}
	t, err := time.Parse(time.RFC3339, ranAt)
	if err != nil {
		return nil, fmt.Errorf("parsing run ran_at: %w", err)
	}
	run.RanAt = t
	run.AuditValid = valid != 0
	return &run, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
