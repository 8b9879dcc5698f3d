package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

const scenarioColumns = `id, name, payload, created_at`

// SQLiteScenarioRepo implements ScenarioRepo using a SQLite database.
type SQLiteScenarioRepo struct {
	db *sql.DB
}

// NewSQLiteScenarioRepo creates a new SQLiteScenarioRepo.
func NewSQLiteScenarioRepo(db *sql.DB) *SQLiteScenarioRepo {
	return &SQLiteScenarioRepo{db: db}
}

// Save upserts by name: re-saving a scenario under the same name
// replaces its payload.
func (r *SQLiteScenarioRepo) Save(ctx context.Context, s *StoredScenario) error {
	query := `INSERT INTO scenarios (id, name, payload, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET payload = excluded.payload`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		string(s.Payload),
		s.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting scenario: %w", err)
	}
	return nil
}

func (r *SQLiteScenarioRepo) GetByName(ctx context.Context, name string) (*StoredScenario, error) {
	query := `SELECT ` + scenarioColumns + ` FROM scenarios WHERE name = ?`
	return scanScenario(r.db.QueryRowContext(ctx, query, name))
}

func (r *SQLiteScenarioRepo) List(ctx context.Context) ([]*StoredScenario, error) {
	query := `SELECT ` + scenarioColumns + ` FROM scenarios ORDER BY created_at, name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing scenarios: %w", err)
	}
	defer rows.Close()

	var out []*StoredScenario
	for rows.Next() {
		s, err := scanScenario(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SQLiteScenarioRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM scenarios WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting scenario: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScenario(row rowScanner) (*StoredScenario, error) {
	var s StoredScenario
	var payload, createdAt string
	if err := row.Scan(&s.ID, &s.Name, &payload, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning scenario: %w", err)
	}
	s.Payload = []byte(payload)
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing scenario created_at: %w", err)
	}
	s.CreatedAt = t
	return &s, nil
}
