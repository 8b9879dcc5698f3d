package repository

import (
	"context"
	"time"
)

// StoredScenario is a scenario row: the JSON payload plus bookkeeping.
type StoredScenario struct {
	ID        string
	Name      string
	Payload   []byte
	CreatedAt time.Time
}

// ReflowRun records one engine invocation against a stored scenario.
type ReflowRun struct {
	ID            string
	ScenarioID    string
	RanAt         time.Time
	Rescheduled   int
	Unchanged     int
	TotalDelayMin int
	MaxDelayMin   int
	AuditValid    bool
	Explanation   string
}

// ScenarioRepo persists scenario snapshots.
type ScenarioRepo interface {
	Save(ctx context.Context, s *StoredScenario) error
	GetByName(ctx context.Context, name string) (*StoredScenario, error)
	List(ctx context.Context) ([]*StoredScenario, error)
	Delete(ctx context.Context, id string) error
}

// RunRepo persists reflow run records.
type RunRepo interface {
	Record(ctx context.Context, run *ReflowRun) error
	ListByScenario(ctx context.Context, scenarioID string) ([]*ReflowRun, error)
}
