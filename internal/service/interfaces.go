package service

import (
	"context"
	"time"

	"github.com/alexanderramin/reflow/internal/app"
	"github.com/alexanderramin/reflow/internal/repository"
	"github.com/alexanderramin/reflow/internal/scenario"
)

// RunRequest selects the snapshot to reflow: either an inline schema
// (e.g. loaded from a file) or the name of a stored scenario.
type RunRequest struct {
	Schema       *scenario.Schema
	ScenarioName string
	Now          *time.Time

	// RecordRun persists a run row when the scenario came from the store.
	RecordRun bool
}

// RunResponse carries the engine result plus the independent audit of
// the corrected schedule.
type RunResponse struct {
	Input  app.ReflowInput
	Result app.ReflowResult
	Audit  app.AuditReport
}

// ReflowService runs the scheduling engine over scenarios.
type ReflowService interface {
	Run(ctx context.Context, req RunRequest) (*RunResponse, error)
	// Audit validates a snapshot as-is, without rescheduling.
	Audit(ctx context.Context, req RunRequest) (*app.AuditReport, error)
}

// ScenarioService manages stored scenarios.
type ScenarioService interface {
	Generate(ctx context.Context, opts scenario.GenerateOptions, save bool) (*scenario.Schema, error)
	Import(ctx context.Context, schema *scenario.Schema) error
	List(ctx context.Context) ([]*repository.StoredScenario, error)
	Runs(ctx context.Context, scenarioName string) ([]*repository.ReflowRun, error)
}
