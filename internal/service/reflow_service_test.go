package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/reflow/internal/repository"
	"github.com/alexanderramin/reflow/internal/scenario"
	"github.com/alexanderramin/reflow/internal/service"
	"github.com/alexanderramin/reflow/internal/testutil"
)

func newServices(t *testing.T) (service.ReflowService, service.ScenarioService) {
	t.Helper()
	database := testutil.OpenTestDB(t)
	scenarios := repository.NewSQLiteScenarioRepo(database)
	runs := repository.NewSQLiteRunRepo(database)
	observer := service.NoopUseCaseObserver{}
	return service.NewReflowService(scenarios, runs, observer),
		service.NewScenarioService(scenarios, runs, observer)
}

func conflictSchema() *scenario.Schema {
	return &scenario.Schema{
		Name: "conflict",
		WorkCenters: []scenario.WorkCenterJSON{
			{ID: "wc-1", Name: "Mill", Shifts: []scenario.ShiftJSON{
				{Weekday: 1, StartHour: 8, EndHour: 17},
				{Weekday: 2, StartHour: 8, EndHour: 17},
			}},
		},
		WorkOrders: []scenario.WorkOrderJSON{
			{
				ID: "wo-1", WorkCenterID: "wc-1",
				Start: "2025-01-06T08:00:00.000Z", End: "2025-01-06T10:00:00.000Z",
				DurationMin: 120,
			},
			{
				ID: "wo-2", WorkCenterID: "wc-1",
				Start: "2025-01-06T08:00:00.000Z", End: "2025-01-06T10:00:00.000Z",
				DurationMin: 120,
			},
		},
	}
}

func TestReflowService_RunInlineSchema(t *testing.T) {
	reflow, _ := newServices(t)

	resp, err := reflow.Run(context.Background(), service.RunRequest{Schema: conflictSchema()})
	require.NoError(t, err)

	assert.Len(t, resp.Result.UpdatedWorkOrders, 2)
	require.Len(t, resp.Result.Changes, 1)
	assert.Equal(t, "wo-2", resp.Result.Changes[0].WorkOrderID)
	assert.True(t, resp.Audit.Valid)
}

func TestReflowService_RunStoredScenarioRecordsRun(t *testing.T) {
	reflow, scenarios := newServices(t)
	ctx := context.Background()

	require.NoError(t, scenarios.Import(ctx, conflictSchema()))

	resp, err := reflow.Run(ctx, service.RunRequest{ScenarioName: "conflict", RecordRun: true})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Result.Metrics.WorkOrdersRescheduled)

	runs, err := scenarios.Runs(ctx, "conflict")
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 1, runs[0].Rescheduled)
	assert.True(t, runs[0].AuditValid)
}

func TestReflowService_RunUnknownScenario(t *testing.T) {
	reflow, _ := newServices(t)

	_, err := reflow.Run(context.Background(), service.RunRequest{ScenarioName: "ghost"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestReflowService_RunWithoutScenario(t *testing.T) {
	reflow, _ := newServices(t)

	_, err := reflow.Run(context.Background(), service.RunRequest{})
	assert.ErrorContains(t, err, "no scenario given")
}

func TestReflowService_RunInvalidSchema(t *testing.T) {
	reflow, _ := newServices(t)

	bad := conflictSchema()
	bad.WorkOrders[0].Start = "not-a-timestamp"
	_, err := reflow.Run(context.Background(), service.RunRequest{Schema: bad})
	assert.ErrorContains(t, err, "invalid scenario")
}

func TestReflowService_AuditReportsConflicts(t *testing.T) {
	reflow, _ := newServices(t)

	report, err := reflow.Audit(context.Background(), service.RunRequest{Schema: conflictSchema()})
	require.NoError(t, err)

	// The snapshot is audited as-is: the two overlapping orders are
	// reported, not repaired.
	assert.False(t, report.Valid)
	require.Len(t, report.Violations, 1)
	assert.Equal(t, "wo-2", report.Violations[0].WorkOrderID)
}

func TestScenarioService_GenerateAndSave(t *testing.T) {
	reflow, scenarios := newServices(t)
	ctx := context.Background()

	schema, err := scenarios.Generate(ctx, scenario.DefaultGenerateOptions(20250106), true)
	require.NoError(t, err)

	stored, err := scenarios.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, schema.Name, stored[0].Name)

	resp, err := reflow.Run(ctx, service.RunRequest{ScenarioName: schema.Name})
	require.NoError(t, err)
	assert.Len(t, resp.Result.UpdatedWorkOrders, len(schema.WorkOrders))
}

func TestScenarioService_ImportRejectsInvalid(t *testing.T) {
	_, scenarios := newServices(t)

	bad := conflictSchema()
	bad.WorkCenters[0].Shifts[0].Weekday = 12
	err := scenarios.Import(context.Background(), bad)
	assert.ErrorContains(t, err, "invalid scenario")
}
