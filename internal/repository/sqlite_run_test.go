package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/reflow/internal/repository"
	"github.com/alexanderramin/reflow/internal/testutil"
)

func TestRunRepo_RecordAndList(t *testing.T) {
	database := testutil.OpenTestDB(t)
	scenarios := repository.NewSQLiteScenarioRepo(database)
	runs := repository.NewSQLiteRunRepo(database)
	ctx := context.Background()

	require.NoError(t, scenarios.Save(ctx, storedScenario("sc-1", "press-line")))

	first := &repository.ReflowRun{
		ID:            "run-1",
		ScenarioID:    "sc-1",
		RanAt:         time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC),
		Rescheduled:   4,
		Unchanged:     8,
		TotalDelayMin: 360,
		MaxDelayMin:   180,
		AuditValid:    true,
		Explanation:   "rescheduled 4 of 12 work orders",
	}
	second := &repository.ReflowRun{
		ID:         "run-2",
		ScenarioID: "sc-1",
		RanAt:      first.RanAt.Add(time.Hour),
		AuditValid: false,
	}
	require.NoError(t, runs.Record(ctx, first))
	require.NoError(t, runs.Record(ctx, second))

	got, err := runs.ListByScenario(ctx, "sc-1")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "run-1", got[0].ID)
	assert.Equal(t, 4, got[0].Rescheduled)
	assert.Equal(t, 8, got[0].Unchanged)
	assert.Equal(t, 360, got[0].TotalDelayMin)
	assert.Equal(t, 180, got[0].MaxDelayMin)
	assert.True(t, got[0].AuditValid)
	assert.Equal(t, first.RanAt, got[0].RanAt.UTC())

	assert.Equal(t, "run-2", got[1].ID)
	assert.False(t, got[1].AuditValid)
}

func TestRunRepo_ListByScenarioEmpty(t *testing.T) {
	runs := repository.NewSQLiteRunRepo(testutil.OpenTestDB(t))

	got, err := runs.ListByScenario(context.Background(), "sc-ghost")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRunRepo_DeletingScenarioCascades(t *testing.T) {
	database := testutil.OpenTestDB(t)
	scenarios := repository.NewSQLiteScenarioRepo(database)
	runs := repository.NewSQLiteRunRepo(database)
	ctx := context.Background()

	require.NoError(t, scenarios.Save(ctx, storedScenario("sc-1", "press-line")))
	require.NoError(t, runs.Record(ctx, &repository.ReflowRun{
		ID:         "run-1",
		ScenarioID: "sc-1",
		RanAt:      time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC),
	}))

	require.NoError(t, scenarios.Delete(ctx, "sc-1"))

	got, err := runs.ListByScenario(ctx, "sc-1")
	require.NoError(t, err)
	assert.Empty(t, got)
}
