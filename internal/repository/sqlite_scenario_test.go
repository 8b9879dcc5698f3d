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

func storedScenario(id, name string) *repository.StoredScenario {
	return &repository.StoredScenario{
		ID:        id,
		Name:      name,
		Payload:   []byte(`{"name":"` + name + `"}`),
		CreatedAt: time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC),
	}
}

func TestScenarioRepo_SaveAndGetByName(t *testing.T) {
	repo := repository.NewSQLiteScenarioRepo(testutil.OpenTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, storedScenario("sc-1", "press-line")))

	got, err := repo.GetByName(ctx, "press-line")
	require.NoError(t, err)
	assert.Equal(t, "sc-1", got.ID)
	assert.Equal(t, "press-line", got.Name)
	assert.JSONEq(t, `{"name":"press-line"}`, string(got.Payload))
	assert.Equal(t, time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC), got.CreatedAt.UTC())
}

func TestScenarioRepo_SaveUpsertsByName(t *testing.T) {
	repo := repository.NewSQLiteScenarioRepo(testutil.OpenTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, storedScenario("sc-1", "press-line")))

	replacement := storedScenario("sc-2", "press-line")
	replacement.Payload = []byte(`{"name":"press-line","work_orders":[]}`)
	require.NoError(t, repo.Save(ctx, replacement))

	got, err := repo.GetByName(ctx, "press-line")
	require.NoError(t, err)
	// The original row survives with a replaced payload.
	assert.Equal(t, "sc-1", got.ID)
	assert.Contains(t, string(got.Payload), "work_orders")

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestScenarioRepo_GetByNameNotFound(t *testing.T) {
	repo := repository.NewSQLiteScenarioRepo(testutil.OpenTestDB(t))

	_, err := repo.GetByName(context.Background(), "ghost")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestScenarioRepo_List(t *testing.T) {
	repo := repository.NewSQLiteScenarioRepo(testutil.OpenTestDB(t))
	ctx := context.Background()

	a := storedScenario("sc-1", "alpha")
	b := storedScenario("sc-2", "beta")
	b.CreatedAt = a.CreatedAt.Add(time.Hour)
	require.NoError(t, repo.Save(ctx, b))
	require.NoError(t, repo.Save(ctx, a))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "alpha", all[0].Name)
	assert.Equal(t, "beta", all[1].Name)
}

func TestScenarioRepo_Delete(t *testing.T) {
	repo := repository.NewSQLiteScenarioRepo(testutil.OpenTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, storedScenario("sc-1", "press-line")))
	require.NoError(t, repo.Delete(ctx, "sc-1"))

	_, err := repo.GetByName(ctx, "press-line")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "sc-1"), repository.ErrNotFound)
}
