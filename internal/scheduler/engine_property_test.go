package scheduler

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/reflow/internal/app"
	"github.com/alexanderramin/reflow/internal/audit"
	"github.com/alexanderramin/reflow/internal/domain"
	"github.com/alexanderramin/reflow/internal/testutil"
)

type orderKey struct {
	priority int
	day      int
	id       string
}

func (k orderKey) before(other orderKey) bool {
	if k.priority != other.priority {
		return k.priority < other.priority
	}
	if k.day != other.day {
		return k.day < other.day
	}
	return k.id < other.id
}

// randomInput builds a random acyclic snapshot: a few shift-bound centers
// and orders bunched onto the same mornings so conflicts are common.
// A dependency is only drawn from orders that sort strictly ahead of the
// dependent (priority, then start, then id), so every predecessor is
// placed before its successor.
func randomInput(rng *rand.Rand) app.ReflowInput {
	centerCount := 2 + rng.Intn(3)
	centers := make([]*domain.WorkCenter, 0, centerCount)
	for i := 0; i < centerCount; i++ {
		centers = append(centers, testutil.NewTestCenter(
			fmt.Sprintf("wc-%d", i+1),
			testutil.WithWeekdayShifts(8, 17),
		))
	}

	orderCount := 5 + rng.Intn(10)
	orders := make([]*domain.WorkOrder, 0, orderCount)
	keys := make([]orderKey, 0, orderCount)
	for i := 0; i < orderCount; i++ {
		key := orderKey{
			priority: 1 + rng.Intn(5),
			day:      rng.Intn(3),
			id:       fmt.Sprintf("wo-%02d", i+1),
		}
		center := centers[rng.Intn(centerCount)]
		opts := []testutil.OrderOption{
			testutil.WithStart(testutil.At(key.day, 8, 0)),
			testutil.WithDuration(30 + rng.Intn(8)*30),
			testutil.WithPriority(key.priority),
		}
		if rng.Float64() < 0.5 {
			var ahead []string
			for j, prev := range keys {
				if prev.before(key) {
					ahead = append(ahead, orders[j].ID)
				}
			}
			if len(ahead) > 0 {
				opts = append(opts, testutil.WithDependencies(ahead[rng.Intn(len(ahead))]))
			}
		}
		orders = append(orders, testutil.NewTestOrder(key.id, center.ID, opts...))
		keys = append(keys, key)
	}

	return app.ReflowInput{WorkOrders: orders, WorkCenters: centers}
}

func TestReflow_RandomInputsProduceConsistentSchedules(t *testing.T) {
	rng := rand.New(rand.NewSource(20250106))

	for run := 0; run < 50; run++ {
		in := randomInput(rng)
		result := Reflow(in)

		require.Len(t, result.UpdatedWorkOrders, len(in.WorkOrders), "run %d", run)

		report := audit.Validate(app.ReflowInput{
			WorkOrders:  result.UpdatedWorkOrders,
			WorkCenters: in.WorkCenters,
		})
		for _, v := range report.Violations {
			// Random inputs never contain maintenance orders, so a clean
			// pass must hold every constraint the auditor checks.
			assert.Failf(t, "audit violation", "run %d: %s %s: %s",
				run, v.Kind, v.WorkOrderID, v.Message)
		}
	}
}

func TestReflow_Deterministic(t *testing.T) {
	const seed = 42

	build := func() app.ReflowInput {
		return randomInput(rand.New(rand.NewSource(seed)))
	}

	first := Reflow(build())
	for i := 0; i < 5; i++ {
		again := Reflow(build())
		require.Len(t, again.UpdatedWorkOrders, len(first.UpdatedWorkOrders))
		for j, o := range again.UpdatedWorkOrders {
			assert.Equal(t, first.UpdatedWorkOrders[j].ID, o.ID)
			assert.True(t, first.UpdatedWorkOrders[j].Start.Equal(o.Start))
			assert.True(t, first.UpdatedWorkOrders[j].End.Equal(o.End))
		}
		assert.Equal(t, first.Changes, again.Changes)
		assert.Equal(t, first.Explanation, again.Explanation)
	}
}

func TestReflow_OutputStartsNeverPrecedeDependencies(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for run := 0; run < 20; run++ {
		in := randomInput(rng)
		result := Reflow(in)

		byID := make(map[string]*domain.WorkOrder, len(result.UpdatedWorkOrders))
		for _, o := range result.UpdatedWorkOrders {
			byID[o.ID] = o
		}
		for _, o := range result.UpdatedWorkOrders {
			for _, depID := range o.Dependencies {
				dep, ok := byID[depID]
				if !ok {
					continue
				}
				assert.False(t, o.Start.Before(dep.End),
					"run %d: %s starts %s before dependency %s ends %s",
					run, o.ID, o.Start.Format(time.RFC3339), depID, dep.End.Format(time.RFC3339))
			}
		}
	}
}
