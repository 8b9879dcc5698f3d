package depgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/reflow/internal/domain"
)

func order(id string, deps ...string) *domain.WorkOrder {
	return &domain.WorkOrder{ID: id, Dependencies: deps}
}

func TestBuild_WiresForwardAndReverseEdges(t *testing.T) {
	g := Build([]*domain.WorkOrder{
		order("a"),
		order("b", "a"),
		order("c", "a", "b"),
	})

	assert.Equal(t, 3, g.Len())
	assert.Empty(t, g.Dependencies("a"))
	assert.Equal(t, []string{"a"}, g.Dependencies("b"))
	assert.Equal(t, []string{"a", "b"}, g.Dependencies("c"))
	assert.Equal(t, []string{"b", "c"}, g.Dependents("a"))
	assert.Equal(t, []string{"c"}, g.Dependents("b"))
}

func TestBuild_DropsDanglingAndSelfReferences(t *testing.T) {
	g := Build([]*domain.WorkOrder{
		order("a", "ghost", "a"),
		order("b", "a", "missing"),
	})

	assert.Empty(t, g.Dependencies("a"))
	assert.Equal(t, []string{"a"}, g.Dependencies("b"))
}

func TestTopoSort_RespectsDependencies(t *testing.T) {
	g := Build([]*domain.WorkOrder{
		order("d", "b", "c"),
		order("b", "a"),
		order("c", "a"),
		order("a"),
	})

	sorted, remainder, ok := g.TopoSort()
	require.True(t, ok)
	assert.Empty(t, remainder)
	require.Len(t, sorted, 4)

	pos := make(map[string]int, len(sorted))
	for i, id := range sorted {
		pos[id] = i
	}
	assert.Less(t, pos["a"], pos["b"])
	assert.Less(t, pos["a"], pos["c"])
	assert.Less(t, pos["b"], pos["d"])
	assert.Less(t, pos["c"], pos["d"])
}

func TestTopoSort_DeterministicByInputPosition(t *testing.T) {
	build := func() *Graph {
		return Build([]*domain.WorkOrder{
			order("z"), order("m"), order("a"),
		})
	}

	first, _, ok := build().TopoSort()
	require.True(t, ok)
	// Independent nodes come out in input position, not map order.
	assert.Equal(t, []string{"z", "m", "a"}, first)

	for i := 0; i < 20; i++ {
		again, _, _ := build().TopoSort()
		assert.Equal(t, first, again)
	}
}

func TestTopoSort_CycleReturnsUnresolvedRemainder(t *testing.T) {
	g := Build([]*domain.WorkOrder{
		order("free"),
		order("a", "c"),
		order("b", "a"),
		order("c", "b"),
		order("tail", "c"),
	})

	sorted, remainder, ok := g.TopoSort()
	assert.False(t, ok)
	assert.Equal(t, []string{"free"}, sorted)
	// The remainder is everything left unresolved, including "tail"
	// which merely depends on the cycle.
	assert.ElementsMatch(t, []string{"a", "b", "c", "tail"}, remainder)
}

func TestHasCycle(t *testing.T) {
	acyclic := Build([]*domain.WorkOrder{order("a"), order("b", "a")})
	assert.False(t, acyclic.HasCycle())

	cyclic := Build([]*domain.WorkOrder{order("a", "b"), order("b", "a")})
	assert.True(t, cyclic.HasCycle())
}

func TestWouldCreateCycle(t *testing.T) {
	g := Build([]*domain.WorkOrder{
		order("a"),
		order("b", "a"),
		order("c", "b"),
	})

	// c transitively depends on a; an edge a -> c closes the loop.
	assert.True(t, g.WouldCreateCycle("a", "c"))
	assert.True(t, g.WouldCreateCycle("b", "c"))
	assert.False(t, g.WouldCreateCycle("c", "a"))
	assert.True(t, g.WouldCreateCycle("a", "a"))
}
