// Package depgraph builds the work-order dependency DAG and provides
// topological ordering and cycle detection over it.
package depgraph

import (
	"github.com/alexanderramin/reflow/internal/domain"
)

// Graph holds dependency edges between known work-order IDs. Predecessor
// references that match no known order are dropped at build time, so the
// graph only ever contains resolvable edges.
type Graph struct {
	order        []string            // IDs in original input position
	dependencies map[string][]string // id -> predecessor ids
	dependents   map[string][]string // id -> successor ids
}

// Build indexes one node per work order and wires forward edges from the
// declared predecessor lists. Reverse edges are computed by inversion.
func Build(orders []*domain.WorkOrder) *Graph {
	g := &Graph{
		order:        make([]string, 0, len(orders)),
		dependencies: make(map[string][]string, len(orders)),
		dependents:   make(map[string][]string, len(orders)),
	}

	known := make(map[string]bool, len(orders))
	for _, o := range orders {
		if known[o.ID] {
			continue
		}
		known[o.ID] = true
		g.order = append(g.order, o.ID)
		g.dependencies[o.ID] = nil
	}

	for _, o := range orders {
		for _, dep := range o.Dependencies {
			if !known[dep] || dep == o.ID {
				continue // dangling or self reference, ignored
			}
			g.dependencies[o.ID] = append(g.dependencies[o.ID], dep)
			g.dependents[dep] = append(g.dependents[dep], o.ID)
		}
	}
	return g
}

// Dependencies returns the resolved predecessor IDs of id.
func (g *Graph) Dependencies(id string) []string {
	return g.dependencies[id]
}

// Dependents returns the IDs that depend on id.
func (g *Graph) Dependents(id string) []string {
	return g.dependents[id]
}

// Len returns the node count.
func (g *Graph) Len() int {
	return len(g.order)
}

// TopoSort linearizes the graph with Kahn's algorithm. The ready queue
// is an explicit FIFO seeded and appended in original input order, so the
// result is deterministic across runs. When a cycle exists, ok is false
// and remainder holds every node that never reached zero in-degree — the
// entire unresolved set, not a minimal cycle.
func (g *Graph) TopoSort() (sorted []string, remainder []string, ok bool) {
	indegree := make(map[string]int, len(g.order))
	for _, id := range g.order {
		indegree[id] = len(g.dependencies[id])
	}

	queue := make([]string, 0, len(g.order))
	for _, id := range g.order {
		if indegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	sorted = make([]string, 0, len(g.order))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		sorted = append(sorted, id)
		for _, succ := range g.dependents[id] {
			indegree[succ]--
			if indegree[succ] == 0 {
				queue = append(queue, succ)
			}
		}
	}

	if len(sorted) == len(g.order) {
		return sorted, nil, true
	}
	for _, id := range g.order {
		if indegree[id] > 0 {
			remainder = append(remainder, id)
		}
	}
	return sorted, remainder, false
}

// HasCycle reports whether the graph contains any dependency cycle.
func (g *Graph) HasCycle() bool {
	_, _, ok := g.TopoSort()
	return !ok
}

// WouldCreateCycle reports whether adding an edge from -> to would close
// a cycle, i.e. whether from is already reachable from to by following
// dependency edges.
func (g *Graph) WouldCreateCycle(from, to string) bool {
	visited := make(map[string]bool)
	var reach func(id string) bool
	reach = func(id string) bool {
		if id == from {
			return true
		}
		if visited[id] {
			return false
		}
		visited[id] = true
		for _, dep := range g.dependencies[id] {
			if reach(dep) {
				return true
			}
		}
		return false
	}
	return reach(to)
}
