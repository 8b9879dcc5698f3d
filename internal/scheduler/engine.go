// Package scheduler implements the reflow pass: given a possibly stale
// or conflicting schedule snapshot, it recomputes feasible start/end
// instants for every work order, honoring dependency completion, work
// center exclusivity, shift calendars, and maintenance windows.
//
// The pass is a single deterministic walk over explicit parameters.
// There is no engine state; concurrent calls on independent inputs are
// safe without locking.
package scheduler

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/reflow/internal/app"
	"github.com/alexanderramin/reflow/internal/calendar"
	"github.com/alexanderramin/reflow/internal/depgraph"
	"github.com/alexanderramin/reflow/internal/domain"
)

// maxConflictPasses bounds the push-forward loop for one order. Every
// push moves the candidate past an occupied interval, so the bound is
// only reachable through a pathological calendar.
const maxConflictPasses = 10000

// interval is an occupied [Start, End) slot on a work center.
type interval struct {
	Start       time.Time
	End         time.Time
	WorkOrderID string
}

func (a interval) overlaps(start, end time.Time) bool {
	return a.Start.Before(end) && a.End.After(start)
}

// Reflow runs one scheduling pass over the input snapshot. The only
// abort condition is a dependency cycle, reported by returning the input
// unchanged with an explanation naming every unresolved order; all other
// irregularities (missing work center, dangling dependency, zero
// duration) fall back to more permissive behavior.
func Reflow(in app.ReflowInput) app.ReflowResult {
	graph := depgraph.Build(in.WorkOrders)
	if _, remainder, ok := graph.TopoSort(); !ok {
		result := app.ReflowResult{
			UpdatedWorkOrders: cloneAll(in.WorkOrders),
			Explanation: fmt.Sprintf("dependency cycle detected; scheduling aborted for unresolved work orders: %s",
				strings.Join(remainder, ", ")),
		}
		result.Metrics = ComputeMetrics(nil, result.UpdatedWorkOrders, in.WorkCenters)
		return result
	}

	centers := in.CenterByID()
	occupied := make(map[string][]interval)
	placed := make(map[string]*domain.WorkOrder, len(in.WorkOrders))
	originals := make(map[string]*domain.WorkOrder, len(in.WorkOrders))

	// Maintenance orders are pinned first: their original interval goes
	// into the occupied list verbatim and is never realigned.
	var schedulable []*domain.WorkOrder
	for _, o := range in.WorkOrders {
		originals[o.ID] = o
		if o.IsMaintenance {
			occupied[o.WorkCenterID] = append(occupied[o.WorkCenterID],
				interval{Start: o.Start, End: o.End, WorkOrderID: o.ID})
			placed[o.ID] = o.Clone()
			continue
		}
		schedulable = append(schedulable, o)
	}

	PrioritySort(schedulable)

	var changes []app.ReflowChange
	for _, o := range schedulable {
		upd, change := place(o, centers[o.WorkCenterID], graph, placed, originals, occupied)
		placed[o.ID] = upd
		if change != nil {
			changes = append(changes, *change)
		}
	}

	updated := make([]*domain.WorkOrder, 0, len(in.WorkOrders))
	for _, o := range in.WorkOrders {
		updated = append(updated, placed[o.ID])
	}

	return app.ReflowResult{
		UpdatedWorkOrders: updated,
		Changes:           changes,
		Explanation:       summarize(changes, len(schedulable)),
		Metrics:           ComputeMetrics(changes, updated, in.WorkCenters),
	}
}

// place computes one order's feasible interval and records it into the
// center's occupied list. Dependencies already placed in this pass
// contribute their updated end; unplaced ones fall back to their
// original values.
func place(
	o *domain.WorkOrder,
	center *domain.WorkCenter,
	graph *depgraph.Graph,
	placed map[string]*domain.WorkOrder,
	originals map[string]*domain.WorkOrder,
	occupied map[string][]interval,
) (*domain.WorkOrder, *app.ReflowChange) {
	var shifts []domain.Shift
	var windows []domain.MaintenanceWindow
	if center != nil {
		shifts = center.Shifts
		windows = center.MaintenanceWindows
	}

	earliest := o.Start
	depPushed := false
	for _, depID := range graph.Dependencies(o.ID) {
		depEnd := dependencyEnd(depID, placed, originals)
		if depEnd.After(earliest) {
			earliest = depEnd
		}
		if depEnd.After(o.Start) {
			depPushed = true
		}
	}

	totalMin := domain.NonNegative(o.TotalMin())
	start := calendar.NextAvailable(earliest, shifts, windows)
	end := calendar.WorkingEnd(start, totalMin, shifts, windows)

	// Push-forward conflict resolution: any overlap with an occupied
	// interval moves the candidate to that interval's end, realigns, and
	// restarts the scan until a full pass is conflict-free.
	slots := occupied[o.WorkCenterID]
	for pass := 0; pass < maxConflictPasses; pass++ {
		conflict, found := firstConflict(slots, start, end)
		if !found {
			break
		}
		start = calendar.NextAvailable(conflict.End, shifts, windows)
		end = calendar.WorkingEnd(start, totalMin, shifts, windows)
	}
	occupied[o.WorkCenterID] = append(slots, interval{Start: start, End: end, WorkOrderID: o.ID})

	upd := o.Clone()
	upd.Start = start
	upd.End = end

	if start.Equal(o.Start) && end.Equal(o.End) {
		return upd, nil
	}

	reason := domain.ReasonRecalculated
	if start.After(o.Start) {
		if depPushed {
			reason = domain.ReasonDependencyPush
		} else {
			reason = domain.ReasonConflictPush
		}
	}

	return upd, &app.ReflowChange{
		WorkOrderID:   o.ID,
		OriginalStart: o.Start,
		OriginalEnd:   o.End,
		NewStart:      start,
		NewEnd:        end,
		DelayMin:      roundMinutes(end.Sub(o.End)),
		Reason:        reason,
	}
}

func dependencyEnd(depID string, placed, originals map[string]*domain.WorkOrder) time.Time {
	if dep, ok := placed[depID]; ok {
		return dep.End
	}
	return originals[depID].End
}

func firstConflict(slots []interval, start, end time.Time) (interval, bool) {
	for _, iv := range slots {
		if iv.overlaps(start, end) {
			return iv, true
		}
	}
	return interval{}, false
}

// PrioritySort orders schedulable work orders by the deterministic rules
// the pass walks in:
//  1. Priority: ascending, zero treated as the default (3)
//  2. Original start: earliest first
//  3. Work order ID: lexical ascending
func PrioritySort(orders []*domain.WorkOrder) {
	sort.SliceStable(orders, func(i, j int) bool {
		a, b := orders[i], orders[j]
		if pa, pb := a.EffectivePriority(), b.EffectivePriority(); pa != pb {
			return pa < pb
		}
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		return a.ID < b.ID
	})
}

func summarize(changes []app.ReflowChange, schedulable int) string {
	if len(changes) == 0 {
		return fmt.Sprintf("schedule already consistent; %d work orders unchanged", schedulable)
	}
	return fmt.Sprintf("rescheduled %d of %d work orders", len(changes), schedulable)
}

func cloneAll(orders []*domain.WorkOrder) []*domain.WorkOrder {
	out := make([]*domain.WorkOrder, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.Clone())
	}
	return out
}

func roundMinutes(d time.Duration) int {
	return int(math.Round(d.Minutes()))
}
