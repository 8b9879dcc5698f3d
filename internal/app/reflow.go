package app

import (
	"time"

	"github.com/alexanderramin/reflow/internal/domain"
)

// ReflowInput is the full snapshot a reflow pass operates on. Each call
// is a pure function of this snapshot; nothing persists between calls.
type ReflowInput struct {
	WorkOrders          []*domain.WorkOrder
	WorkCenters         []*domain.WorkCenter
	ManufacturingOrders []*domain.ManufacturingOrder
}

// CenterByID indexes the input's work centers. Orders referencing an
// unknown center schedule in continuous time.
func (in *ReflowInput) CenterByID() map[string]*domain.WorkCenter {
	m := make(map[string]*domain.WorkCenter, len(in.WorkCenters))
	for _, c := range in.WorkCenters {
		m[c.ID] = c
	}
	return m
}

// ReflowChange records one order's delta: where it was, where it landed,
// the signed whole-minute delay of its end, and why it moved.
type ReflowChange struct {
	WorkOrderID   string
	OriginalStart time.Time
	OriginalEnd   time.Time
	NewStart      time.Time
	NewEnd        time.Time
	DelayMin      int // new end minus original end, rounded to the minute
	Reason        domain.ChangeReason
}

// ScheduleMetrics aggregates delay and utilization statistics for a
// completed reflow pass. Delay totals count only strictly positive
// deltas; orders that moved earlier keep their per-change record but do
// not offset the totals.
type ScheduleMetrics struct {
	TotalDelayMin         int
	AverageDelayMin       float64
	MaxDelayMin           int
	WorkOrdersRescheduled int
	WorkOrdersUnchanged   int

	// UtilizationByCenter maps work-center ID to scheduled working
	// minutes over approximate weekly capacity, rounded to two decimals.
	UtilizationByCenter map[string]float64
}

// ReflowResult is the outcome of one pass: the corrected schedule in the
// same order and count as the input, per-order deltas, a human-readable
// explanation, and aggregate metrics.
type ReflowResult struct {
	UpdatedWorkOrders []*domain.WorkOrder
	Changes           []ReflowChange
	Explanation       string
	Metrics           ScheduleMetrics
}

// Violation is one constraint-audit finding. Findings are reported as
// values, never raised as errors.
type Violation struct {
	WorkOrderID string
	Kind        domain.ViolationKind
	Message     string
}

// AuditReport is the union of all four constraint checks over an input.
type AuditReport struct {
	Valid      bool
	Violations []Violation
}
