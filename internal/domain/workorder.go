package domain

import "time"

// Priority bounds for work orders. Lower values are scheduled first.
const (
	PriorityHighest = 1
	PriorityDefault = 3
	PriorityLowest  = 5
)

// WorkOrder is a unit of production work requiring a fixed amount of
// working time on exactly one work center. Start/End are UTC instants at
// minute resolution. Maintenance orders are immovable: the reflow pass
// treats their interval as authoritative and never realigns them.
type WorkOrder struct {
	ID           string
	WorkCenterID string
	Start        time.Time
	End          time.Time

	// Duration
	DurationMin int // required working minutes, >= 0
	SetupMin    int // additive working minutes, consumed like duration

	Priority      int // 1..5, lower first; PriorityDefault when unset
	IsMaintenance bool

	// Dependencies lists predecessor work-order IDs in declared order.
	// IDs that match no known order are ignored.
	Dependencies []string
}

// TotalMin is the working time the calendar must supply for the order.
func (w *WorkOrder) TotalMin() int {
	return w.DurationMin + w.SetupMin
}

// EffectivePriority resolves the scheduling priority, clamping to the
// valid range and substituting the default for the zero value.
func (w *WorkOrder) EffectivePriority() int {
	return ClampPriority(w.Priority)
}

// Clone returns a deep copy. The engine never mutates input orders in
// place; every placement works on a clone.
func (w *WorkOrder) Clone() *WorkOrder {
	c := *w
	c.Dependencies = append([]string(nil), w.Dependencies...)
	return &c
}

// ManufacturingOrder is informational context (item, quantity, due date).
// The scheduling core accepts and returns it untouched.
type ManufacturingOrder struct {
	ID       string
	ItemName string
	Quantity int
	DueDate  time.Time
}
