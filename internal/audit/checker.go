// Package audit independently re-verifies a schedule against the four
// constraint classes: dependency ordering, work center exclusivity,
// shift membership, and maintenance avoidance. It deliberately derives
// its own interval and shift arithmetic instead of calling the calendar
// or scheduler packages, so a bug shared between producer and checker is
// structurally unlikely. It reads only the data model and works equally
// on engine output or hand-authored schedules.
package audit

import (
	"fmt"
	"time"

	"github.com/alexanderramin/reflow/internal/app"
	"github.com/alexanderramin/reflow/internal/domain"
)

// Validate runs all four checks over the input and returns the union of
// findings. Violations are reported, never raised; Valid is true iff the
// list is empty.
func Validate(in app.ReflowInput) app.AuditReport {
	centers := in.CenterByID()
	byID := make(map[string]*domain.WorkOrder, len(in.WorkOrders))
	for _, o := range in.WorkOrders {
		byID[o.ID] = o
	}

	var violations []app.Violation
	violations = append(violations, checkDependencies(in.WorkOrders, byID)...)
	violations = append(violations, checkExclusivity(in.WorkOrders)...)
	violations = append(violations, checkShiftMembership(in.WorkOrders, centers)...)
	violations = append(violations, checkMaintenance(in.WorkOrders, centers)...)

	return app.AuditReport{
		Valid:      len(violations) == 0,
		Violations: violations,
	}
}

// checkDependencies requires every non-maintenance order to start at or
// after the end of each resolvable dependency, using the values present
// in the input as-is.
func checkDependencies(orders []*domain.WorkOrder, byID map[string]*domain.WorkOrder) []app.Violation {
	var out []app.Violation
	for _, o := range orders {
		if o.IsMaintenance {
			continue
		}
		for _, depID := range o.Dependencies {
			dep, ok := byID[depID]
			if !ok {
				continue
			}
			if o.Start.Before(dep.End) {
				out = append(out, app.Violation{
					WorkOrderID: o.ID,
					Kind:        domain.ViolationDependency,
					Message: fmt.Sprintf("starts %s before dependency %s ends %s",
						o.Start.Format(timeLayout), depID, dep.End.Format(timeLayout)),
				})
			}
		}
	}
	return out
}

// checkExclusivity flags every pair of orders, maintenance included,
// whose half-open intervals overlap on a shared work center.
func checkExclusivity(orders []*domain.WorkOrder) []app.Violation {
	var out []app.Violation
	for i := 0; i < len(orders); i++ {
		for j := i + 1; j < len(orders); j++ {
			a, b := orders[i], orders[j]
			if a.WorkCenterID != b.WorkCenterID {
				continue
			}
			if a.Start.Before(b.End) && a.End.After(b.Start) {
				out = append(out, app.Violation{
					WorkOrderID: b.ID,
					Kind:        domain.ViolationExclusivity,
					Message:     fmt.Sprintf("overlaps %s on work center %s", a.ID, a.WorkCenterID),
				})
			}
		}
	}
	return out
}

// checkShiftMembership requires non-maintenance orders on a center with
// defined shifts to start inside a shift window. The end must be inside
// a shift window too, or land exactly on that day's shift end boundary.
func checkShiftMembership(orders []*domain.WorkOrder, centers map[string]*domain.WorkCenter) []app.Violation {
	var out []app.Violation
	for _, o := range orders {
		if o.IsMaintenance {
			continue
		}
		center := centers[o.WorkCenterID]
		if center == nil || len(center.Shifts) == 0 {
			continue
		}
		if !inShift(o.Start, center) {
			out = append(out, app.Violation{
				WorkOrderID: o.ID,
				Kind:        domain.ViolationShift,
				Message:     fmt.Sprintf("start %s is outside every shift", o.Start.Format(timeLayout)),
			})
		}
		if !inShift(o.End, center) && !atShiftEnd(o.End, center) {
			out = append(out, app.Violation{
				WorkOrderID: o.ID,
				Kind:        domain.ViolationShift,
				Message:     fmt.Sprintf("end %s is outside every shift", o.End.Format(timeLayout)),
			})
		}
	}
	return out
}

// checkMaintenance flags non-maintenance orders whose interval overlaps
// any maintenance window on their work center.
func checkMaintenance(orders []*domain.WorkOrder, centers map[string]*domain.WorkCenter) []app.Violation {
	var out []app.Violation
	for _, o := range orders {
		if o.IsMaintenance {
			continue
		}
		center := centers[o.WorkCenterID]
		if center == nil {
			continue
		}
		for _, w := range center.MaintenanceWindows {
			if o.Start.Before(w.End) && o.End.After(w.Start) {
				out = append(out, app.Violation{
					WorkOrderID: o.ID,
					Kind:        domain.ViolationMaintenance,
					Message: fmt.Sprintf("overlaps maintenance window %s..%s",
						w.Start.Format(timeLayout), w.End.Format(timeLayout)),
				})
			}
		}
	}
	return out
}

const timeLayout = "2006-01-02T15:04Z"

func inShift(t time.Time, center *domain.WorkCenter) bool {
	s, ok := center.ShiftFor(t.Weekday())
	if !ok {
		return false
	}
	minuteOfDay := t.Hour()*60 + t.Minute()
	return minuteOfDay >= s.StartHour*60 && minuteOfDay < s.EndHour*60
}

func atShiftEnd(t time.Time, center *domain.WorkCenter) bool {
	s, ok := center.ShiftFor(t.Weekday())
	if !ok {
		return false
	}
	return t.Hour()*60+t.Minute() == s.EndHour*60
}
