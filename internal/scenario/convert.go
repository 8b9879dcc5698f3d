package scenario

import (
	"fmt"
	"time"

	"github.com/alexanderramin/reflow/internal/app"
	"github.com/alexanderramin/reflow/internal/domain"
)

// ToInput validates the schema and converts it to an engine input
// snapshot. Validation covers structural problems only (bad timestamps,
// hour ranges, duplicate ids); semantic irregularities such as dangling
// dependencies are the engine's to tolerate.
func (s *Schema) ToInput() (app.ReflowInput, error) {
	var in app.ReflowInput

	centerIDs := make(map[string]bool, len(s.WorkCenters))
	for i, wc := range s.WorkCenters {
		if wc.ID == "" {
			return in, fmt.Errorf("work_centers[%d]: missing id", i)
		}
		if centerIDs[wc.ID] {
			return in, fmt.Errorf("work_centers[%d]: duplicate id %q", i, wc.ID)
		}
		centerIDs[wc.ID] = true

		center := &domain.WorkCenter{ID: wc.ID, Name: wc.Name}
		seenDays := make(map[int]bool, len(wc.Shifts))
		for j, sh := range wc.Shifts {
			field := fmt.Sprintf("work_centers[%d].shifts[%d]", i, j)
			if sh.Weekday < 0 || sh.Weekday > 6 {
				return in, fmt.Errorf("%s: weekday %d out of range 0..6", field, sh.Weekday)
			}
			if sh.StartHour < 0 || sh.EndHour > 23 || sh.StartHour >= sh.EndHour {
				return in, fmt.Errorf("%s: invalid hours [%d, %d)", field, sh.StartHour, sh.EndHour)
			}
			if seenDays[sh.Weekday] {
				return in, fmt.Errorf("%s: duplicate shift for weekday %d", field, sh.Weekday)
			}
			seenDays[sh.Weekday] = true
			center.Shifts = append(center.Shifts, domain.Shift{
				Weekday:   time.Weekday(sh.Weekday),
				StartHour: sh.StartHour,
				EndHour:   sh.EndHour,
			})
		}
		for j, mw := range wc.MaintenanceWindows {
			field := fmt.Sprintf("work_centers[%d].maintenance_windows[%d]", i, j)
			start, err := parseTimestamp(mw.Start, field+".start")
			if err != nil {
				return in, err
			}
			end, err := parseTimestamp(mw.End, field+".end")
			if err != nil {
				return in, err
			}
			if !start.Before(end) {
				return in, fmt.Errorf("%s: start must precede end", field)
			}
			center.MaintenanceWindows = append(center.MaintenanceWindows, domain.MaintenanceWindow{
				Start:  start,
				End:    end,
				Reason: mw.Reason,
			})
		}
		in.WorkCenters = append(in.WorkCenters, center)
	}

	orderIDs := make(map[string]bool, len(s.WorkOrders))
	for i, wo := range s.WorkOrders {
		field := fmt.Sprintf("work_orders[%d]", i)
		if wo.ID == "" {
			return in, fmt.Errorf("%s: missing id", field)
		}
		if orderIDs[wo.ID] {
			return in, fmt.Errorf("%s: duplicate id %q", field, wo.ID)
		}
		orderIDs[wo.ID] = true
		if wo.DurationMin < 0 {
			return in, fmt.Errorf("%s: negative duration_min %d", field, wo.DurationMin)
		}
		start, err := parseTimestamp(wo.Start, field+".start")
		if err != nil {
			return in, err
		}
		end, err := parseTimestamp(wo.End, field+".end")
		if err != nil {
			return in, err
		}
		in.WorkOrders = append(in.WorkOrders, &domain.WorkOrder{
			ID:            wo.ID,
			WorkCenterID:  wo.WorkCenterID,
			Start:         start,
			End:           end,
			DurationMin:   wo.DurationMin,
			SetupMin:      domain.NonNegative(domain.IntFromPtrWithDefault(0, wo.SetupMin)),
			Priority:      domain.ClampPriority(domain.IntFromPtrWithDefault(0, wo.Priority)),
			IsMaintenance: wo.IsMaintenance,
			Dependencies:  append([]string(nil), wo.Dependencies...),
		})
	}

	for i, mo := range s.ManufacturingOrders {
		field := fmt.Sprintf("manufacturing_orders[%d]", i)
		due, err := parseTimestamp(mo.DueDate, field+".due_date")
		if err != nil {
			return in, err
		}
		in.ManufacturingOrders = append(in.ManufacturingOrders, &domain.ManufacturingOrder{
			ID:       mo.ID,
			ItemName: mo.ItemName,
			Quantity: mo.Quantity,
			DueDate:  due,
		})
	}

	return in, nil
}

// FromInput renders a snapshot back into the file schema, e.g. to
// persist an engine result.
func FromInput(name string, in app.ReflowInput) *Schema {
	s := &Schema{Name: name}
	for _, c := range in.WorkCenters {
		wc := WorkCenterJSON{ID: c.ID, Name: c.Name}
		for _, sh := range c.Shifts {
			wc.Shifts = append(wc.Shifts, ShiftJSON{
				Weekday:   int(sh.Weekday),
				StartHour: sh.StartHour,
				EndHour:   sh.EndHour,
			})
		}
		for _, mw := range c.MaintenanceWindows {
			wc.MaintenanceWindows = append(wc.MaintenanceWindows, MaintenanceWindowJSON{
				Start:  FormatTimestamp(mw.Start),
				End:    FormatTimestamp(mw.End),
				Reason: mw.Reason,
			})
		}
		s.WorkCenters = append(s.WorkCenters, wc)
	}
	for _, o := range in.WorkOrders {
		setup := o.SetupMin
		priority := o.Priority
		s.WorkOrders = append(s.WorkOrders, WorkOrderJSON{
			ID:            o.ID,
			WorkCenterID:  o.WorkCenterID,
			Start:         FormatTimestamp(o.Start),
			End:           FormatTimestamp(o.End),
			DurationMin:   o.DurationMin,
			SetupMin:      &setup,
			Priority:      &priority,
			IsMaintenance: o.IsMaintenance,
			Dependencies:  append([]string(nil), o.Dependencies...),
		})
	}
	for _, mo := range in.ManufacturingOrders {
		s.ManufacturingOrders = append(s.ManufacturingOrders, ManufacturingOrderJSON{
			ID:       mo.ID,
			ItemName: mo.ItemName,
			Quantity: mo.Quantity,
			DueDate:  FormatTimestamp(mo.DueDate),
		})
	}
	return s
}

// FormatTimestamp renders a UTC instant in the wire format.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(value, field string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: invalid timestamp %q (expected e.g. 2025-01-06T08:00:00.000Z)", field, value)
	}
	return t.UTC(), nil
}
