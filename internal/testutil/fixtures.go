// Package testutil provides fixtures shared by tests across packages.
package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/reflow/internal/domain"
)

// Monday is the canonical week anchor used by fixtures:
// Monday 2025-01-06 00:00 UTC.
var Monday = time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

// At returns an instant offset from the Monday anchor: day 0 is Monday,
// hour/minute are clock time that day.
func At(day, hour, minute int) time.Time {
	return Monday.AddDate(0, 0, day).Add(
		time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// WorkOrder options
type OrderOption func(*domain.WorkOrder)

func WithStart(t time.Time) OrderOption {
	return func(o *domain.WorkOrder) {
		o.Start = t
		o.End = t.Add(time.Duration(o.DurationMin) * time.Minute)
	}
}

func WithEnd(t time.Time) OrderOption {
	return func(o *domain.WorkOrder) { o.End = t }
}

func WithDuration(min int) OrderOption {
	return func(o *domain.WorkOrder) {
		o.DurationMin = min
		o.End = o.Start.Add(time.Duration(min) * time.Minute)
	}
}

func WithSetup(min int) OrderOption {
	return func(o *domain.WorkOrder) { o.SetupMin = min }
}

func WithPriority(p int) OrderOption {
	return func(o *domain.WorkOrder) { o.Priority = p }
}

func WithDependencies(ids ...string) OrderOption {
	return func(o *domain.WorkOrder) { o.Dependencies = ids }
}

func AsMaintenance() OrderOption {
	return func(o *domain.WorkOrder) { o.IsMaintenance = true }
}

// NewTestOrder builds a 120-minute order starting Monday 08:00 on the
// given center, adjustable through options.
func NewTestOrder(id, centerID string, opts ...OrderOption) *domain.WorkOrder {
	o := &domain.WorkOrder{
		ID:           id,
		WorkCenterID: centerID,
		Start:        At(0, 8, 0),
		End:          At(0, 10, 0),
		DurationMin:  120,
		Priority:     domain.PriorityDefault,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WorkCenter options
type CenterOption func(*domain.WorkCenter)

func WithShift(day time.Weekday, startHour, endHour int) CenterOption {
	return func(c *domain.WorkCenter) {
		c.Shifts = append(c.Shifts, domain.Shift{
			Weekday:   day,
			StartHour: startHour,
			EndHour:   endHour,
		})
	}
}

func WithWeekdayShifts(startHour, endHour int) CenterOption {
	return func(c *domain.WorkCenter) {
		for day := time.Monday; day <= time.Friday; day++ {
			c.Shifts = append(c.Shifts, domain.Shift{
				Weekday:   day,
				StartHour: startHour,
				EndHour:   endHour,
			})
		}
	}
}

func WithMaintenanceWindow(start, end time.Time, reason string) CenterOption {
	return func(c *domain.WorkCenter) {
		c.MaintenanceWindows = append(c.MaintenanceWindows, domain.MaintenanceWindow{
			Start:  start,
			End:    end,
			Reason: reason,
		})
	}
}

// NewTestCenter builds a work center with no shifts (continuously
// available) unless options add them.
func NewTestCenter(id string, opts ...CenterOption) *domain.WorkCenter {
	c := &domain.WorkCenter{
		ID:   id,
		Name: "Center " + id,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewTestManufacturingOrder builds pass-through context with a fresh id.
func NewTestManufacturingOrder(item string) *domain.ManufacturingOrder {
	return &domain.ManufacturingOrder{
		ID:       uuid.NewString(),
		ItemName: item,
		Quantity: 25,
		DueDate:  Monday.AddDate(0, 0, 14),
	}
}

// WeekdayShifts returns standalone Mon-Fri shifts for calendar tests.
func WeekdayShifts(startHour, endHour int) []domain.Shift {
	shifts := make([]domain.Shift, 0, 5)
	for day := time.Monday; day <= time.Friday; day++ {
		shifts = append(shifts, domain.Shift{
			Weekday:   day,
			StartHour: startHour,
			EndHour:   endHour,
		})
	}
	return shifts
}
