package domain

import "time"

// Shift is a recurring weekly operating window for a work center.
// Hours are whole clock hours, half-open [StartHour, EndHour).
type Shift struct {
	Weekday   time.Weekday // 0=Sunday .. 6=Saturday
	StartHour int          // 0..23
	EndHour   int          // 0..23, > StartHour
}

// MinutesPerDay is the working length of the shift.
func (s Shift) MinutesPerDay() int {
	return (s.EndHour - s.StartHour) * 60
}

// MaintenanceWindow is an absolute blackout interval [Start, End) during
// which the work center is unavailable regardless of shift.
type MaintenanceWindow struct {
	Start  time.Time
	End    time.Time
	Reason string
}

// Contains reports whether t falls inside the half-open window.
func (m MaintenanceWindow) Contains(t time.Time) bool {
	return !t.Before(m.Start) && t.Before(m.End)
}

// WorkCenter is a resource that processes at most one work order at a
// time. At most one shift per weekday; a center with no shifts at all is
// treated as continuously available.
type WorkCenter struct {
	ID                 string
	Name               string
	Shifts             []Shift
	MaintenanceWindows []MaintenanceWindow
}

// ShiftFor returns the shift defined for the given weekday, if any.
func (c *WorkCenter) ShiftFor(day time.Weekday) (Shift, bool) {
	for _, s := range c.Shifts {
		if s.Weekday == day {
			return s, true
		}
	}
	return Shift{}, false
}
