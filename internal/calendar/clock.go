// Package calendar converts required working minutes into concrete UTC
// intervals, honoring a weekly shift calendar and absolute maintenance
// blackout windows. All functions are pure and operate at minute
// granularity; callers pass the owning work center's shifts and windows
// explicitly.
package calendar

import (
	"time"

	"github.com/alexanderramin/reflow/internal/domain"
)

// alignmentHorizonDays bounds the forward day-by-day search for a shift.
// A calendar whose shifts never match any weekday within the horizon is
// treated as unalignable and the original instant is returned unchanged.
const alignmentHorizonDays = 14

// maxWorkingIterations is a safety valve for WorkingEnd. A work center
// whose windows and shifts never leave an open minute would otherwise
// loop forever.
const maxWorkingIterations = 100000

// WithinShift reports whether a shift is defined for t's weekday and t's
// hour of day falls inside its half-open [StartHour, EndHour) range.
func WithinShift(t time.Time, shifts []domain.Shift) bool {
	s, ok := shiftFor(shifts, t.Weekday())
	if !ok {
		return false
	}
	return t.Hour() >= s.StartHour && t.Hour() < s.EndHour
}

// NextAvailable advances t to the next instant that is both inside a
// defined shift (when any shifts exist) and outside every maintenance
// window. Jumping past a window can land outside a shift again, so the
// two adjustments alternate until neither applies. If no shift can be
// reached within the horizon the original instant is returned.
func NextAvailable(t time.Time, shifts []domain.Shift, windows []domain.MaintenanceWindow) time.Time {
	orig := t
	for hop := 0; hop <= len(windows)+1; hop++ {
		if len(shifts) > 0 {
			aligned, ok := alignToShift(t, shifts)
			if !ok {
				return orig
			}
			t = aligned
		}
		w, blocked := windowContaining(t, windows)
		if !blocked {
			return t
		}
		t = w.End
	}
	return t
}

// WorkingEnd returns the instant at which workingMin minutes of work,
// started at start, complete. With neither shifts nor windows configured
// the calendar degrades to continuous time. Otherwise work is consumed
// in runs bounded by the current day's shift end and the next upcoming
// maintenance window.
func WorkingEnd(start time.Time, workingMin int, shifts []domain.Shift, windows []domain.MaintenanceWindow) time.Time {
	if workingMin <= 0 {
		return start
	}
	if len(shifts) == 0 && len(windows) == 0 {
		return start.Add(time.Duration(workingMin) * time.Minute)
	}

	clock := NextAvailable(start, shifts, windows)
	remaining := workingMin
	for i := 0; i < maxWorkingIterations; i++ {
		available := openMinutes(clock, remaining, shifts, windows)
		if available <= 0 {
			clock = NextAvailable(clock.Add(time.Minute), shifts, windows)
			continue
		}
		step := min(remaining, available)
		clock = clock.Add(time.Duration(step) * time.Minute)
		remaining -= step
		if remaining <= 0 {
			return clock
		}
		clock = NextAvailable(clock, shifts, windows)
	}
	return clock
}

// openMinutes computes how many contiguous minutes of work fit at clock
// before hitting the sooner of the current day's shift end or the start
// of the next maintenance window. Returns at most remaining.
func openMinutes(clock time.Time, remaining int, shifts []domain.Shift, windows []domain.MaintenanceWindow) int {
	var limit time.Time
	if len(shifts) > 0 {
		s, ok := shiftFor(shifts, clock.Weekday())
		if !ok {
			return 0
		}
		limit = dayAtHour(clock, s.EndHour)
	}
	for _, w := range windows {
		if w.Start.After(clock) && (limit.IsZero() || w.Start.Before(limit)) {
			limit = w.Start
		}
	}
	if limit.IsZero() {
		return remaining
	}
	return int(limit.Sub(clock).Minutes())
}

// alignToShift moves t forward to the nearest in-shift instant: snapping
// to the day's shift start when t precedes it, or rolling to the next
// midnight when the day has no shift or its shift has ended.
func alignToShift(t time.Time, shifts []domain.Shift) (time.Time, bool) {
	for day := 0; day <= alignmentHorizonDays; day++ {
		if s, ok := shiftFor(shifts, t.Weekday()); ok {
			shiftStart := dayAtHour(t, s.StartHour)
			shiftEnd := dayAtHour(t, s.EndHour)
			if t.Before(shiftStart) {
				return shiftStart, true
			}
			if t.Before(shiftEnd) {
				return t, true
			}
		}
		t = nextMidnight(t)
	}
	return time.Time{}, false
}

func windowContaining(t time.Time, windows []domain.MaintenanceWindow) (domain.MaintenanceWindow, bool) {
	for _, w := range windows {
		if w.Contains(t) {
			return w, true
		}
	}
	return domain.MaintenanceWindow{}, false
}

func shiftFor(shifts []domain.Shift, day time.Weekday) (domain.Shift, bool) {
	for _, s := range shifts {
		if s.Weekday == day {
			return s, true
		}
	}
	return domain.Shift{}, false
}

func dayAtHour(t time.Time, hour int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, time.UTC)
}

func nextMidnight(t time.Time) time.Time {
	return dayAtHour(t, 0).AddDate(0, 0, 1)
}
