package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkOrder_TotalMin(t *testing.T) {
	o := &WorkOrder{DurationMin: 120, SetupMin: 30}
	assert.Equal(t, 150, o.TotalMin())

	o = &WorkOrder{DurationMin: 45}
	assert.Equal(t, 45, o.TotalMin())
}

func TestWorkOrder_EffectivePriority(t *testing.T) {
	tests := []struct {
		name string
		raw  int
		want int
	}{
		{"unset takes default", 0, PriorityDefault},
		{"highest", 1, 1},
		{"lowest", 5, 5},
		{"below range clamps", -3, PriorityHighest},
		{"above range clamps", 9, PriorityLowest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := &WorkOrder{Priority: tc.raw}
			assert.Equal(t, tc.want, o.EffectivePriority())
		})
	}
}

func TestWorkOrder_CloneIsDeep(t *testing.T) {
	orig := &WorkOrder{
		ID:           "wo-1",
		WorkCenterID: "wc-1",
		Start:        time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC),
		End:          time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC),
		DurationMin:  120,
		Dependencies: []string{"wo-0"},
	}

	c := orig.Clone()
	c.Start = c.Start.Add(time.Hour)
	c.Dependencies[0] = "changed"
	c.Dependencies = append(c.Dependencies, "extra")

	assert.Equal(t, time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC), orig.Start)
	assert.Equal(t, []string{"wo-0"}, orig.Dependencies)
}

func TestShift_MinutesPerDay(t *testing.T) {
	assert.Equal(t, 540, Shift{StartHour: 8, EndHour: 17}.MinutesPerDay())
	assert.Equal(t, 60, Shift{StartHour: 0, EndHour: 1}.MinutesPerDay())
}

func TestMaintenanceWindow_ContainsIsHalfOpen(t *testing.T) {
	w := MaintenanceWindow{
		Start: time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 6, 14, 0, 0, 0, time.UTC),
	}

	assert.True(t, w.Contains(w.Start))
	assert.True(t, w.Contains(w.Start.Add(time.Minute)))
	assert.False(t, w.Contains(w.End))
	assert.False(t, w.Contains(w.Start.Add(-time.Minute)))
}

func TestWorkCenter_ShiftFor(t *testing.T) {
	c := &WorkCenter{Shifts: []Shift{
		{Weekday: time.Monday, StartHour: 8, EndHour: 17},
		{Weekday: time.Tuesday, StartHour: 6, EndHour: 14},
	}}

	s, ok := c.ShiftFor(time.Tuesday)
	assert.True(t, ok)
	assert.Equal(t, 6, s.StartHour)

	_, ok = c.ShiftFor(time.Sunday)
	assert.False(t, ok)
}

func TestIntFromPtrWithDefault(t *testing.T) {
	v := 7
	assert.Equal(t, 7, IntFromPtrWithDefault(3, nil, &v))
	assert.Equal(t, 3, IntFromPtrWithDefault(3, nil, nil))
	assert.Equal(t, 3, IntFromPtrWithDefault(3))
}

func TestNonNegative(t *testing.T) {
	assert.Equal(t, 0, NonNegative(-10))
	assert.Equal(t, 0, NonNegative(0))
	assert.Equal(t, 45, NonNegative(45))
}
