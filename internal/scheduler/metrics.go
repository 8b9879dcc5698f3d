package scheduler

import (
	"math"

	"github.com/alexanderramin/reflow/internal/app"
	"github.com/alexanderramin/reflow/internal/domain"
)

// ComputeMetrics aggregates delay and utilization statistics from a
// pass's change list and final placement. Only strictly positive delays
// feed the totals; orders that landed earlier keep their change record
// but never offset the sum.
func ComputeMetrics(changes []app.ReflowChange, orders []*domain.WorkOrder, centers []*domain.WorkCenter) app.ScheduleMetrics {
	m := app.ScheduleMetrics{
		UtilizationByCenter: make(map[string]float64, len(centers)),
	}

	delayed := 0
	for _, ch := range changes {
		if ch.DelayMin <= 0 {
			continue
		}
		delayed++
		m.TotalDelayMin += ch.DelayMin
		if ch.DelayMin > m.MaxDelayMin {
			m.MaxDelayMin = ch.DelayMin
		}
	}
	if delayed > 0 {
		m.AverageDelayMin = round2(float64(m.TotalDelayMin) / float64(delayed))
	}

	m.WorkOrdersRescheduled = len(changes)
	nonMaintenance := 0
	loadByCenter := make(map[string]int, len(centers))
	for _, o := range orders {
		if !o.IsMaintenance {
			nonMaintenance++
		}
		loadByCenter[o.WorkCenterID] += o.TotalMin()
	}
	m.WorkOrdersUnchanged = nonMaintenance - m.WorkOrdersRescheduled

	// Weekly capacity is approximated as shifts-per-week times the first
	// defined shift's length. Per-day length variation and maintenance
	// consumption are ignored on purpose.
	for _, c := range centers {
		if len(c.Shifts) == 0 {
			m.UtilizationByCenter[c.ID] = 0
			continue
		}
		capacity := float64(len(c.Shifts) * c.Shifts[0].MinutesPerDay())
		m.UtilizationByCenter[c.ID] = round2(float64(loadByCenter[c.ID]) / capacity)
	}

	return m
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
