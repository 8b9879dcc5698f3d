package scenario

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// GenerateOptions tunes the random scenario builder. The zero value is
// not useful; start from DefaultGenerateOptions.
type GenerateOptions struct {
	Seed        int64
	WorkCenters int
	WorkOrders  int

	// WeekStart anchors all generated timestamps; it should be a Monday
	// at midnight UTC so the default Mon-Fri shifts line up.
	WeekStart time.Time

	// MaintenancePerCenter is the number of blackout windows generated
	// for each work center.
	MaintenancePerCenter int

	// DependencyChance is the probability (0..1) that an order declares
	// a predecessor among the orders generated before it. Referencing
	// only earlier orders keeps the result acyclic by construction.
	DependencyChance float64
}

// DefaultGenerateOptions returns a medium-sized contended scenario.
func DefaultGenerateOptions(seed int64) GenerateOptions {
	return GenerateOptions{
		Seed:                 seed,
		WorkCenters:          3,
		WorkOrders:           12,
		WeekStart:            time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		MaintenancePerCenter: 1,
		DependencyChance:     0.4,
	}
}

// Generate builds a deterministic random scenario from the seed. All
// orders are stamped with naive 08:00 starts on the same few days, so a
// reflow pass always has conflicts to resolve.
func Generate(opts GenerateOptions) *Schema {
	rng := rand.New(rand.NewSource(opts.Seed))
	s := &Schema{
		Name: fmt.Sprintf("generated-%s", uuid.NewString()[:8]),
	}

	for i := 0; i < opts.WorkCenters; i++ {
		wc := WorkCenterJSON{
			ID:   fmt.Sprintf("wc-%d", i+1),
			Name: fmt.Sprintf("Work Center %d", i+1),
		}
		startHour := 6 + rng.Intn(3) // 6..8
		endHour := 16 + rng.Intn(3)  // 16..18
		for day := 1; day <= 5; day++ {
			wc.Shifts = append(wc.Shifts, ShiftJSON{
				Weekday:   day,
				StartHour: startHour,
				EndHour:   endHour,
			})
		}
		for m := 0; m < opts.MaintenancePerCenter; m++ {
			day := 1 + rng.Intn(5)
			from := startHour + rng.Intn(4)
			length := 1 + rng.Intn(3)
			winStart := opts.WeekStart.AddDate(0, 0, day-1).Add(time.Duration(from) * time.Hour)
			wc.MaintenanceWindows = append(wc.MaintenanceWindows, MaintenanceWindowJSON{
				Start:  FormatTimestamp(winStart),
				End:    FormatTimestamp(winStart.Add(time.Duration(length) * time.Hour)),
				Reason: "scheduled maintenance",
			})
		}
		s.WorkCenters = append(s.WorkCenters, wc)
	}

	for i := 0; i < opts.WorkOrders; i++ {
		wcIdx := rng.Intn(opts.WorkCenters)
		day := rng.Intn(3) // bunch orders onto the first days to force conflicts
		start := opts.WeekStart.AddDate(0, 0, day).Add(8 * time.Hour)
		duration := (1 + rng.Intn(8)) * 60 // 60..480 min

		wo := WorkOrderJSON{
			ID:           fmt.Sprintf("wo-%d", i+1),
			WorkCenterID: s.WorkCenters[wcIdx].ID,
			Start:        FormatTimestamp(start),
			End:          FormatTimestamp(start.Add(time.Duration(duration) * time.Minute)),
			DurationMin:  duration,
		}
		if rng.Intn(3) == 0 {
			setup := (1 + rng.Intn(4)) * 15 // 15..60 min
			wo.SetupMin = &setup
		}
		if rng.Intn(2) == 0 {
			priority := 1 + rng.Intn(5)
			wo.Priority = &priority
		}
		if i > 0 && rng.Float64() < opts.DependencyChance {
			wo.Dependencies = []string{fmt.Sprintf("wo-%d", 1+rng.Intn(i))}
		}
		s.WorkOrders = append(s.WorkOrders, wo)

		s.ManufacturingOrders = append(s.ManufacturingOrders, ManufacturingOrderJSON{
			ID:       fmt.Sprintf("mo-%d", i+1),
			ItemName: fmt.Sprintf("Item %c", 'A'+i%26),
			Quantity: 10 + rng.Intn(90),
			DueDate:  FormatTimestamp(opts.WeekStart.AddDate(0, 0, 7+rng.Intn(7))),
		})
	}

	return s
}
