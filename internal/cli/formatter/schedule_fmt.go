package formatter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/reflow/internal/app"
)

const instantLayout = "Mon 2006-01-02 15:04"

// Instant renders a UTC timestamp compactly for tables.
func Instant(t time.Time) string {
	return t.UTC().Format(instantLayout)
}

// FormatSchedule renders the work orders of a snapshot as a table.
func FormatSchedule(title string, in app.ReflowInput) string {
	var b strings.Builder
	b.WriteString(Header(title) + "\n")

	headers := []string{"Order", "Center", "Start", "End", "Work", "Prio", "Deps"}
	rows := make([][]string, 0, len(in.WorkOrders))
	for _, o := range in.WorkOrders {
		kind := fmt.Sprintf("%d min", o.TotalMin())
		if o.IsMaintenance {
			kind = Dim("maintenance")
		}
		rows = append(rows, []string{
			o.ID,
			o.WorkCenterID,
			Instant(o.Start),
			Instant(o.End),
			kind,
			fmt.Sprintf("%d", o.EffectivePriority()),
			strings.Join(o.Dependencies, ","),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}

// FormatChanges renders the per-order deltas of a reflow result.
func FormatChanges(result app.ReflowResult) string {
	var b strings.Builder
	b.WriteString(Header("Changes") + "\n")
	if len(result.Changes) == 0 {
		b.WriteString(Dim("  No changes needed.") + "\n")
		return b.String()
	}

	headers := []string{"Order", "Old Start", "New Start", "New End", "Delay", "Reason"}
	rows := make([][]string, 0, len(result.Changes))
	for _, ch := range result.Changes {
		rows = append(rows, []string{
			ch.WorkOrderID,
			Instant(ch.OriginalStart),
			Instant(ch.NewStart),
			Instant(ch.NewEnd),
			DelayCell(ch.DelayMin),
			ReasonLabel(ch.Reason),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}

// FormatMetrics renders aggregate delay and utilization statistics.
func FormatMetrics(m app.ScheduleMetrics) string {
	var b strings.Builder
	b.WriteString(Header("Metrics") + "\n")
	fmt.Fprintf(&b, "  Rescheduled:  %d\n", m.WorkOrdersRescheduled)
	fmt.Fprintf(&b, "  Unchanged:    %d\n", m.WorkOrdersUnchanged)
	fmt.Fprintf(&b, "  Total delay:  %d min\n", m.TotalDelayMin)
	fmt.Fprintf(&b, "  Avg delay:    %.2f min\n", m.AverageDelayMin)
	fmt.Fprintf(&b, "  Max delay:    %d min\n", m.MaxDelayMin)

	if len(m.UtilizationByCenter) > 0 {
		ids := make([]string, 0, len(m.UtilizationByCenter))
		for id := range m.UtilizationByCenter {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			fmt.Fprintf(&b, "  Utilization %s: %.0f%%\n", id, m.UtilizationByCenter[id]*100)
		}
	}
	return b.String()
}

// FormatAudit renders a constraint report.
func FormatAudit(report app.AuditReport) string {
	var b strings.Builder
	b.WriteString(Header("Constraint Audit") + "\n")
	fmt.Fprintf(&b, "  Verdict: %s\n", ValidIndicator(report.Valid))
	if len(report.Violations) == 0 {
		return b.String()
	}

	headers := []string{"Order", "Kind", "Detail"}
	rows := make([][]string, 0, len(report.Violations))
	for _, v := range report.Violations {
		rows = append(rows, []string{
			v.WorkOrderID,
			StyleRed.Render(string(v.Kind)),
			v.Message,
		})
	}
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}
