package store

import (
	"sort"
	"time"

	"github.com/maintkit/cmms/internal/models"
)

// CalculateKPIs computes the reliability and cost metrics for a snapshot of
// work orders. It is a pure function: the store is not consulted and the
// input is not mutated. An empty snapshot yields an all-absent KPISet so
// "no data" never reads as "zero".
//
// The completed set is work orders with status completed and both start and
// completion instants; the failure set is corrective work orders with both
// instants, regardless of status.
func CalculateKPIs(workOrders []models.WorkOrder) models.KPISet {
	if len(workOrders) == 0 {
		return models.KPISet{}
	}

	var completed, failures []models.WorkOrder
	for _, wo := range workOrders {
		if wo.StartedAt == nil || wo.CompletedAt == nil {
			continue
		}
		if wo.Status == models.StatusCompleted {
			completed = append(completed, wo)
		}
		if wo.Type == models.TypeCorrective {
			failures = append(failures, wo)
		}
	}

	var kpi models.KPISet

	if len(failures) > 0 {
		var repairMinutes int
		for _, f := range failures {
			repairMinutes += diffMinutes(*f.StartedAt, *f.CompletedAt)
		}
		kpi.MTTRHours = floatPtr(float64(repairMinutes) / float64(len(failures)) / 60)
	}

	// MTBF approximation: span between the first failure start and the last
	// failure completion, divided by the number of intervals between failures.
	if len(failures) > 1 {
		sorted := make([]models.WorkOrder, len(failures))
		copy(sorted, failures)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].StartedAt.Before(*sorted[j].StartedAt)
		})
		first := *sorted[0].StartedAt
		last := *sorted[len(sorted)-1].CompletedAt
		spanHours := float64(diffMinutes(first, last)) / 60
		kpi.MTBFHours = floatPtr(spanHours / float64(len(failures)-1))
	}

	downtime := 0
	for _, f := range failures {
		if f.DowntimeMinutes != nil {
			downtime += *f.DowntimeMinutes
		} else {
			downtime += diffMinutes(*f.StartedAt, *f.CompletedAt)
		}
	}
	kpi.TotalDowntimeMinutes = intPtr(downtime)

	// Availability over the window covered by completed work orders.
	if len(completed) > 0 {
		minStart := *completed[0].StartedAt
		maxEnd := *completed[0].CompletedAt
		for _, wo := range completed[1:] {
			if wo.StartedAt.Before(minStart) {
				minStart = *wo.StartedAt
			}
			if wo.CompletedAt.After(maxEnd) {
				maxEnd = *wo.CompletedAt
			}
		}
		windowMinutes := diffMinutes(minStart, maxEnd)
		if windowMinutes > 0 {
			operational := windowMinutes - downtime
			kpi.AvailabilityPercent = floatPtr(float64(operational) / float64(windowMinutes) * 100)
		}
	}

	kpi.TotalWorkOrders = intPtr(len(workOrders))
	kpi.CompletedWorkOrders = intPtr(len(completed))
	kpi.CompletionRatePercent = floatPtr(float64(len(completed)) / float64(len(workOrders)) * 100)

	var cost float64
	for _, wo := range workOrders {
		cost += wo.Costs.Total
	}
	kpi.MaintenanceCost = floatPtr(cost)

	// Response time: planned start vs actual start, signed, so early starts
	// pull the average below zero.
	var responseHours float64
	responsive := 0
	for _, wo := range workOrders {
		if wo.StartedAt != nil && wo.PlannedStart != nil {
			responseHours += wo.StartedAt.Sub(*wo.PlannedStart).Hours()
			responsive++
		}
	}
	if responsive > 0 {
		kpi.AvgResponseHours = floatPtr(responseHours / float64(responsive))
	}

	return kpi
}

// diffMinutes is the whole-minute difference b - a, truncated toward zero.
func diffMinutes(a, b time.Time) int {
	return int(b.Sub(a) / time.Minute)
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }
