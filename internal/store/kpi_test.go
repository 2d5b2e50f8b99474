package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maintkit/cmms/internal/models"
)

func ts(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return &parsed
}

func TestCalculateKPIs_EmptyInput(t *testing.T) {
	kpi := CalculateKPIs(nil)

	assert.Nil(t, kpi.MTTRHours)
	assert.Nil(t, kpi.MTBFHours)
	assert.Nil(t, kpi.AvailabilityPercent)
	assert.Nil(t, kpi.TotalDowntimeMinutes)
	assert.Nil(t, kpi.TotalWorkOrders)
	assert.Nil(t, kpi.CompletedWorkOrders)
	assert.Nil(t, kpi.CompletionRatePercent)
	assert.Nil(t, kpi.MaintenanceCost)
	assert.Nil(t, kpi.AvgResponseHours)
}

func TestCalculateKPIs_SingleFailure(t *testing.T) {
	orders := []models.WorkOrder{{
		Type:        models.TypeCorrective,
		Status:      models.StatusCompleted,
		StartedAt:   ts(t, "2024-01-01T00:00:00Z"),
		CompletedAt: ts(t, "2024-01-01T02:00:00Z"),
	}}

	kpi := CalculateKPIs(orders)

	require.NotNil(t, kpi.MTTRHours)
	assert.Equal(t, 2.0, *kpi.MTTRHours)
	assert.Nil(t, kpi.MTBFHours, "MTBF needs at least two failures")
	require.NotNil(t, kpi.TotalDowntimeMinutes)
	assert.Equal(t, 120, *kpi.TotalDowntimeMinutes)
	require.NotNil(t, kpi.TotalWorkOrders)
	assert.Equal(t, 1, *kpi.TotalWorkOrders)
	require.NotNil(t, kpi.CompletionRatePercent)
	assert.Equal(t, 100.0, *kpi.CompletionRatePercent)
}

func TestCalculateKPIs_MTBFTwoFailures(t *testing.T) {
	orders := []models.WorkOrder{
		{
			Type:        models.TypeCorrective,
			Status:      models.StatusCompleted,
			StartedAt:   ts(t, "2024-01-01T00:00:00Z"),
			CompletedAt: ts(t, "2024-01-01T01:00:00Z"),
		},
		{
			// Failure set ignores status, only type and instants matter.
			Type:        models.TypeCorrective,
			Status:      models.StatusInProgress,
			StartedAt:   ts(t, "2024-01-03T00:00:00Z"),
			CompletedAt: ts(t, "2024-01-03T12:00:00Z"),
		},
	}

	kpi := CalculateKPIs(orders)

	// Span: first start 01 Jan 00:00 to last completion 03 Jan 12:00 = 60h,
	// divided by (2 - 1) intervals.
	require.NotNil(t, kpi.MTBFHours)
	assert.Equal(t, 60.0, *kpi.MTBFHours)
}

func TestCalculateKPIs_MTBFUsesSortBoundaries(t *testing.T) {
	// The second failure starts later but completes earlier. The span must
	// still use the sorted set's last element completion, not a global max.
	orders := []models.WorkOrder{
		{
			Type:        models.TypeCorrective,
			StartedAt:   ts(t, "2024-02-01T00:00:00Z"),
			CompletedAt: ts(t, "2024-02-05T00:00:00Z"),
		},
		{
			Type:        models.TypeCorrective,
			StartedAt:   ts(t, "2024-02-02T00:00:00Z"),
			CompletedAt: ts(t, "2024-02-03T00:00:00Z"),
		},
	}

	kpi := CalculateKPIs(orders)

	// first = 01 Feb 00:00, last = completion of the latest-starting
	// failure = 03 Feb 00:00 -> 48h / 1.
	require.NotNil(t, kpi.MTBFHours)
	assert.Equal(t, 48.0, *kpi.MTBFHours)
}

func TestCalculateKPIs_DowntimeOverride(t *testing.T) {
	override := 30
	orders := []models.WorkOrder{
		{
			Type:            models.TypeCorrective,
			StartedAt:       ts(t, "2024-01-01T00:00:00Z"),
			CompletedAt:     ts(t, "2024-01-01T02:00:00Z"),
			DowntimeMinutes: &override, // explicit value wins over the 120m span
		},
		{
			Type:        models.TypeCorrective,
			StartedAt:   ts(t, "2024-01-02T00:00:00Z"),
			CompletedAt: ts(t, "2024-01-02T01:00:00Z"),
		},
	}

	kpi := CalculateKPIs(orders)

	require.NotNil(t, kpi.TotalDowntimeMinutes)
	assert.Equal(t, 90, *kpi.TotalDowntimeMinutes)
}

func TestCalculateKPIs_AvailabilityAbsentWithoutCompleted(t *testing.T) {
	orders := []models.WorkOrder{{
		Type:        models.TypeCorrective,
		Status:      models.StatusInProgress,
		StartedAt:   ts(t, "2024-01-01T00:00:00Z"),
		CompletedAt: ts(t, "2024-01-01T02:00:00Z"),
	}}

	kpi := CalculateKPIs(orders)
	assert.Nil(t, kpi.AvailabilityPercent)
}

func TestCalculateKPIs_AvailabilityAbsentOnZeroWindow(t *testing.T) {
	same := ts(t, "2024-01-01T08:00:00Z")
	orders := []models.WorkOrder{{
		Type:        models.TypePreventive,
		Status:      models.StatusCompleted,
		StartedAt:   same,
		CompletedAt: same,
	}}

	kpi := CalculateKPIs(orders)
	assert.Nil(t, kpi.AvailabilityPercent)
}

func TestCalculateKPIs_Availability(t *testing.T) {
	downtime := 60
	orders := []models.WorkOrder{
		{
			Type:            models.TypeCorrective,
			Status:          models.StatusCompleted,
			StartedAt:       ts(t, "2024-01-01T00:00:00Z"),
			CompletedAt:     ts(t, "2024-01-01T04:00:00Z"),
			DowntimeMinutes: &downtime,
		},
		{
			Type:        models.TypePreventive,
			Status:      models.StatusCompleted,
			StartedAt:   ts(t, "2024-01-01T02:00:00Z"),
			CompletedAt: ts(t, "2024-01-01T10:00:00Z"),
		},
	}

	kpi := CalculateKPIs(orders)

	// Window 00:00..10:00 = 600m, downtime 60m -> 540/600 = 90%.
	require.NotNil(t, kpi.AvailabilityPercent)
	assert.InDelta(t, 90.0, *kpi.AvailabilityPercent, 1e-9)
}

func TestCalculateKPIs_MaintenanceCostSumsAllOrders(t *testing.T) {
	orders := []models.WorkOrder{
		{Status: models.StatusOpen, Costs: models.CostSummary{Total: 100}},
		{Status: models.StatusCanceled, Costs: models.CostSummary{Total: 50.5}},
		{
			Status:      models.StatusCompleted,
			StartedAt:   ts(t, "2024-01-01T00:00:00Z"),
			CompletedAt: ts(t, "2024-01-01T01:00:00Z"),
			Costs:       models.CostSummary{Total: 9.5},
		},
	}

	kpi := CalculateKPIs(orders)

	require.NotNil(t, kpi.MaintenanceCost)
	assert.Equal(t, 160.0, *kpi.MaintenanceCost)
	require.NotNil(t, kpi.CompletionRatePercent)
	assert.InDelta(t, 100.0/3, *kpi.CompletionRatePercent, 1e-9)
}

func TestCalculateKPIs_AvgResponseSigned(t *testing.T) {
	orders := []models.WorkOrder{
		{
			PlannedStart: ts(t, "2024-03-01T08:00:00Z"),
			StartedAt:    ts(t, "2024-03-01T10:00:00Z"), // 2h late
		},
		{
			PlannedStart: ts(t, "2024-03-02T08:00:00Z"),
			StartedAt:    ts(t, "2024-03-02T07:00:00Z"), // 1h early
		},
		{
			// No planned start: excluded from the mean.
			StartedAt: ts(t, "2024-03-03T08:00:00Z"),
		},
	}

	kpi := CalculateKPIs(orders)

	require.NotNil(t, kpi.AvgResponseHours)
	assert.InDelta(t, 0.5, *kpi.AvgResponseHours, 1e-9)
}

func TestCalculateKPIs_AvgResponseAbsentWithoutData(t *testing.T) {
	orders := []models.WorkOrder{{Status: models.StatusOpen}}

	kpi := CalculateKPIs(orders)
	assert.Nil(t, kpi.AvgResponseHours)
}

func TestCalculateKPIs_DoesNotMutateInput(t *testing.T) {
	orders := []models.WorkOrder{
		{
			Type:        models.TypeCorrective,
			StartedAt:   ts(t, "2024-01-02T00:00:00Z"),
			CompletedAt: ts(t, "2024-01-02T01:00:00Z"),
		},
		{
			Type:        models.TypeCorrective,
			StartedAt:   ts(t, "2024-01-01T00:00:00Z"),
			CompletedAt: ts(t, "2024-01-01T01:00:00Z"),
		},
	}

	CalculateKPIs(orders)

	// The MTBF sort must happen on a copy; input order is preserved.
	assert.True(t, orders[0].StartedAt.After(*orders[1].StartedAt))
}
