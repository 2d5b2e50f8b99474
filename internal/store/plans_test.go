package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maintkit/cmms/internal/models"
)

func TestGenerateFromPlans_DuePlanEmitsWorkOrder(t *testing.T) {
	s := New()
	due := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	plan := s.AddPlan(PlanInput{
		Code:         "PM-001",
		Title:        "Monthly lubrication",
		AssetID:      "asset-1",
		Strategy:     models.StrategyTime,
		IntervalDays: 30,
		NextDueAt:    &due,
		Active:       true,
	})

	now := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	generated := s.GenerateFromPlans(now)

	require.Len(t, generated, 1)
	wo := generated[0]
	assert.Equal(t, models.TypePreventive, wo.Type)
	assert.Equal(t, models.StatusOpen, wo.Status)
	assert.Equal(t, models.PriorityMedium, wo.Priority)
	assert.Equal(t, "asset-1", wo.AssetID)
	assert.Equal(t, "Monthly lubrication", wo.Title)
	assert.Empty(t, wo.Checklist)
	assert.Empty(t, wo.Parts)
	assert.Empty(t, wo.Labor)
	assert.Equal(t, models.CostSummary{}, wo.Costs)

	// Next due is rebased on the evaluation instant: Jan 15 + 30 days, not
	// the old due date + 30 days.
	updated, found := s.GetPlan(plan.ID)
	require.True(t, found)
	require.NotNil(t, updated.NextDueAt)
	assert.Equal(t, time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC), *updated.NextDueAt)
	require.NotNil(t, updated.LastExecutionAt)
	assert.Equal(t, now, *updated.LastExecutionAt)
}

func TestGenerateFromPlans_IdempotentPerDueCheck(t *testing.T) {
	s := New()
	due := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.AddPlan(PlanInput{
		Code:         "PM-002",
		Title:        "Filter swap",
		AssetID:      "asset-2",
		Strategy:     models.StrategyTime,
		IntervalDays: 7,
		NextDueAt:    &due,
		Active:       true,
	})

	now := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	first := s.GenerateFromPlans(now)
	second := s.GenerateFromPlans(now)

	assert.Len(t, first, 1)
	assert.Empty(t, second, "advanced plan must not fire again at the same instant")
	assert.Len(t, s.ListWorkOrders(), 1)
}

func TestGenerateFromPlans_NoCatchUpBurst(t *testing.T) {
	s := New()
	due := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	s.AddPlan(PlanInput{
		Code:         "PM-003",
		Title:        "Quarterly calibration",
		AssetID:      "asset-3",
		Strategy:     models.StrategyTime,
		IntervalDays: 90,
		NextDueAt:    &due,
		Active:       true,
	})

	// A year overdue still yields exactly one work order.
	generated := s.GenerateFromPlans(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Len(t, generated, 1)
}

func TestGenerateFromPlans_SkipsIneligiblePlans(t *testing.T) {
	s := New()
	due := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	s.AddPlan(PlanInput{
		Code: "PM-INACTIVE", Strategy: models.StrategyTime,
		IntervalDays: 30, NextDueAt: &due, Active: false,
	})
	s.AddPlan(PlanInput{
		Code: "PM-METER", Strategy: models.StrategyMeter,
		MeterType: "hours", MeterInterval: 500, Active: true,
	})
	s.AddPlan(PlanInput{
		Code: "PM-CONDITION", Strategy: models.StrategyCondition, Active: true,
	})
	s.AddPlan(PlanInput{
		Code: "PM-NO-DUE", Strategy: models.StrategyTime,
		IntervalDays: 30, Active: true,
	})
	future := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	s.AddPlan(PlanInput{
		Code: "PM-FUTURE", Strategy: models.StrategyTime,
		IntervalDays: 30, NextDueAt: &future, Active: true,
	})

	generated := s.GenerateFromPlans(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))

	assert.Empty(t, generated)
	assert.Empty(t, s.ListWorkOrders())
	for _, plan := range s.ListPlans() {
		assert.Nil(t, plan.LastExecutionAt, "plan %s must be untouched", plan.Code)
	}
}

func TestGenerateFromPlans_DueExactlyNow(t *testing.T) {
	s := New()
	due := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.AddPlan(PlanInput{
		Code: "PM-EDGE", Strategy: models.StrategyTime,
		IntervalDays: 30, NextDueAt: &due, Active: true,
	})

	// now == nextDueAt counts as due.
	generated := s.GenerateFromPlans(due)
	assert.Len(t, generated, 1)
}

func TestUpdatePlan(t *testing.T) {
	s := New()
	plan := s.AddPlan(PlanInput{Code: "PM-010", Title: "old", Active: true})

	updated, found := s.UpdatePlan(plan.ID, models.MaintenancePlanPatch{
		Title:  strPtr("new"),
		Active: boolPtr(false),
	})
	require.True(t, found)
	assert.Equal(t, "new", updated.Title)
	assert.False(t, updated.Active)

	_, found = s.UpdatePlan("missing", models.MaintenancePlanPatch{})
	assert.False(t, found)
}

func boolPtr(v bool) *bool { return &v }
