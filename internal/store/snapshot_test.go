package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maintkit/cmms/internal/models"
)

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	s := New()
	asset := s.AddAsset(AssetInput{Name: "Lathe", Code: "LTH-1", Status: models.AssetOperational})
	s.AddInventoryItem(InventoryItemInput{SKU: "BRG-6204", Name: "Bearing", CurrentQty: 10, MinQty: 2})
	s.AddTechnician(TechnicianInput{Name: "Ada", Active: true, Skills: []string{"welding"}})
	s.AddLocation(LocationInput{Name: "Shop floor"})
	wo := s.CreateWorkOrder(WorkOrderInput{Title: "Grease spindle", AssetID: asset.ID})
	s.AddChecklistItem(wo.ID, "Wipe rails", true)
	due := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	s.AddPlan(PlanInput{Code: "PM-1", Strategy: models.StrategyTime, IntervalDays: 14, NextDueAt: &due, Active: true})
	s.RecordMeterReading(asset.ID, "hours", 1042, time.Now().UTC())

	snap := s.Snapshot()

	restored := New()
	restored.Restore(snap)

	assert.Equal(t, s.ListAssets(), restored.ListAssets())
	assert.Equal(t, s.ListInventoryItems(), restored.ListInventoryItems())
	assert.Equal(t, s.ListTechnicians(), restored.ListTechnicians())
	assert.Equal(t, s.ListLocations(), restored.ListLocations())
	assert.Equal(t, s.ListWorkOrders(), restored.ListWorkOrders())
	assert.Equal(t, s.ListPlans(), restored.ListPlans())
	assert.Equal(t, s.ListMeterReadings(), restored.ListMeterReadings())
}

func TestSnapshot_IsDeepCopy(t *testing.T) {
	s := New()
	wo := s.CreateWorkOrder(WorkOrderInput{Title: "wo"})
	item, _ := s.AddChecklistItem(wo.ID, "step", true)

	snap := s.Snapshot()
	require.Len(t, snap.WorkOrders, 1)
	snap.WorkOrders[0].Checklist[0].Description = "tampered"

	got, _ := s.GetWorkOrder(wo.ID)
	assert.Equal(t, "step", got.Checklist[0].Description)
	assert.Equal(t, item.ID, got.Checklist[0].ID)
}

func TestRestore_EmptySnapshotResetsState(t *testing.T) {
	s := New()
	s.CreateWorkOrder(WorkOrderInput{Title: "wo"})
	s.AddAsset(AssetInput{Name: "a"})

	s.Restore(Snapshot{})

	assert.Empty(t, s.ListWorkOrders())
	assert.Empty(t, s.ListAssets())

	// A store restored from empty behaves like a fresh one: the next work
	// order gets the first code again.
	wo := s.CreateWorkOrder(WorkOrderInput{Title: "fresh"})
	assert.Equal(t, "OS-00001", wo.Code)
}

func TestRestore_ReplacesExistingState(t *testing.T) {
	first := New()
	first.CreateWorkOrder(WorkOrderInput{Title: "from snapshot"})
	snap := first.Snapshot()

	second := New()
	second.CreateWorkOrder(WorkOrderInput{Title: "to be replaced"})
	second.CreateWorkOrder(WorkOrderInput{Title: "also replaced"})

	second.Restore(snap)

	orders := second.ListWorkOrders()
	require.Len(t, orders, 1)
	assert.Equal(t, "from snapshot", orders[0].Title)
}
