package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/maintkit/cmms/internal/models"
)

// WorkOrderInput carries the caller-supplied fields for a new work order.
// The input is trusted as-is; identity, code, costs and timestamps are
// assigned by the store.
type WorkOrderInput struct {
	Title           string
	Description     string
	AssetID         string
	Status          models.WorkOrderStatus
	Type            models.WorkOrderType
	Priority        models.Priority
	Requester       string
	AssignedToIDs   []string
	PlannedStart    *time.Time
	PlannedEnd      *time.Time
	StartedAt       *time.Time
	CompletedAt     *time.Time
	DowntimeMinutes *int
	Checklist       []models.ChecklistItem
	Parts           []models.PartUsage
	Labor           []models.LaborEntry
}

// CreateWorkOrder appends a new work order to the ledger. The display code
// is derived from the current ledger size, so codes are monotonic as long
// as work orders are never deleted (they are not).
func (s *Store) CreateWorkOrder(in WorkOrderInput) models.WorkOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createWorkOrderLocked(in, time.Now().UTC())
}

func (s *Store) createWorkOrderLocked(in WorkOrderInput, now time.Time) models.WorkOrder {
	wo := models.WorkOrder{
		ID:              uuid.New().String(),
		Code:            fmt.Sprintf("OS-%05d", len(s.workOrders)+1),
		Title:           in.Title,
		Description:     in.Description,
		AssetID:         in.AssetID,
		Status:          in.Status,
		Type:            in.Type,
		Priority:        in.Priority,
		Requester:       in.Requester,
		AssignedToIDs:   in.AssignedToIDs,
		PlannedStart:    in.PlannedStart,
		PlannedEnd:      in.PlannedEnd,
		StartedAt:       in.StartedAt,
		CompletedAt:     in.CompletedAt,
		DowntimeMinutes: in.DowntimeMinutes,
		Checklist:       in.Checklist,
		Parts:           in.Parts,
		Labor:           in.Labor,
		Costs:           models.CostSummary{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if wo.AssignedToIDs == nil {
		wo.AssignedToIDs = []string{}
	}
	if wo.Checklist == nil {
		wo.Checklist = []models.ChecklistItem{}
	}
	if wo.Parts == nil {
		wo.Parts = []models.PartUsage{}
	}
	if wo.Labor == nil {
		wo.Labor = []models.LaborEntry{}
	}
	s.workOrders = append(s.workOrders, wo)
	return wo
}

// UpdateWorkOrder merges the patch onto the stored record, recomputes cost
// totals and stamps UpdatedAt. An unknown id is a silent no-op; the second
// return value tells callers whether the work order was found.
func (s *Store) UpdateWorkOrder(id string, patch models.WorkOrderPatch) (models.WorkOrder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.workOrderIndex(id)
	if idx < 0 {
		return models.WorkOrder{}, false
	}

	wo := s.workOrders[idx]
	if patch.Title != nil {
		wo.Title = *patch.Title
	}
	if patch.Description != nil {
		wo.Description = *patch.Description
	}
	if patch.AssetID != nil {
		wo.AssetID = *patch.AssetID
	}
	if patch.Status != nil {
		wo.Status = *patch.Status
	}
	if patch.Type != nil {
		wo.Type = *patch.Type
	}
	if patch.Priority != nil {
		wo.Priority = *patch.Priority
	}
	if patch.Requester != nil {
		wo.Requester = *patch.Requester
	}
	if patch.AssignedToIDs != nil {
		wo.AssignedToIDs = patch.AssignedToIDs
	}
	if patch.PlannedStart != nil {
		wo.PlannedStart = patch.PlannedStart
	}
	if patch.PlannedEnd != nil {
		wo.PlannedEnd = patch.PlannedEnd
	}
	if patch.StartedAt != nil {
		wo.StartedAt = patch.StartedAt
	}
	if patch.CompletedAt != nil {
		wo.CompletedAt = patch.CompletedAt
	}
	if patch.DowntimeMinutes != nil {
		wo.DowntimeMinutes = patch.DowntimeMinutes
	}
	if patch.Parts != nil {
		wo.Parts = patch.Parts
	}
	if patch.Labor != nil {
		wo.Labor = patch.Labor
	}
	if patch.FailureCause != nil {
		wo.FailureCause = *patch.FailureCause
	}
	if patch.RootCause != nil {
		wo.RootCause = *patch.RootCause
	}
	if patch.Notes != nil {
		wo.Notes = *patch.Notes
	}

	// Costs are recomputed on every update, not only when parts or labor
	// changed, so the invariant total = parts + labor always holds.
	wo.Costs = recomputeCosts(wo)
	wo.UpdatedAt = time.Now().UTC()
	s.workOrders[idx] = wo
	return wo, true
}

// ToggleChecklistItem flips the completed flag of a checklist item and
// optionally records a result. No-op when the work order or item is unknown.
func (s *Store) ToggleChecklistItem(woID, itemID string, result *string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.workOrderIndex(woID)
	if idx < 0 {
		return false
	}
	for i := range s.workOrders[idx].Checklist {
		item := &s.workOrders[idx].Checklist[i]
		if item.ID != itemID {
			continue
		}
		item.Completed = !item.Completed
		if result != nil {
			item.Result = *result
		}
		s.workOrders[idx].UpdatedAt = time.Now().UTC()
		return true
	}
	return false
}

// AddChecklistItem appends a new unchecked item to the work order checklist.
func (s *Store) AddChecklistItem(woID, description string, mandatory bool) (models.ChecklistItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.workOrderIndex(woID)
	if idx < 0 {
		return models.ChecklistItem{}, false
	}
	item := models.ChecklistItem{
		ID:          uuid.New().String(),
		Description: description,
		Mandatory:   mandatory,
		Completed:   false,
	}
	s.workOrders[idx].Checklist = append(s.workOrders[idx].Checklist, item)
	s.workOrders[idx].UpdatedAt = time.Now().UTC()
	return item, true
}

// CompleteWorkOrder forces status to completed and stamps CompletedAt.
// It deliberately does not check that mandatory checklist items are done;
// the transition is always allowed.
func (s *Store) CompleteWorkOrder(id string) (models.WorkOrder, bool) {
	now := time.Now().UTC()
	status := models.StatusCompleted
	return s.UpdateWorkOrder(id, models.WorkOrderPatch{
		Status:      &status,
		CompletedAt: &now,
	})
}

// GetWorkOrder returns the work order with the given id.
func (s *Store) GetWorkOrder(id string) (models.WorkOrder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.workOrderIndex(id)
	if idx < 0 {
		return models.WorkOrder{}, false
	}
	return s.workOrders[idx], true
}

// ListWorkOrders returns a copy of the full ledger.
func (s *Store) ListWorkOrders() []models.WorkOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.WorkOrder, len(s.workOrders))
	copy(out, s.workOrders)
	return out
}

// OpenWorkOrders returns work orders that are neither completed nor canceled.
func (s *Store) OpenWorkOrders() []models.WorkOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.WorkOrder
	for _, wo := range s.workOrders {
		if wo.Status != models.StatusCompleted && wo.Status != models.StatusCanceled {
			out = append(out, wo)
		}
	}
	return out
}

// workOrderIndex returns the ledger index for id, or -1. Callers must hold the lock.
func (s *Store) workOrderIndex(id string) int {
	for i := range s.workOrders {
		if s.workOrders[i].ID == id {
			return i
		}
	}
	return -1
}

func recomputeCosts(wo models.WorkOrder) models.CostSummary {
	var c models.CostSummary
	for _, p := range wo.Parts {
		c.Parts += p.Quantity * p.UnitCost
	}
	for _, l := range wo.Labor {
		c.Labor += l.Hours * l.HourlyRate
	}
	c.Total = c.Parts + c.Labor
	return c
}
