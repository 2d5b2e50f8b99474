package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/maintkit/cmms/internal/models"
)

// PlanInput carries the caller-supplied fields for a new maintenance plan.
type PlanInput struct {
	Code          string
	Title         string
	AssetID       string
	Strategy      models.PlanStrategy
	IntervalDays  int
	MeterType     string
	MeterInterval float64
	NextDueAt     *time.Time
	Active        bool
}

// AddPlan registers a new maintenance plan.
func (s *Store) AddPlan(in PlanInput) models.MaintenancePlan {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	plan := models.MaintenancePlan{
		ID:            uuid.New().String(),
		Code:          in.Code,
		Title:         in.Title,
		AssetID:       in.AssetID,
		Strategy:      in.Strategy,
		IntervalDays:  in.IntervalDays,
		MeterType:     in.MeterType,
		MeterInterval: in.MeterInterval,
		NextDueAt:     in.NextDueAt,
		Active:        in.Active,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.plans = append(s.plans, plan)
	return plan
}

// UpdatePlan merges the patch onto the stored plan. Unknown id is a no-op.
func (s *Store) UpdatePlan(id string, patch models.MaintenancePlanPatch) (models.MaintenancePlan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.planIndex(id)
	if idx < 0 {
		return models.MaintenancePlan{}, false
	}
	plan := s.plans[idx]
	if patch.Code != nil {
		plan.Code = *patch.Code
	}
	if patch.Title != nil {
		plan.Title = *patch.Title
	}
	if patch.AssetID != nil {
		plan.AssetID = *patch.AssetID
	}
	if patch.Strategy != nil {
		plan.Strategy = *patch.Strategy
	}
	if patch.IntervalDays != nil {
		plan.IntervalDays = *patch.IntervalDays
	}
	if patch.MeterType != nil {
		plan.MeterType = *patch.MeterType
	}
	if patch.MeterInterval != nil {
		plan.MeterInterval = *patch.MeterInterval
	}
	if patch.Active != nil {
		plan.Active = *patch.Active
	}
	plan.UpdatedAt = time.Now().UTC()
	s.plans[idx] = plan
	return plan, true
}

// GetPlan returns the plan with the given id.
func (s *Store) GetPlan(id string) (models.MaintenancePlan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.planIndex(id)
	if idx < 0 {
		return models.MaintenancePlan{}, false
	}
	return s.plans[idx], true
}

// ListPlans returns a copy of all maintenance plans.
func (s *Store) ListPlans() []models.MaintenancePlan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.MaintenancePlan, len(s.plans))
	copy(out, s.plans)
	return out
}

// GenerateFromPlans walks all active time based plans and emits one
// preventive work order for each plan whose NextDueAt has been reached at
// the supplied instant. The next due date is rebased on the evaluation
// instant rather than the old due date, so a late evaluation does not
// produce a catch-up burst and accumulated drift is reset. The caller
// provides the instant, which keeps generation deterministic under test.
//
// Meter and condition strategies are recognized but never trigger here.
func (s *Store) GenerateFromPlans(now time.Time) []models.WorkOrder {
	s.mu.Lock()
	defer s.mu.Unlock()

	var generated []models.WorkOrder
	for i := range s.plans {
		plan := &s.plans[i]
		if !plan.Active || plan.Strategy != models.StrategyTime {
			continue
		}
		if plan.IntervalDays <= 0 || plan.NextDueAt == nil {
			continue
		}
		if now.Before(*plan.NextDueAt) {
			continue
		}

		wo := s.createWorkOrderLocked(WorkOrderInput{
			Title:       plan.Title,
			Description: "Generated automatically from maintenance plan " + plan.Code,
			AssetID:     plan.AssetID,
			Status:      models.StatusOpen,
			Type:        models.TypePreventive,
			Priority:    models.PriorityMedium,
		}, now)
		generated = append(generated, wo)

		next := now.AddDate(0, 0, plan.IntervalDays)
		lastExec := now
		plan.NextDueAt = &next
		plan.LastExecutionAt = &lastExec
		plan.UpdatedAt = now
	}
	return generated
}

// planIndex returns the index for id, or -1. Callers must hold the lock.
func (s *Store) planIndex(id string) int {
	for i := range s.plans {
		if s.plans[i].ID == id {
			return i
		}
	}
	return -1
}
