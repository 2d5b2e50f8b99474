package handlers

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/maintkit/cmms/internal/models"
	"github.com/maintkit/cmms/internal/store"
)

// PlanHandler serves maintenance plans and the preventive generation run.
type PlanHandler struct {
	Store *store.Store
}

// NewPlanHandler creates a new plan handler.
func NewPlanHandler(s *store.Store) *PlanHandler {
	return &PlanHandler{Store: s}
}

type createPlanRequest struct {
	Code          string              `json:"code"`
	Title         string              `json:"title"`
	AssetID       string              `json:"asset_id"`
	Strategy      models.PlanStrategy `json:"strategy"`
	IntervalDays  int                 `json:"interval_days"`
	MeterType     string              `json:"meter_type"`
	MeterInterval float64             `json:"meter_interval"`
	NextDueAt     *time.Time          `json:"next_due_at"`
	Active        *bool               `json:"active"`
}

// Create handles POST /api/plans
func (h *PlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPlanRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	plan := h.Store.AddPlan(store.PlanInput{
		Code:          req.Code,
		Title:         req.Title,
		AssetID:       req.AssetID,
		Strategy:      req.Strategy,
		IntervalDays:  req.IntervalDays,
		MeterType:     req.MeterType,
		MeterInterval: req.MeterInterval,
		NextDueAt:     req.NextDueAt,
		Active:        active,
	})
	writeJSON(w, http.StatusCreated, plan)
}

// List handles GET /api/plans
func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.ListPlans())
}

// Get handles GET /api/plans/{id}
func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	plan, found := h.Store.GetPlan(r.PathValue("id"))
	if !found {
		http.Error(w, "Plan not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// Update handles PATCH /api/plans/{id}
func (h *PlanHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.MaintenancePlanPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	plan, found := h.Store.UpdatePlan(r.PathValue("id"), patch)
	if !found {
		http.Error(w, "Plan not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

type generateRequest struct {
	Now *time.Time `json:"now"`
}

// Generate handles POST /api/plans/generate. The evaluation instant may be
// supplied in the body; it defaults to the server clock. Passing the instant
// through keeps the scheduler deterministic for callers that replay history.
func (h *PlanHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if r.ContentLength > 0 && !decodeJSON(w, r, &req) {
		return
	}
	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	generated := h.Store.GenerateFromPlans(now)
	if generated == nil {
		generated = []models.WorkOrder{}
	}
	log.WithFields(log.Fields{
		"instant":   now.Format(time.RFC3339),
		"generated": len(generated),
	}).Info("Preventive generation run")
	writeJSON(w, http.StatusOK, generated)
}
