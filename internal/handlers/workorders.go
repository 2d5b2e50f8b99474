package handlers

import (
	"net/http"
	"time"

	"github.com/maintkit/cmms/internal/models"
	"github.com/maintkit/cmms/internal/store"
)

// WorkOrderHandler serves the work order ledger.
type WorkOrderHandler struct {
	Store *store.Store
}

// NewWorkOrderHandler creates a new work order handler.
func NewWorkOrderHandler(s *store.Store) *WorkOrderHandler {
	return &WorkOrderHandler{Store: s}
}

type createWorkOrderRequest struct {
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	AssetID         string                 `json:"asset_id"`
	Status          models.WorkOrderStatus `json:"status"`
	Type            models.WorkOrderType   `json:"type"`
	Priority        models.Priority        `json:"priority"`
	Requester       string                 `json:"requester"`
	AssignedToIDs   []string               `json:"assigned_to_ids"`
	PlannedStart    *time.Time             `json:"planned_start"`
	PlannedEnd      *time.Time             `json:"planned_end"`
	StartedAt       *time.Time             `json:"started_at"`
	CompletedAt     *time.Time             `json:"completed_at"`
	DowntimeMinutes *int                   `json:"downtime_minutes"`
	Checklist       []models.ChecklistItem `json:"checklist"`
	Parts           []models.PartUsage     `json:"parts"`
	Labor           []models.LaborEntry    `json:"labor"`
}

// Create handles POST /api/workorders
func (h *WorkOrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createWorkOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Status == "" {
		req.Status = models.StatusOpen
	}
	wo := h.Store.CreateWorkOrder(store.WorkOrderInput{
		Title:           req.Title,
		Description:     req.Description,
		AssetID:         req.AssetID,
		Status:          req.Status,
		Type:            req.Type,
		Priority:        req.Priority,
		Requester:       req.Requester,
		AssignedToIDs:   req.AssignedToIDs,
		PlannedStart:    req.PlannedStart,
		PlannedEnd:      req.PlannedEnd,
		StartedAt:       req.StartedAt,
		CompletedAt:     req.CompletedAt,
		DowntimeMinutes: req.DowntimeMinutes,
		Checklist:       req.Checklist,
		Parts:           req.Parts,
		Labor:           req.Labor,
	})
	writeJSON(w, http.StatusCreated, wo)
}

// List handles GET /api/workorders. With ?open=true only work orders that
// are neither completed nor canceled are returned.
func (h *WorkOrderHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("open") == "true" {
		orders := h.Store.OpenWorkOrders()
		if orders == nil {
			orders = []models.WorkOrder{}
		}
		writeJSON(w, http.StatusOK, orders)
		return
	}
	writeJSON(w, http.StatusOK, h.Store.ListWorkOrders())
}

// Get handles GET /api/workorders/{id}
func (h *WorkOrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	wo, found := h.Store.GetWorkOrder(r.PathValue("id"))
	if !found {
		http.Error(w, "Work order not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, wo)
}

// Update handles PATCH /api/workorders/{id}
func (h *WorkOrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.WorkOrderPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	wo, found := h.Store.UpdateWorkOrder(r.PathValue("id"), patch)
	if !found {
		http.Error(w, "Work order not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, wo)
}

type addChecklistItemRequest struct {
	Description string `json:"description"`
	Mandatory   *bool  `json:"mandatory"`
}

// AddChecklistItem handles POST /api/workorders/{id}/checklist
func (h *WorkOrderHandler) AddChecklistItem(w http.ResponseWriter, r *http.Request) {
	var req addChecklistItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	mandatory := true
	if req.Mandatory != nil {
		mandatory = *req.Mandatory
	}
	item, found := h.Store.AddChecklistItem(r.PathValue("id"), req.Description, mandatory)
	if !found {
		http.Error(w, "Work order not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

type toggleChecklistItemRequest struct {
	Result *string `json:"result"`
}

// ToggleChecklistItem handles POST /api/workorders/{id}/checklist/{itemId}/toggle
func (h *WorkOrderHandler) ToggleChecklistItem(w http.ResponseWriter, r *http.Request) {
	var req toggleChecklistItemRequest
	if r.ContentLength > 0 && !decodeJSON(w, r, &req) {
		return
	}
	if !h.Store.ToggleChecklistItem(r.PathValue("id"), r.PathValue("itemId"), req.Result) {
		http.Error(w, "Work order or checklist item not found", http.StatusNotFound)
		return
	}
	wo, _ := h.Store.GetWorkOrder(r.PathValue("id"))
	writeJSON(w, http.StatusOK, wo)
}

// Complete handles POST /api/workorders/{id}/complete
func (h *WorkOrderHandler) Complete(w http.ResponseWriter, r *http.Request) {
	wo, found := h.Store.CompleteWorkOrder(r.PathValue("id"))
	if !found {
		http.Error(w, "Work order not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, wo)
}
