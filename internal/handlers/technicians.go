package handlers

import (
	"net/http"

	"github.com/maintkit/cmms/internal/models"
	"github.com/maintkit/cmms/internal/store"
)

// TechnicianHandler serves the technician roster.
type TechnicianHandler struct {
	Store *store.Store
}

// NewTechnicianHandler creates a new technician handler.
func NewTechnicianHandler(s *store.Store) *TechnicianHandler {
	return &TechnicianHandler{Store: s}
}

type createTechnicianRequest struct {
	Name       string   `json:"name"`
	Role       string   `json:"role"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Active     *bool    `json:"active"`
	Skills     []string `json:"skills"`
	HourlyRate float64  `json:"hourly_rate"`
}

// Create handles POST /api/technicians
func (h *TechnicianHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTechnicianRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	tech := h.Store.AddTechnician(store.TechnicianInput{
		Name:       req.Name,
		Role:       req.Role,
		Email:      req.Email,
		Phone:      req.Phone,
		Active:     active,
		Skills:     req.Skills,
		HourlyRate: req.HourlyRate,
	})
	writeJSON(w, http.StatusCreated, tech)
}

// List handles GET /api/technicians. With ?active=true only technicians
// available for assignment are returned.
func (h *TechnicianHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("active") == "true" {
		techs := h.Store.ActiveTechnicians()
		if techs == nil {
			techs = []models.Technician{}
		}
		writeJSON(w, http.StatusOK, techs)
		return
	}
	writeJSON(w, http.StatusOK, h.Store.ListTechnicians())
}

// Get handles GET /api/technicians/{id}
func (h *TechnicianHandler) Get(w http.ResponseWriter, r *http.Request) {
	tech, found := h.Store.GetTechnician(r.PathValue("id"))
	if !found {
		http.Error(w, "Technician not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, tech)
}

// Update handles PATCH /api/technicians/{id}
func (h *TechnicianHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.TechnicianPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	tech, found := h.Store.UpdateTechnician(r.PathValue("id"), patch)
	if !found {
		http.Error(w, "Technician not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, tech)
}
