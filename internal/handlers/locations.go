package handlers

import (
	"net/http"

	"github.com/maintkit/cmms/internal/models"
	"github.com/maintkit/cmms/internal/store"
)

// LocationHandler serves the location registry and its tree projection.
type LocationHandler struct {
	Store *store.Store
}

// NewLocationHandler creates a new location handler.
func NewLocationHandler(s *store.Store) *LocationHandler {
	return &LocationHandler{Store: s}
}

type createLocationRequest struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	ParentID    string `json:"parent_id"`
	Description string `json:"description"`
}

// Create handles POST /api/locations
func (h *LocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLocationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	loc := h.Store.AddLocation(store.LocationInput{
		Name:        req.Name,
		Code:        req.Code,
		ParentID:    req.ParentID,
		Description: req.Description,
	})
	writeJSON(w, http.StatusCreated, loc)
}

// List handles GET /api/locations
func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.ListLocations())
}

// Tree handles GET /api/locations/tree
func (h *LocationHandler) Tree(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.LocationTree())
}

// Get handles GET /api/locations/{id}
func (h *LocationHandler) Get(w http.ResponseWriter, r *http.Request) {
	loc, found := h.Store.GetLocation(r.PathValue("id"))
	if !found {
		http.Error(w, "Location not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, loc)
}

// Update handles PATCH /api/locations/{id}
func (h *LocationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.LocationPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	loc, found := h.Store.UpdateLocation(r.PathValue("id"), patch)
	if !found {
		http.Error(w, "Location not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, loc)
}

// Delete handles DELETE /api/locations/{id}
func (h *LocationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.Store.RemoveLocation(r.PathValue("id")) {
		http.Error(w, "Location not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
