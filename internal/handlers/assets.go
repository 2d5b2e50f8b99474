package handlers

import (
	"net/http"
	"time"

	"github.com/maintkit/cmms/internal/models"
	"github.com/maintkit/cmms/internal/store"
)

// AssetHandler serves the asset registry.
type AssetHandler struct {
	Store *store.Store
}

// NewAssetHandler creates a new asset handler.
func NewAssetHandler(s *store.Store) *AssetHandler {
	return &AssetHandler{Store: s}
}

type createAssetRequest struct {
	Name               string             `json:"name"`
	Code               string             `json:"code"`
	Category           string             `json:"category"`
	LocationID         string             `json:"location_id"`
	Status             models.AssetStatus `json:"status"`
	Criticality        models.Criticality `json:"criticality"`
	Manufacturer       string             `json:"manufacturer"`
	Model              string             `json:"model"`
	SerialNumber       string             `json:"serial_number"`
	InstallationDate   *time.Time         `json:"installation_date"`
	ExpectedLifeMonths int                `json:"expected_life_months"`
}

// Create handles POST /api/assets
func (h *AssetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAssetRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	asset := h.Store.AddAsset(store.AssetInput{
		Name:               req.Name,
		Code:               req.Code,
		Category:           req.Category,
		LocationID:         req.LocationID,
		Status:             req.Status,
		Criticality:        req.Criticality,
		Manufacturer:       req.Manufacturer,
		Model:              req.Model,
		SerialNumber:       req.SerialNumber,
		InstallationDate:   req.InstallationDate,
		ExpectedLifeMonths: req.ExpectedLifeMonths,
	})
	writeJSON(w, http.StatusCreated, asset)
}

// List handles GET /api/assets
func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.ListAssets())
}

// Get handles GET /api/assets/{id}
func (h *AssetHandler) Get(w http.ResponseWriter, r *http.Request) {
	asset, found := h.Store.GetAsset(r.PathValue("id"))
	if !found {
		http.Error(w, "Asset not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

// Update handles PATCH /api/assets/{id}
func (h *AssetHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.AssetPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	asset, found := h.Store.UpdateAsset(r.PathValue("id"), patch)
	if !found {
		http.Error(w, "Asset not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

// Delete handles DELETE /api/assets/{id}
func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.Store.RemoveAsset(r.PathValue("id")) {
		http.Error(w, "Asset not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Readings handles GET /api/assets/{id}/readings
func (h *AssetHandler) Readings(w http.ResponseWriter, r *http.Request) {
	readings := h.Store.MeterReadingsForAsset(r.PathValue("id"))
	if readings == nil {
		readings = []models.MeterReading{}
	}
	writeJSON(w, http.StatusOK, readings)
}
