package handlers

import (
	"net/http"

	"github.com/maintkit/cmms/internal/models"
	"github.com/maintkit/cmms/internal/store"
)

// InventoryHandler serves the spare part inventory.
type InventoryHandler struct {
	Store *store.Store
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(s *store.Store) *InventoryHandler {
	return &InventoryHandler{Store: s}
}

type createInventoryItemRequest struct {
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	CurrentQty  float64 `json:"current_qty"`
	MinQty      float64 `json:"min_qty"`
	Cost        float64 `json:"cost"`
	LocationID  string  `json:"location_id"`
	AssetID     string  `json:"asset_id"`
}

// Create handles POST /api/inventory
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createInventoryItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	item := h.Store.AddInventoryItem(store.InventoryItemInput{
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		Unit:        req.Unit,
		CurrentQty:  req.CurrentQty,
		MinQty:      req.MinQty,
		Cost:        req.Cost,
		LocationID:  req.LocationID,
		AssetID:     req.AssetID,
	})
	writeJSON(w, http.StatusCreated, item)
}

// List handles GET /api/inventory. With ?low_stock=true only items at or
// below their minimum quantity are returned.
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("low_stock") == "true" {
		items := h.Store.LowStock()
		if items == nil {
			items = []models.InventoryItem{}
		}
		writeJSON(w, http.StatusOK, items)
		return
	}
	writeJSON(w, http.StatusOK, h.Store.ListInventoryItems())
}

// Get handles GET /api/inventory/{id}
func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, found := h.Store.GetInventoryItem(r.PathValue("id"))
	if !found {
		http.Error(w, "Inventory item not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Update handles PATCH /api/inventory/{id}
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.InventoryItemPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	item, found := h.Store.UpdateInventoryItem(r.PathValue("id"), patch)
	if !found {
		http.Error(w, "Inventory item not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

type adjustQuantityRequest struct {
	Delta float64 `json:"delta"`
}

// Adjust handles POST /api/inventory/{id}/adjust
func (h *InventoryHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	var req adjustQuantityRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	item, found := h.Store.AdjustQuantity(r.PathValue("id"), req.Delta)
	if !found {
		http.Error(w, "Inventory item not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, item)
}
