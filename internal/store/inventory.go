package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/maintkit/cmms/internal/models"
)

// InventoryItemInput carries the caller-supplied fields for a new item.
type InventoryItemInput struct {
	SKU         string
	Name        string
	Description string
	Unit        string
	CurrentQty  float64
	MinQty      float64
	Cost        float64
	LocationID  string
	AssetID     string
}

// AddInventoryItem registers a new spare part.
func (s *Store) AddInventoryItem(in InventoryItemInput) models.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	item := models.InventoryItem{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		Unit:        in.Unit,
		CurrentQty:  in.CurrentQty,
		MinQty:      in.MinQty,
		Cost:        in.Cost,
		LocationID:  in.LocationID,
		AssetID:     in.AssetID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.items = append(s.items, item)
	return item
}

// UpdateInventoryItem merges the patch onto the stored item.
func (s *Store) UpdateInventoryItem(id string, patch models.InventoryItemPatch) (models.InventoryItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.itemIndex(id)
	if idx < 0 {
		return models.InventoryItem{}, false
	}
	item := s.items[idx]
	if patch.SKU != nil {
		item.SKU = *patch.SKU
	}
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Unit != nil {
		item.Unit = *patch.Unit
	}
	if patch.CurrentQty != nil {
		item.CurrentQty = *patch.CurrentQty
	}
	if patch.MinQty != nil {
		item.MinQty = *patch.MinQty
	}
	if patch.Cost != nil {
		item.Cost = *patch.Cost
	}
	if patch.LocationID != nil {
		item.LocationID = *patch.LocationID
	}
	if patch.AssetID != nil {
		item.AssetID = *patch.AssetID
	}
	item.UpdatedAt = time.Now().UTC()
	s.items[idx] = item
	return item, true
}

// AdjustQuantity changes the stock level of an item by delta, which may be
// negative. Stock is allowed to go below zero; callers decide what that means.
func (s *Store) AdjustQuantity(id string, delta float64) (models.InventoryItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.itemIndex(id)
	if idx < 0 {
		return models.InventoryItem{}, false
	}
	s.items[idx].CurrentQty += delta
	s.items[idx].UpdatedAt = time.Now().UTC()
	return s.items[idx], true
}

// GetInventoryItem returns the item with the given id.
func (s *Store) GetInventoryItem(id string) (models.InventoryItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.itemIndex(id)
	if idx < 0 {
		return models.InventoryItem{}, false
	}
	return s.items[idx], true
}

// ListInventoryItems returns a copy of all items.
func (s *Store) ListInventoryItems() []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.InventoryItem, len(s.items))
	copy(out, s.items)
	return out
}

// LowStock returns items at or below their minimum quantity.
func (s *Store) LowStock() []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.InventoryItem
	for _, item := range s.items {
		if item.CurrentQty <= item.MinQty {
			out = append(out, item)
		}
	}
	return out
}

// itemIndex returns the index for id, or -1. Callers must hold the lock.
func (s *Store) itemIndex(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
