package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/maintkit/cmms/internal/models"
)

// AssetInput carries the caller-supplied fields for a new asset.
type AssetInput struct {
	Name               string
	Code               string
	Category           string
	LocationID         string
	Status             models.AssetStatus
	Criticality        models.Criticality
	Manufacturer       string
	Model              string
	SerialNumber       string
	InstallationDate   *time.Time
	ExpectedLifeMonths int
}

// AddAsset registers a new asset.
func (s *Store) AddAsset(in AssetInput) models.Asset {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	asset := models.Asset{
		ID:                 uuid.New().String(),
		Name:               in.Name,
		Code:               in.Code,
		Category:           in.Category,
		LocationID:         in.LocationID,
		Status:             in.Status,
		Criticality:        in.Criticality,
		Manufacturer:       in.Manufacturer,
		Model:              in.Model,
		SerialNumber:       in.SerialNumber,
		InstallationDate:   in.InstallationDate,
		ExpectedLifeMonths: in.ExpectedLifeMonths,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	s.assets = append(s.assets, asset)
	return asset
}

// UpdateAsset merges the patch onto the stored asset.
func (s *Store) UpdateAsset(id string, patch models.AssetPatch) (models.Asset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.assetIndex(id)
	if idx < 0 {
		return models.Asset{}, false
	}
	asset := s.assets[idx]
	if patch.Name != nil {
		asset.Name = *patch.Name
	}
	if patch.Code != nil {
		asset.Code = *patch.Code
	}
	if patch.Category != nil {
		asset.Category = *patch.Category
	}
	if patch.LocationID != nil {
		asset.LocationID = *patch.LocationID
	}
	if patch.Status != nil {
		asset.Status = *patch.Status
	}
	if patch.Criticality != nil {
		asset.Criticality = *patch.Criticality
	}
	if patch.Manufacturer != nil {
		asset.Manufacturer = *patch.Manufacturer
	}
	if patch.Model != nil {
		asset.Model = *patch.Model
	}
	if patch.SerialNumber != nil {
		asset.SerialNumber = *patch.SerialNumber
	}
	if patch.LastFailureAt != nil {
		asset.LastFailureAt = patch.LastFailureAt
	}
	if patch.LastRepairAt != nil {
		asset.LastRepairAt = patch.LastRepairAt
	}
	asset.UpdatedAt = time.Now().UTC()
	s.assets[idx] = asset
	return asset, true
}

// RemoveAsset deletes an asset. Work orders referencing it keep their weak
// asset id untouched.
func (s *Store) RemoveAsset(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.assetIndex(id)
	if idx < 0 {
		return false
	}
	s.assets = append(s.assets[:idx], s.assets[idx+1:]...)
	return true
}

// GetAsset returns the asset with the given id.
func (s *Store) GetAsset(id string) (models.Asset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.assetIndex(id)
	if idx < 0 {
		return models.Asset{}, false
	}
	return s.assets[idx], true
}

// ListAssets returns a copy of all assets.
func (s *Store) ListAssets() []models.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Asset, len(s.assets))
	copy(out, s.assets)
	return out
}

// assetIndex returns the index for id, or -1. Callers must hold the lock.
func (s *Store) assetIndex(id string) int {
	for i := range s.assets {
		if s.assets[i].ID == id {
			return i
		}
	}
	return -1
}
