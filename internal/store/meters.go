package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/maintkit/cmms/internal/models"
)

// RecordMeterReading appends a meter sample for an asset. Readings are an
// append-only log; they do not trigger maintenance plans.
func (s *Store) RecordMeterReading(assetID, meterType string, value float64, at time.Time) models.MeterReading {
	s.mu.Lock()
	defer s.mu.Unlock()

	reading := models.MeterReading{
		ID:        uuid.New().String(),
		AssetID:   assetID,
		MeterType: meterType,
		Value:     value,
		Timestamp: at,
		CreatedAt: time.Now().UTC(),
	}
	s.readings = append(s.readings, reading)
	return reading
}

// MeterReadingsForAsset returns all readings recorded for an asset.
func (s *Store) MeterReadingsForAsset(assetID string) []models.MeterReading {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.MeterReading
	for _, r := range s.readings {
		if r.AssetID == assetID {
			out = append(out, r)
		}
	}
	return out
}

// ListMeterReadings returns a copy of the full reading log.
func (s *Store) ListMeterReadings() []models.MeterReading {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.MeterReading, len(s.readings))
	copy(out, s.readings)
	return out
}
