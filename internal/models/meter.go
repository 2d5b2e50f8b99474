package models

import (
	"time"
)

// MeterReading is a single meter sample reported for an asset, usually
// ingested over MQTT. Readings are recorded as-is; meter based plan
// triggering is not implemented.
type MeterReading struct {
	ID        string    `bson:"_id" json:"id"`
	AssetID   string    `bson:"asset_id" json:"asset_id"`
	MeterType string    `bson:"meter_type" json:"meter_type"` // "hours", "cycles", "km"
	Value     float64   `bson:"value" json:"value"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
