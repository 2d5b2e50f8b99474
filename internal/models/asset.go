package models

import (
	"time"
)

// AssetStatus represents the operational state of an asset
type AssetStatus string

const (
	AssetOperational AssetStatus = "operational"
	AssetDown        AssetStatus = "down"
	AssetMaintenance AssetStatus = "maintenance"
	AssetRetired     AssetStatus = "retired"
)

// Criticality represents how important an asset is to operations
type Criticality string

const (
	CriticalityLow    Criticality = "low"
	CriticalityMedium Criticality = "medium"
	CriticalityHigh   Criticality = "high"
)

// Asset represents a physical piece of equipment under maintenance.
type Asset struct {
	ID                 string      `json:"id" bson:"_id"`
	Name               string      `json:"name" bson:"name"`
	Code               string      `json:"code" bson:"code"` // internal tag number
	Category           string      `json:"category,omitempty" bson:"category,omitempty"`
	LocationID         string      `json:"location_id,omitempty" bson:"location_id,omitempty"`
	Status             AssetStatus `json:"status" bson:"status"`
	Criticality        Criticality `json:"criticality" bson:"criticality"`
	Manufacturer       string      `json:"manufacturer,omitempty" bson:"manufacturer,omitempty"`
	Model              string      `json:"model,omitempty" bson:"model,omitempty"`
	SerialNumber       string      `json:"serial_number,omitempty" bson:"serial_number,omitempty"`
	InstallationDate   *time.Time  `json:"installation_date,omitempty" bson:"installation_date,omitempty"`
	ExpectedLifeMonths int         `json:"expected_life_months,omitempty" bson:"expected_life_months,omitempty"`
	LastFailureAt      *time.Time  `json:"last_failure_at,omitempty" bson:"last_failure_at,omitempty"`
	LastRepairAt       *time.Time  `json:"last_repair_at,omitempty" bson:"last_repair_at,omitempty"`
	CreatedAt          time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at" bson:"updated_at"`
}

// AssetPatch is a partial update for an asset. Nil fields are left untouched.
type AssetPatch struct {
	Name          *string      `json:"name,omitempty"`
	Code          *string      `json:"code,omitempty"`
	Category      *string      `json:"category,omitempty"`
	LocationID    *string      `json:"location_id,omitempty"`
	Status        *AssetStatus `json:"status,omitempty"`
	Criticality   *Criticality `json:"criticality,omitempty"`
	Manufacturer  *string      `json:"manufacturer,omitempty"`
	Model         *string      `json:"model,omitempty"`
	SerialNumber  *string      `json:"serial_number,omitempty"`
	LastFailureAt *time.Time   `json:"last_failure_at,omitempty"`
	LastRepairAt  *time.Time   `json:"last_repair_at,omitempty"`
}
