package models

import (
	"time"
)

// InventoryItem represents a spare part held in stock.
type InventoryItem struct {
	ID          string    `json:"id" bson:"_id"`
	SKU         string    `json:"sku" bson:"sku"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Unit        string    `json:"unit" bson:"unit"` // "pc", "l", "kg"
	CurrentQty  float64   `json:"current_qty" bson:"current_qty"`
	MinQty      float64   `json:"min_qty" bson:"min_qty"`
	Cost        float64   `json:"cost" bson:"cost"` // average unit cost in USD
	LocationID  string    `json:"location_id,omitempty" bson:"location_id,omitempty"`
	AssetID     string    `json:"asset_id,omitempty" bson:"asset_id,omitempty"` // part tied to a specific asset
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// InventoryItemPatch is a partial update for an inventory item.
type InventoryItemPatch struct {
	SKU         *string  `json:"sku,omitempty"`
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Unit        *string  `json:"unit,omitempty"`
	CurrentQty  *float64 `json:"current_qty,omitempty"`
	MinQty      *float64 `json:"min_qty,omitempty"`
	Cost        *float64 `json:"cost,omitempty"`
	LocationID  *string  `json:"location_id,omitempty"`
	AssetID     *string  `json:"asset_id,omitempty"`
}
