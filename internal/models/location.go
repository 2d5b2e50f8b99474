package models

import (
	"time"
)

// Location represents a named place in the plant hierarchy. The flat list
// is the source of truth; parent/child structure is a derived projection.
type Location struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Code        string    `json:"code,omitempty" bson:"code,omitempty"`
	ParentID    string    `json:"parent_id,omitempty" bson:"parent_id,omitempty"` // empty means root
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// LocationNode is a location with its resolved children, as returned by the
// tree projection. Children are rebuilt on every read, never stored.
type LocationNode struct {
	Location `bson:",inline"`
	Children []*LocationNode `json:"children" bson:"children"`
}

// LocationPatch is a partial update for a location.
type LocationPatch struct {
	Name        *string `json:"name,omitempty"`
	Code        *string `json:"code,omitempty"`
	ParentID    *string `json:"parent_id,omitempty"`
	Description *string `json:"description,omitempty"`
}
