package models

import (
	"time"
)

// Technician represents a maintenance worker who can be assigned to work orders.
type Technician struct {
	ID         string    `json:"id" bson:"_id"`
	Name       string    `json:"name" bson:"name"`
	Role       string    `json:"role" bson:"role"` // "mechanic", "electrician", ...
	Email      string    `json:"email,omitempty" bson:"email,omitempty"`
	Phone      string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Active     bool      `json:"active" bson:"active"`
	Skills     []string  `json:"skills" bson:"skills"`
	HourlyRate float64   `json:"hourly_rate,omitempty" bson:"hourly_rate,omitempty"` // in USD
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}

// TechnicianPatch is a partial update for a technician.
type TechnicianPatch struct {
	Name       *string  `json:"name,omitempty"`
	Role       *string  `json:"role,omitempty"`
	Email      *string  `json:"email,omitempty"`
	Phone      *string  `json:"phone,omitempty"`
	Active     *bool    `json:"active,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	HourlyRate *float64 `json:"hourly_rate,omitempty"`
}
