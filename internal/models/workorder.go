package models

import (
	"time"
)

// WorkOrderStatus represents the lifecycle state of a work order
type WorkOrderStatus string

const (
	StatusOpen       WorkOrderStatus = "open"
	StatusInProgress WorkOrderStatus = "in_progress"
	StatusPaused     WorkOrderStatus = "paused"
	StatusCompleted  WorkOrderStatus = "completed"
	StatusCanceled   WorkOrderStatus = "canceled"
)

// WorkOrderType classifies the kind of maintenance work
type WorkOrderType string

const (
	TypeCorrective  WorkOrderType = "corrective"
	TypePreventive  WorkOrderType = "preventive"
	TypePredictive  WorkOrderType = "predictive"
	TypeInspection  WorkOrderType = "inspection"
	TypeImprovement WorkOrderType = "improvement"
)

// Priority represents work order urgency
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// ChecklistItem is a single step of a work order checklist, owned by its parent.
type ChecklistItem struct {
	ID          string `json:"id" bson:"id"`
	Description string `json:"description" bson:"description"`
	Mandatory   bool   `json:"mandatory" bson:"mandatory"`
	Completed   bool   `json:"completed" bson:"completed"`
	Result      string `json:"result,omitempty" bson:"result,omitempty"` // measured value, free form
}

// PartUsage records spare parts consumed by a work order.
type PartUsage struct {
	InventoryItemID string  `json:"inventory_item_id" bson:"inventory_item_id"`
	Quantity        float64 `json:"quantity" bson:"quantity"`
	UnitCost        float64 `json:"unit_cost" bson:"unit_cost"` // in USD
}

// LaborEntry records technician hours booked on a work order.
type LaborEntry struct {
	TechnicianID string  `json:"technician_id" bson:"technician_id"`
	Hours        float64 `json:"hours" bson:"hours"`
	HourlyRate   float64 `json:"hourly_rate" bson:"hourly_rate"` // in USD
}

// CostSummary holds the derived cost totals of a work order. It is
// recomputed from parts and labor on every mutation, never set directly.
type CostSummary struct {
	Parts float64 `json:"parts" bson:"parts"`
	Labor float64 `json:"labor" bson:"labor"`
	Total float64 `json:"total" bson:"total"`
}

// WorkOrder represents a maintenance task with its lifecycle, checklist and costs.
type WorkOrder struct {
	ID              string          `json:"id" bson:"_id"`
	Code            string          `json:"code" bson:"code"` // display number, "OS-00001"
	Title           string          `json:"title" bson:"title"`
	Description     string          `json:"description,omitempty" bson:"description,omitempty"`
	AssetID         string          `json:"asset_id,omitempty" bson:"asset_id,omitempty"`
	Status          WorkOrderStatus `json:"status" bson:"status"`
	Type            WorkOrderType   `json:"type" bson:"type"`
	Priority        Priority        `json:"priority" bson:"priority"`
	Requester       string          `json:"requester,omitempty" bson:"requester,omitempty"`
	AssignedToIDs   []string        `json:"assigned_to_ids" bson:"assigned_to_ids"`
	PlannedStart    *time.Time      `json:"planned_start,omitempty" bson:"planned_start,omitempty"`
	PlannedEnd      *time.Time      `json:"planned_end,omitempty" bson:"planned_end,omitempty"`
	StartedAt       *time.Time      `json:"started_at,omitempty" bson:"started_at,omitempty"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
	DowntimeMinutes *int            `json:"downtime_minutes,omitempty" bson:"downtime_minutes,omitempty"` // explicit override; derived from started/completed when absent
	Checklist       []ChecklistItem `json:"checklist" bson:"checklist"`
	Parts           []PartUsage     `json:"parts" bson:"parts"`
	Labor           []LaborEntry    `json:"labor" bson:"labor"`
	Costs           CostSummary     `json:"costs" bson:"costs"`
	FailureCause    string          `json:"failure_cause,omitempty" bson:"failure_cause,omitempty"`
	RootCause       string          `json:"root_cause,omitempty" bson:"root_cause,omitempty"`
	Notes           string          `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" bson:"updated_at"`
}

// WorkOrderPatch is a partial update applied over an existing work order.
// Nil fields are left untouched; non-nil fields replace the current value.
type WorkOrderPatch struct {
	Title           *string          `json:"title,omitempty"`
	Description     *string          `json:"description,omitempty"`
	AssetID         *string          `json:"asset_id,omitempty"`
	Status          *WorkOrderStatus `json:"status,omitempty"`
	Type            *WorkOrderType   `json:"type,omitempty"`
	Priority        *Priority        `json:"priority,omitempty"`
	Requester       *string          `json:"requester,omitempty"`
	AssignedToIDs   []string         `json:"assigned_to_ids,omitempty"`
	PlannedStart    *time.Time       `json:"planned_start,omitempty"`
	PlannedEnd      *time.Time       `json:"planned_end,omitempty"`
	StartedAt       *time.Time       `json:"started_at,omitempty"`
	CompletedAt     *time.Time       `json:"completed_at,omitempty"`
	DowntimeMinutes *int             `json:"downtime_minutes,omitempty"`
	Parts           []PartUsage      `json:"parts,omitempty"`
	Labor           []LaborEntry     `json:"labor,omitempty"`
	FailureCause    *string          `json:"failure_cause,omitempty"`
	RootCause       *string          `json:"root_cause,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
}
