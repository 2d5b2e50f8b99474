package models

import (
	"time"
)

// PlanStrategy is the trigger strategy of a maintenance plan. Only
// StrategyTime has generation behavior; meter and condition plans are
// stored and listed but never trigger work orders.
type PlanStrategy string

const (
	StrategyTime      PlanStrategy = "time"
	StrategyMeter     PlanStrategy = "meter"
	StrategyCondition PlanStrategy = "condition"
)

// MaintenancePlan is a recurring rule that generates preventive work orders.
type MaintenancePlan struct {
	ID              string       `json:"id" bson:"_id"`
	Code            string       `json:"code" bson:"code"`
	Title           string       `json:"title" bson:"title"`
	AssetID         string       `json:"asset_id" bson:"asset_id"`
	Strategy        PlanStrategy `json:"strategy" bson:"strategy"`
	IntervalDays    int          `json:"interval_days,omitempty" bson:"interval_days,omitempty"` // for time strategy
	MeterType       string       `json:"meter_type,omitempty" bson:"meter_type,omitempty"`       // hours, cycles etc
	MeterInterval   float64      `json:"meter_interval,omitempty" bson:"meter_interval,omitempty"`
	LastExecutionAt *time.Time   `json:"last_execution_at,omitempty" bson:"last_execution_at,omitempty"`
	NextDueAt       *time.Time   `json:"next_due_at,omitempty" bson:"next_due_at,omitempty"`
	Active          bool         `json:"active" bson:"active"`
	CreatedAt       time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at" bson:"updated_at"`
}

// MaintenancePlanPatch is a partial update for a maintenance plan. The
// scheduler owns NextDueAt and LastExecutionAt; they are not patchable
// beyond plan creation.
type MaintenancePlanPatch struct {
	Code          *string       `json:"code,omitempty"`
	Title         *string       `json:"title,omitempty"`
	AssetID       *string       `json:"asset_id,omitempty"`
	Strategy      *PlanStrategy `json:"strategy,omitempty"`
	IntervalDays  *int          `json:"interval_days,omitempty"`
	MeterType     *string       `json:"meter_type,omitempty"`
	MeterInterval *float64      `json:"meter_interval,omitempty"`
	Active        *bool         `json:"active,omitempty"`
}
