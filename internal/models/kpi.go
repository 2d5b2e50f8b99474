package models

// KPISet holds the reliability and financial metrics derived from a work
// order snapshot. Every field is a pointer: nil means the metric is
// undefined for the given data, which is distinct from a zero value.
type KPISet struct {
	MTTRHours             *float64 `json:"mttr_hours,omitempty" bson:"mttr_hours,omitempty"`
	MTBFHours             *float64 `json:"mtbf_hours,omitempty" bson:"mtbf_hours,omitempty"`
	AvailabilityPercent   *float64 `json:"availability_percent,omitempty" bson:"availability_percent,omitempty"`
	TotalDowntimeMinutes  *int     `json:"total_downtime_minutes,omitempty" bson:"total_downtime_minutes,omitempty"`
	TotalWorkOrders       *int     `json:"total_work_orders,omitempty" bson:"total_work_orders,omitempty"`
	CompletedWorkOrders   *int     `json:"completed_work_orders,omitempty" bson:"completed_work_orders,omitempty"`
	CompletionRatePercent *float64 `json:"completion_rate_percent,omitempty" bson:"completion_rate_percent,omitempty"`
	MaintenanceCost       *float64 `json:"maintenance_cost,omitempty" bson:"maintenance_cost,omitempty"`
	AvgResponseHours      *float64 `json:"avg_response_hours,omitempty" bson:"avg_response_hours,omitempty"`
}
