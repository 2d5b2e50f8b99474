package store

import (
	"time"

	"github.com/maintkit/cmms/internal/models"
)

// Snapshot is the full serializable state of the store: plain records,
// arrays and primitives only, so any external layer can persist and
// restore it verbatim.
type Snapshot struct {
	Assets      []models.Asset           `json:"assets" bson:"assets"`
	Items       []models.InventoryItem   `json:"items" bson:"items"`
	Technicians []models.Technician      `json:"technicians" bson:"technicians"`
	Locations   []models.Location        `json:"locations" bson:"locations"`
	WorkOrders  []models.WorkOrder       `json:"work_orders" bson:"work_orders"`
	Plans       []models.MaintenancePlan `json:"plans" bson:"plans"`
	Readings    []models.MeterReading    `json:"readings" bson:"readings"`
	Users       []models.User            `json:"users" bson:"users"`
}

// Snapshot returns a deep copy of the current state. Mutating the returned
// value never touches the live store.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Assets:      copyAssets(s.assets),
		Items:       append([]models.InventoryItem(nil), s.items...),
		Technicians: copyTechnicians(s.technicians),
		Locations:   append([]models.Location(nil), s.locations...),
		WorkOrders:  copyWorkOrders(s.workOrders),
		Plans:       copyPlans(s.plans),
		Readings:    append([]models.MeterReading(nil), s.readings...),
		Users:       copyUsers(s.users),
	}
}

// Restore replaces the entire store state with the snapshot contents. The
// replacement is all-or-nothing: the new collections are built before any
// field is swapped, so the store is never left partially restored. An empty
// snapshot resets the store to its initial state.
func (s *Store) Restore(snap Snapshot) {
	assets := copyAssets(snap.Assets)
	items := append([]models.InventoryItem(nil), snap.Items...)
	technicians := copyTechnicians(snap.Technicians)
	locations := append([]models.Location(nil), snap.Locations...)
	workOrders := copyWorkOrders(snap.WorkOrders)
	plans := copyPlans(snap.Plans)
	readings := append([]models.MeterReading(nil), snap.Readings...)
	users := copyUsers(snap.Users)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.assets = assets
	s.items = items
	s.technicians = technicians
	s.locations = locations
	s.workOrders = workOrders
	s.plans = plans
	s.readings = readings
	s.users = users
}

func copyWorkOrders(src []models.WorkOrder) []models.WorkOrder {
	out := make([]models.WorkOrder, len(src))
	for i, wo := range src {
		wo.AssignedToIDs = append([]string(nil), wo.AssignedToIDs...)
		wo.Checklist = append([]models.ChecklistItem(nil), wo.Checklist...)
		wo.Parts = append([]models.PartUsage(nil), wo.Parts...)
		wo.Labor = append([]models.LaborEntry(nil), wo.Labor...)
		wo.PlannedStart = copyTime(wo.PlannedStart)
		wo.PlannedEnd = copyTime(wo.PlannedEnd)
		wo.StartedAt = copyTime(wo.StartedAt)
		wo.CompletedAt = copyTime(wo.CompletedAt)
		wo.DowntimeMinutes = copyInt(wo.DowntimeMinutes)
		out[i] = wo
	}
	return out
}

func copyPlans(src []models.MaintenancePlan) []models.MaintenancePlan {
	out := make([]models.MaintenancePlan, len(src))
	for i, p := range src {
		p.LastExecutionAt = copyTime(p.LastExecutionAt)
		p.NextDueAt = copyTime(p.NextDueAt)
		out[i] = p
	}
	return out
}

func copyAssets(src []models.Asset) []models.Asset {
	out := make([]models.Asset, len(src))
	for i, a := range src {
		a.InstallationDate = copyTime(a.InstallationDate)
		a.LastFailureAt = copyTime(a.LastFailureAt)
		a.LastRepairAt = copyTime(a.LastRepairAt)
		out[i] = a
	}
	return out
}

func copyTechnicians(src []models.Technician) []models.Technician {
	out := make([]models.Technician, len(src))
	for i, t := range src {
		t.Skills = append([]string(nil), t.Skills...)
		out[i] = t
	}
	return out
}

func copyUsers(src []models.User) []models.User {
	out := make([]models.User, len(src))
	for i, u := range src {
		u.LastLogin = copyTime(u.LastLogin)
		out[i] = u
	}
	return out
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
