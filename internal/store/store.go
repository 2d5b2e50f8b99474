// Package store holds the in-memory maintenance domain engine: entity
// registries, the work order ledger, the plan scheduler and the KPI
// calculator. All state lives in a single Store guarded by one mutex;
// persistence is layered on top through Snapshot and Restore.
package store

import (
	"sync"

	"github.com/maintkit/cmms/internal/models"
)

// Store is the process-local registry of all maintenance entities.
type Store struct {
	mu sync.RWMutex

	assets      []models.Asset
	items       []models.InventoryItem
	technicians []models.Technician
	locations   []models.Location
	workOrders  []models.WorkOrder
	plans       []models.MaintenancePlan
	readings    []models.MeterReading
	users       []models.User
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}
