package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/maintkit/cmms/internal/db"
	"github.com/maintkit/cmms/internal/store"
)

// AdminHandler exposes the persistence boundary over HTTP: explicit
// snapshot save and restore against the configured snapshot collection.
type AdminHandler struct {
	Store     *store.Store
	Snapshots db.SnapshotCollection
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(s *store.Store, snapshots db.SnapshotCollection) *AdminHandler {
	return &AdminHandler{Store: s, Snapshots: snapshots}
}

// ListUsers handles GET /api/admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.ListUsers())
}

// SaveSnapshot handles POST /api/admin/snapshot
func (h *AdminHandler) SaveSnapshot(w http.ResponseWriter, r *http.Request) {
	if h.Snapshots == nil {
		http.Error(w, "Snapshot persistence not configured", http.StatusServiceUnavailable)
		return
	}
	snap := h.Store.Snapshot()
	if err := h.Snapshots.Save(r.Context(), snap); err != nil {
		log.WithError(err).Error("Failed to save snapshot")
		http.Error(w, "Failed to save snapshot", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"saved":       true,
		"work_orders": len(snap.WorkOrders),
		"assets":      len(snap.Assets),
	})
}

// RestoreSnapshot handles POST /api/admin/snapshot/restore. A load failure
// leaves the in-memory state untouched.
func (h *AdminHandler) RestoreSnapshot(w http.ResponseWriter, r *http.Request) {
	if h.Snapshots == nil {
		http.Error(w, "Snapshot persistence not configured", http.StatusServiceUnavailable)
		return
	}
	snap, found, err := h.Snapshots.Load(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to load snapshot")
		http.Error(w, "Failed to load snapshot", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "No snapshot stored", http.StatusNotFound)
		return
	}
	h.Store.Restore(snap)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"restored":    true,
		"work_orders": len(snap.WorkOrders),
		"assets":      len(snap.Assets),
	})
}
