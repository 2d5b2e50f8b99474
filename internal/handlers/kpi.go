package handlers

import (
	"net/http"

	"github.com/maintkit/cmms/internal/store"
)

// KPIHandler serves the derived reliability and cost metrics.
type KPIHandler struct {
	Store *store.Store
}

// NewKPIHandler creates a new KPI handler.
func NewKPIHandler(s *store.Store) *KPIHandler {
	return &KPIHandler{Store: s}
}

// Get handles GET /api/kpis. Metrics are computed on demand from the
// current ledger snapshot; absent metrics are omitted from the response.
func (h *KPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	kpi := store.CalculateKPIs(h.Store.ListWorkOrders())
	writeJSON(w, http.StatusOK, kpi)
}
