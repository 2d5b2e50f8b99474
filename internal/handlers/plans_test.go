package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maintkit/cmms/internal/models"
	"github.com/maintkit/cmms/internal/store"
)

func TestPlanHandler_Generate(t *testing.T) {
	s := store.New()
	h := NewPlanHandler(s)

	due := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	s.AddPlan(store.PlanInput{
		Code:         "PLAN-001",
		Title:        "Monthly service",
		AssetID:      "asset-1",
		Strategy:     models.StrategyTime,
		IntervalDays: 30,
		NextDueAt:    &due,
		Active:       true,
	})

	instant := due.Add(48 * time.Hour)
	req := postJSON(t, "/api/plans/generate", map[string]interface{}{"now": instant})
	rr := httptest.NewRecorder()
	h.Generate(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var generated []models.WorkOrder
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&generated))
	require.Len(t, generated, 1)
	assert.Equal(t, models.TypePreventive, generated[0].Type)
	assert.Equal(t, "asset-1", generated[0].AssetID)
}

func TestPlanHandler_Generate_EmptyBody(t *testing.T) {
	h := NewPlanHandler(store.New())

	req := httptest.NewRequest("POST", "/api/plans/generate", nil)
	rr := httptest.NewRecorder()
	h.Generate(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var generated []models.WorkOrder
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&generated))
	assert.Empty(t, generated)
}

func TestPlanHandler_CreateAndGet(t *testing.T) {
	h := NewPlanHandler(store.New())

	req := postJSON(t, "/api/plans", map[string]interface{}{
		"code":          "PLAN-002",
		"title":         "Guillotine blade check",
		"asset_id":      "asset-2",
		"strategy":      "time",
		"interval_days": 90,
	})
	rr := httptest.NewRecorder()
	h.Create(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	var plan models.MaintenancePlan
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&plan))
	assert.Equal(t, "PLAN-002", plan.Code)
	assert.Equal(t, 90, plan.IntervalDays)

	getReq := httptest.NewRequest("GET", "/api/plans/"+plan.ID, nil)
	getReq.SetPathValue("id", plan.ID)
	rr = httptest.NewRecorder()
	h.Get(rr, getReq)
	assert.Equal(t, http.StatusOK, rr.Code)
}
