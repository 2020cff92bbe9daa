package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nordrens-as/planning-api/internal/domain"
	"github.com/nordrens-as/planning-api/internal/repository"
	"github.com/nordrens-as/planning-api/internal/service"
	"github.com/nordrens-as/planning-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newStatsHandler(t *testing.T) (*PlanningHandler, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	planning := service.NewPlanningService(
		repository.NewOrderRepository(db),
		repository.NewEmployeeRepository(db),
		zap.NewNop(),
	)
	return NewPlanningHandler(nil, nil, planning, zap.NewNop()), db
}

func TestPlanningStats_JSONShape(t *testing.T) {
	h, db := newStatsHandler(t)

	testutil.CreateTestEmployee(t, db, "Lars")
	day := domain.Date(time.Date(2025, 6, 27, 0, 0, 0, 0, time.UTC))
	require.NoError(t, db.Create(&domain.Order{
		OrderType:     "Vinduespudsning",
		CustomerName:  "Jensen",
		Price:         450,
		ScheduledDate: &day,
		Status:        domain.OrderStatusUnplanned,
		Priority:      domain.OrderPriorityNormal,
	}).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/planning/stats", nil)
	rec := httptest.NewRecorder()
	h.Stats(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["totalOrders"])
	assert.Equal(t, float64(1), body["ordersNeedingOptimization"])
	assert.Equal(t, float64(0), body["optimizationRate"])
	assert.Equal(t, float64(1), body["activeEmployees"])
	assert.Equal(t, float64(450), body["totalRevenue"])
}

func TestPlanningGenerate_InvalidAsOfDate(t *testing.T) {
	h, _ := newStatsHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/planning/generate",
		strings.NewReader(`{"asOf":"27-06-2025"}`))
	rec := httptest.NewRecorder()
	h.Generate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
