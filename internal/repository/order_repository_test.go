package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nordrens-as/planning-api/internal/domain"
	"github.com/nordrens-as/planning-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createOrder(t *testing.T, db *OrderRepository, subID *uuid.UUID, scheduled time.Time, status domain.OrderStatus, edited bool) *domain.Order {
	t.Helper()
	day := domain.Date(scheduled)
	order := &domain.Order{
		SubscriptionID: subID,
		OrderType:      "Vinduespudsning",
		CustomerName:   "Jensen",
		Price:          450,
		ScheduledDate:  &day,
		Status:         status,
		Priority:       domain.OrderPriorityNormal,
		EditedManually: edited,
	}
	require.NoError(t, db.Create(context.Background(), order))
	return order
}

func TestFindBySubscriptionAndDate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewOrderRepository(db)

	sub := testutil.CreateTestSubscription(t, db, "Jensen", 4, date(2025, 3, 6), date(2025, 3, 6))
	created := createOrder(t, repo, &sub.ID, date(2025, 3, 6), domain.OrderStatusUnplanned, false)

	found, err := repo.FindBySubscriptionAndDate(context.Background(), sub.ID, date(2025, 3, 6))
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	missing, err := repo.FindBySubscriptionAndDate(context.Background(), sub.ID, date(2025, 4, 3))
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDeleteForSubscription_PreservesManualEdits(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewOrderRepository(db)

	sub := testutil.CreateTestSubscription(t, db, "Jensen", 4, date(2025, 3, 6), date(2025, 3, 6))
	createOrder(t, repo, &sub.ID, date(2025, 3, 6), domain.OrderStatusUnplanned, false)
	edited := createOrder(t, repo, &sub.ID, date(2025, 4, 3), domain.OrderStatusPlanned, true)

	require.NoError(t, repo.DeleteForSubscription(context.Background(), nil, sub.ID, nil))

	remaining, err := repo.ListBySubscription(context.Background(), sub.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, edited.ID, remaining[0].ID)
}

func TestDeleteForSubscription_FromDate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewOrderRepository(db)

	sub := testutil.CreateTestSubscription(t, db, "Jensen", 4, date(2025, 3, 6), date(2025, 3, 6))
	past := createOrder(t, repo, &sub.ID, date(2025, 3, 6), domain.OrderStatusDone, false)
	createOrder(t, repo, &sub.ID, date(2025, 4, 3), domain.OrderStatusUnplanned, false)
	createOrder(t, repo, &sub.ID, date(2025, 5, 1), domain.OrderStatusUnplanned, false)

	from := date(2025, 4, 3)
	require.NoError(t, repo.DeleteForSubscription(context.Background(), nil, sub.ID, &from))

	remaining, err := repo.ListBySubscription(context.Background(), sub.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, past.ID, remaining[0].ID)
}

func TestListUnassigned_ExcludesTerminalAndAssigned(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewOrderRepository(db)

	open := createOrder(t, repo, nil, date(2025, 3, 6), domain.OrderStatusUnplanned, false)
	createOrder(t, repo, nil, date(2025, 3, 7), domain.OrderStatusDone, false)
	createOrder(t, repo, nil, date(2025, 3, 8), domain.OrderStatusCancelled, false)

	assigned := createOrder(t, repo, nil, date(2025, 3, 9), domain.OrderStatusUnplanned, false)
	emp := testutil.CreateTestEmployee(t, db, "Lars")
	require.NoError(t, repo.UpdateAssignment(context.Background(), assigned.ID, emp.ID, domain.OrderStatusPlanned, true))

	orders, err := repo.ListUnassigned(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, open.ID, orders[0].ID)
}

func TestUpdateAssignment(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewOrderRepository(db)

	order := createOrder(t, repo, nil, date(2025, 3, 6), domain.OrderStatusUnplanned, false)
	emp := testutil.CreateTestEmployee(t, db, "Lars")

	require.NoError(t, repo.UpdateAssignment(context.Background(), order.ID, emp.ID, domain.OrderStatusPlanned, true))

	updated, err := repo.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.AssignedEmployeeID)
	assert.Equal(t, emp.ID, *updated.AssignedEmployeeID)
	assert.Equal(t, domain.OrderStatusPlanned, updated.Status)
	assert.True(t, updated.AutoAssigned)
}

func TestCountNeedingOptimization(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewOrderRepository(db)

	// Needs optimization: unplanned, and planned without an assignee
	createOrder(t, repo, nil, date(2025, 3, 6), domain.OrderStatusUnplanned, false)
	createOrder(t, repo, nil, date(2025, 3, 7), domain.OrderStatusPlanned, false)

	// Covered: planned with an assignee
	covered := createOrder(t, repo, nil, date(2025, 3, 8), domain.OrderStatusUnplanned, false)
	emp := testutil.CreateTestEmployee(t, db, "Lars")
	require.NoError(t, repo.UpdateAssignment(context.Background(), covered.ID, emp.ID, domain.OrderStatusPlanned, true))

	// Terminal orders never count
	createOrder(t, repo, nil, date(2025, 3, 9), domain.OrderStatusCancelled, false)

	count, err := repo.CountNeedingOptimization(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSumRevenue(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewOrderRepository(db)

	total, err := repo.SumRevenue(context.Background())
	require.NoError(t, err)
	assert.Zero(t, total)

	createOrder(t, repo, nil, date(2025, 3, 6), domain.OrderStatusUnplanned, false)
	createOrder(t, repo, nil, date(2025, 3, 7), domain.OrderStatusPlanned, false)

	total, err = repo.SumRevenue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 900.0, total)
}
