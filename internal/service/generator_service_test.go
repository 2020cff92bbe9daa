package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nordrens-as/planning-api/internal/domain"
	"github.com/nordrens-as/planning-api/internal/repository"
	"github.com/nordrens-as/planning-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestGenerator(t *testing.T, db *gorm.DB) *GeneratorService {
	t.Helper()
	return NewGeneratorService(
		repository.NewSubscriptionRepository(db),
		repository.NewOrderRepository(db),
		NewNotificationService(repository.NewNotificationRepository(db), zap.NewNop()),
		zap.NewNop(),
		db,
		DefaultGeneratorOptions(),
	)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func subscriptionOrders(t *testing.T, db *gorm.DB, subID interface{}) []domain.Order {
	t.Helper()
	var orders []domain.Order
	require.NoError(t, db.Where("subscription_id = ?", subID).Order("scheduled_date ASC").Find(&orders).Error)
	return orders
}

func TestRunDailyGeneration_CreatesDueAndProjectedOrders(t *testing.T) {
	db := testutil.SetupTestDB(t)
	gen := newTestGenerator(t, db)

	// 8-week cadence, due inside the 7-day lookahead window
	sub := testutil.CreateTestSubscription(t, db, "Jensen Ejendomme", 8, date(2025, 1, 9), date(2025, 7, 3))
	require.NoError(t, db.Model(sub).Update("last_order_date", domain.Date(date(2025, 5, 8))).Error)

	summary, err := gen.RunDailyGeneration(context.Background(), date(2025, 6, 27))
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 0, summary.Skipped)
	assert.Equal(t, 4, summary.OrdersCreated)

	orders := subscriptionOrders(t, db, sub.ID)
	require.Len(t, orders, 4)

	// Due order plus three projections spaced 8 weeks apart
	wantDates := []time.Time{
		date(2025, 7, 3),
		date(2025, 8, 28),
		date(2025, 10, 23),
		date(2025, 12, 18),
	}
	for i, want := range wantDates {
		require.NotNil(t, orders[i].ScheduledDate)
		assert.True(t, domain.SameDate(want, *orders[i].ScheduledDate),
			"order %d scheduled for %v, want %v", i, orders[i].ScheduledDate, want)
		assert.Equal(t, domain.OrderStatusUnplanned, orders[i].Status)
		assert.Equal(t, sub.ServiceType, orders[i].OrderType)
		assert.Equal(t, sub.Price, orders[i].Price)
	}

	// Due date advanced by exactly one interval, last order date stamped
	var updated domain.Subscription
	require.NoError(t, db.First(&updated, "id = ?", sub.ID).Error)
	assert.True(t, domain.SameDate(date(2025, 8, 28), updated.NextDueDate))
	require.NotNil(t, updated.LastOrderDate)
	assert.True(t, domain.SameDate(date(2025, 7, 3), *updated.LastOrderDate))
}

func TestRunDailyGeneration_SecondRunIsIdempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	gen := newTestGenerator(t, db)

	sub := testutil.CreateTestSubscription(t, db, "Petersen ApS", 2, date(2025, 3, 6), date(2025, 3, 6))

	first, err := gen.RunDailyGeneration(context.Background(), date(2025, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, 1, first.Processed)

	second, err := gen.RunDailyGeneration(context.Background(), date(2025, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, 0, second.Processed)

	orders := subscriptionOrders(t, db, sub.ID)
	assert.Len(t, orders, 4)
}

func TestRunDailyGeneration_NewSubscriptionStartsFromStartDate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	gen := newTestGenerator(t, db)

	// Never generated an order, starts in the future
	sub := testutil.CreateTestSubscription(t, db, "Ny Kunde", 4, date(2025, 5, 20), date(2025, 5, 20))

	summary, err := gen.RunDailyGeneration(context.Background(), date(2025, 5, 1))
	require.NoError(t, err)
	require.Equal(t, 1, summary.Processed)

	orders := subscriptionOrders(t, db, sub.ID)
	require.Len(t, orders, 4)
	assert.True(t, domain.SameDate(date(2025, 5, 20), *orders[0].ScheduledDate))
	assert.Contains(t, orders[0].Comment, "Subscription (start):")
	assert.Contains(t, orders[1].Comment, "Subscription (projected):")
}

func TestRunDailyGeneration_SkipsSubscriptionsOutsideWindow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	gen := newTestGenerator(t, db)

	// Due well beyond the 7-day lookahead, with generation history
	sub := testutil.CreateTestSubscription(t, db, "Fremtid A/S", 4, date(2025, 1, 2), date(2025, 9, 1))
	require.NoError(t, db.Model(sub).Update("last_order_date", domain.Date(date(2025, 8, 4))).Error)

	summary, err := gen.RunDailyGeneration(context.Background(), date(2025, 6, 1))
	require.NoError(t, err)
	assert.Empty(t, summary.Results)
	assert.Empty(t, subscriptionOrders(t, db, sub.ID))
}

func TestRunDailyGeneration_IgnoresPausedAndManualSubscriptions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	gen := newTestGenerator(t, db)

	paused := testutil.CreateTestSubscription(t, db, "Paused", 2, date(2025, 4, 1), date(2025, 4, 1))
	require.NoError(t, db.Model(paused).Update("status", domain.SubscriptionStatusPaused).Error)

	manual := testutil.CreateTestSubscription(t, db, "Manual", 2, date(2025, 4, 1), date(2025, 4, 1))
	require.NoError(t, db.Model(manual).Update("auto_create_orders", false).Error)

	summary, err := gen.RunDailyGeneration(context.Background(), date(2025, 4, 1))
	require.NoError(t, err)
	assert.Empty(t, summary.Results)
}

func TestRunDailyGeneration_InvalidSubscriptionReportedNotFatal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	gen := newTestGenerator(t, db)

	bad := testutil.CreateTestSubscription(t, db, "Bad Interval", 1, date(2025, 4, 1), date(2025, 4, 1))
	require.NoError(t, db.Model(bad).Update("interval_weeks", 0).Error)
	good := testutil.CreateTestSubscription(t, db, "Good", 2, date(2025, 4, 1), date(2025, 4, 1))

	summary, err := gen.RunDailyGeneration(context.Background(), date(2025, 4, 1))
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Processed)
	assert.Empty(t, subscriptionOrders(t, db, bad.ID))
	assert.Len(t, subscriptionOrders(t, db, good.ID), 4)
}

func TestRunDailyGeneration_PreservesManuallyEditedOrders(t *testing.T) {
	db := testutil.SetupTestDB(t)
	gen := newTestGenerator(t, db)

	sub := testutil.CreateTestSubscription(t, db, "Hansen Rengøring", 2, date(2025, 3, 6), date(2025, 3, 6))

	// A dispatcher moved a projected visit by hand
	editedDate := domain.Date(date(2025, 4, 10))
	subID := sub.ID
	edited := domain.Order{
		SubscriptionID: &subID,
		OrderType:      sub.ServiceType,
		CustomerName:   sub.CustomerName,
		ScheduledDate:  &editedDate,
		Status:         domain.OrderStatusPlanned,
		Priority:       domain.OrderPriorityNormal,
		EditedManually: true,
	}
	require.NoError(t, db.Create(&edited).Error)

	_, err := gen.RunDailyGeneration(context.Background(), date(2025, 3, 4))
	require.NoError(t, err)

	var survivor domain.Order
	require.NoError(t, db.First(&survivor, "id = ?", edited.ID).Error)
	assert.True(t, survivor.EditedManually)
}

func TestForceRegenerate_RebuildsSeriesFromStartDate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	gen := newTestGenerator(t, db)

	sub := testutil.CreateTestSubscription(t, db, "Forkert Kadence", 8, date(2025, 2, 6), date(2025, 2, 20))

	// Orders previously created at a wrong 2-week cadence
	for _, d := range []time.Time{date(2025, 2, 6), date(2025, 2, 20), date(2025, 3, 6)} {
		dd := domain.Date(d)
		subID := sub.ID
		require.NoError(t, db.Create(&domain.Order{
			SubscriptionID: &subID,
			OrderType:      sub.ServiceType,
			CustomerName:   sub.CustomerName,
			ScheduledDate:  &dd,
			Status:         domain.OrderStatusUnplanned,
			Priority:       domain.OrderPriorityNormal,
		}).Error)
	}

	summary, err := gen.ForceRegenerate(context.Background(), sub.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.OrdersCreated)

	orders := subscriptionOrders(t, db, sub.ID)
	require.Len(t, orders, 4)
	wantDates := []time.Time{
		date(2025, 2, 6),
		date(2025, 4, 3),
		date(2025, 5, 29),
		date(2025, 7, 24),
	}
	for i, want := range wantDates {
		assert.True(t, domain.SameDate(want, *orders[i].ScheduledDate),
			"order %d scheduled for %v, want %v", i, orders[i].ScheduledDate, want)
	}

	var updated domain.Subscription
	require.NoError(t, db.First(&updated, "id = ?", sub.ID).Error)
	assert.True(t, domain.SameDate(date(2025, 4, 3), updated.NextDueDate))
}

func TestForceRegenerate_UnknownSubscription(t *testing.T) {
	db := testutil.SetupTestDB(t)
	gen := newTestGenerator(t, db)

	_, err := gen.ForceRegenerate(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSubscriptionNotFound)
}

func TestRunDailyGeneration_SkipsWhenDueDateAlreadyCovered(t *testing.T) {
	db := testutil.SetupTestDB(t)
	gen := newTestGenerator(t, db)

	sub := testutil.CreateTestSubscription(t, db, "Dækket", 2, date(2025, 3, 6), date(2025, 3, 6))

	_, err := gen.ForceRegenerate(context.Background(), sub.ID)
	require.NoError(t, err)

	// The regenerated window already holds an order on the advanced due date
	summary, err := gen.RunDailyGeneration(context.Background(), date(2025, 3, 18))
	require.NoError(t, err)
	require.Len(t, summary.Results, 1)
	assert.Equal(t, 1, summary.Skipped)
	assert.Contains(t, summary.Results[0].Reason, "order already exists")
	assert.Len(t, subscriptionOrders(t, db, sub.ID), 4)
}

func TestRunDailyGeneration_RecordsNotification(t *testing.T) {
	db := testutil.SetupTestDB(t)
	gen := newTestGenerator(t, db)

	testutil.CreateTestSubscription(t, db, "Notify", 2, date(2025, 3, 6), date(2025, 3, 6))

	_, err := gen.RunDailyGeneration(context.Background(), date(2025, 3, 4))
	require.NoError(t, err)

	var notifications []domain.Notification
	require.NoError(t, db.Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, domain.NotificationTypeGenerationRun, notifications[0].Type)
}
