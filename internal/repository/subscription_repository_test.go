package repository

import (
	"context"
	"testing"
	"time"

	"github.com/nordrens-as/planning-api/internal/domain"
	"github.com/nordrens-as/planning-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestSubscriptionCreate_RejectsInvalid(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewSubscriptionRepository(db)

	err := repo.Create(context.Background(), &domain.Subscription{
		CustomerName:  "Jensen",
		ServiceType:   "Vinduespudsning",
		IntervalWeeks: 0,
		StartDate:     date(2025, 3, 1),
		NextDueDate:   date(2025, 3, 1),
	})
	assert.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&domain.Subscription{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListDue_WindowAndNewSubscriptions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewSubscriptionRepository(db)
	asOf := date(2025, 6, 27)

	// Due inside the window
	due := testutil.CreateTestSubscription(t, db, "Due", 8, date(2025, 1, 9), date(2025, 7, 3))
	lastOrder := domain.Date(date(2025, 5, 8))
	require.NoError(t, db.Model(due).Update("last_order_date", lastOrder).Error)

	// Due past the window with history
	future := testutil.CreateTestSubscription(t, db, "Future", 8, date(2025, 1, 9), date(2025, 8, 1))
	require.NoError(t, db.Model(future).Update("last_order_date", lastOrder).Error)

	// New subscription starting past the window, never generated
	testutil.CreateTestSubscription(t, db, "Fresh", 4, date(2025, 8, 1), date(2025, 8, 1))

	// Paused and manual subscriptions inside the window
	paused := testutil.CreateTestSubscription(t, db, "Paused", 2, date(2025, 6, 1), date(2025, 6, 30))
	require.NoError(t, db.Model(paused).Update("status", domain.SubscriptionStatusPaused).Error)
	manual := testutil.CreateTestSubscription(t, db, "Manual", 2, date(2025, 6, 1), date(2025, 6, 30))
	require.NoError(t, db.Model(manual).Update("auto_create_orders", false).Error)

	subs, err := repo.ListDue(context.Background(), asOf, 7)
	require.NoError(t, err)

	names := make([]string, len(subs))
	for i, s := range subs {
		names[i] = s.CustomerName
	}
	assert.ElementsMatch(t, []string{"Due", "Fresh"}, names)
}

func TestAdvance(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewSubscriptionRepository(db)

	sub := testutil.CreateTestSubscription(t, db, "Advance", 4, date(2025, 3, 6), date(2025, 3, 6))

	require.NoError(t, repo.Advance(context.Background(), nil, sub.ID, date(2025, 4, 3), date(2025, 3, 6)))

	updated, err := repo.GetByID(context.Background(), sub.ID)
	require.NoError(t, err)
	assert.True(t, domain.SameDate(date(2025, 4, 3), updated.NextDueDate))
	require.NotNil(t, updated.LastOrderDate)
	assert.True(t, domain.SameDate(date(2025, 3, 6), *updated.LastOrderDate))
}

func TestUpdateStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewSubscriptionRepository(db)

	sub := testutil.CreateTestSubscription(t, db, "Pause", 4, date(2025, 3, 6), date(2025, 3, 6))

	require.NoError(t, repo.UpdateStatus(context.Background(), sub.ID, domain.SubscriptionStatusPaused))

	updated, err := repo.GetByID(context.Background(), sub.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SubscriptionStatusPaused, updated.Status)
}
