package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubscriptionValidate(t *testing.T) {
	valid := Subscription{
		CustomerName:  "Jensen",
		ServiceType:   "Vinduespudsning",
		IntervalWeeks: 4,
		StartDate:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		NextDueDate:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, valid.Validate())

	zeroInterval := valid
	zeroInterval.IntervalWeeks = 0
	assert.Error(t, zeroInterval.Validate())

	negativeInterval := valid
	negativeInterval.IntervalWeeks = -2
	assert.Error(t, negativeInterval.Validate())

	dueBeforeStart := valid
	dueBeforeStart.NextDueDate = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	assert.ErrorIs(t, dueBeforeStart.Validate(), ErrNextDueBeforeStart)
}

func TestSubscriptionInterval(t *testing.T) {
	sub := Subscription{IntervalWeeks: 8}
	assert.Equal(t, 8*7*24*time.Hour, sub.Interval())
}

func TestSubscriptionStatusIsValid(t *testing.T) {
	assert.True(t, SubscriptionStatusActive.IsValid())
	assert.True(t, SubscriptionStatusPaused.IsValid())
	assert.True(t, SubscriptionStatusCancelled.IsValid())
	assert.False(t, SubscriptionStatus("deleted").IsValid())
}

func TestOrderStatusIsTerminal(t *testing.T) {
	assert.True(t, OrderStatusDone.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatusUnplanned.IsTerminal())
	assert.False(t, OrderStatusPlanned.IsTerminal())
	assert.False(t, OrderStatusInProgress.IsTerminal())
}

func TestDate(t *testing.T) {
	oslo, err := time.LoadLocation("Europe/Copenhagen")
	if err != nil {
		t.Skip("tzdata not available")
	}

	// Late evening local time is still the same UTC calendar date it maps to
	local := time.Date(2025, 6, 27, 23, 30, 0, 0, oslo)
	assert.Equal(t, time.Date(2025, 6, 27, 21, 30, 0, 0, time.UTC), local.UTC())
	assert.Equal(t, time.Date(2025, 6, 27, 0, 0, 0, 0, time.UTC), Date(local))

	noon := time.Date(2025, 6, 27, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 27, 0, 0, 0, 0, time.UTC), Date(noon))
}

func TestSameDate(t *testing.T) {
	a := time.Date(2025, 6, 27, 8, 0, 0, 0, time.UTC)
	b := time.Date(2025, 6, 27, 22, 0, 0, 0, time.UTC)
	c := time.Date(2025, 6, 28, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDate(a, b))
	assert.False(t, SameDate(a, c))
}
