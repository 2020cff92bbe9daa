// Package testutil provides shared helpers for package-level tests.
package testutil

import (
	"testing"
	"time"

	"github.com/nordrens-as/planning-api/internal/domain"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory sqlite database with the planning schema.
// Each call returns an isolated database, so tests can run in parallel.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")

	err = db.AutoMigrate(
		&domain.Subscription{},
		&domain.Order{},
		&domain.Employee{},
		&domain.Notification{},
	)
	require.NoError(t, err, "failed to migrate test database")

	return db
}

// CreateTestSubscription inserts an active subscription with the given cadence.
// StartDate and NextDueDate are normalized to calendar dates.
func CreateTestSubscription(t *testing.T, db *gorm.DB, name string, intervalWeeks int, startDate, nextDueDate time.Time) *domain.Subscription {
	t.Helper()

	sub := &domain.Subscription{
		CustomerName:      name,
		CustomerEmail:     "test@example.com",
		CustomerAddress:   "Testvej 1, 9000 Aalborg",
		ServiceType:       "Vinduespudsning",
		Price:             450,
		IntervalWeeks:     intervalWeeks,
		StartDate:         domain.Date(startDate),
		NextDueDate:       domain.Date(nextDueDate),
		EstimatedDuration: 60,
		AutoCreateOrders:  true,
		Status:            domain.SubscriptionStatusActive,
	}
	require.NoError(t, db.Create(sub).Error)
	return sub
}

// CreateTestEmployee inserts an active employee with the given specialties.
func CreateTestEmployee(t *testing.T, db *gorm.DB, name string, specialties ...string) *domain.Employee {
	t.Helper()

	emp := &domain.Employee{
		Name:        name,
		Email:       "worker@example.com",
		IsActive:    true,
		Specialties: specialties,
	}
	require.NoError(t, db.Create(emp).Error)
	return emp
}
