package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nordrens-as/planning-api/internal/domain"
	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *domain.Subscription) error {
	if err := sub.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *SubscriptionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Subscription, error) {
	var sub domain.Subscription
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepository) List(ctx context.Context, page, pageSize int) ([]domain.Subscription, int64, error) {
	var subs []domain.Subscription
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Subscription{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order("created_at DESC").Find(&subs).Error
	return subs, total, err
}

// ListDue returns the subscriptions the generation pass must process: active,
// auto-creating, and either due within the lookahead window or brand new
// (no order generated yet and starting on or after the reference date).
func (r *SubscriptionRepository) ListDue(ctx context.Context, asOf time.Time, lookaheadDays int) ([]domain.Subscription, error) {
	var subs []domain.Subscription
	day := domain.Date(asOf)
	horizon := day.AddDate(0, 0, lookaheadDays)

	err := r.db.WithContext(ctx).
		Where("status = ? AND auto_create_orders = ?", domain.SubscriptionStatusActive, true).
		Where("next_due_date <= ? OR (last_order_date IS NULL AND start_date >= ?)", horizon, day).
		Order("next_due_date ASC").
		Find(&subs).Error
	return subs, err
}

// Advance moves a subscription forward one cadence step. Called inside the
// generator's per-subscription transaction.
func (r *SubscriptionRepository) Advance(ctx context.Context, tx *gorm.DB, id uuid.UUID, nextDueDate, lastOrderDate time.Time) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Model(&domain.Subscription{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"next_due_date":   domain.Date(nextDueDate),
			"last_order_date": domain.Date(lastOrderDate),
			"updated_at":      time.Now().UTC(),
		}).Error
}

func (r *SubscriptionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SubscriptionStatus) error {
	return r.db.WithContext(ctx).Model(&domain.Subscription{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now().UTC(),
		}).Error
}
