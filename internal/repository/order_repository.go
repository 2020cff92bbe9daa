package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/nordrens-as/planning-api/internal/domain"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// InsertMany inserts a batch of orders, optionally inside a transaction.
func (r *OrderRepository) InsertMany(ctx context.Context, tx *gorm.DB, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(&orders).Error
}

func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	var order domain.Order
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// FindBySubscriptionAndDate is the generator's idempotency check: it returns
// the order already generated for a (subscription, due date) pair, or nil.
func (r *OrderRepository) FindBySubscriptionAndDate(ctx context.Context, subscriptionID uuid.UUID, date time.Time) (*domain.Order, error) {
	var order domain.Order
	err := r.db.WithContext(ctx).
		Where("subscription_id = ? AND scheduled_date = ?", subscriptionID, domain.Date(date)).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// DeleteForSubscription removes a subscription's generated orders. When
// fromDate is non-nil only orders scheduled on or after it are removed.
// Manually edited orders are always preserved.
func (r *OrderRepository) DeleteForSubscription(ctx context.Context, tx *gorm.DB, subscriptionID uuid.UUID, fromDate *time.Time) error {
	if tx == nil {
		tx = r.db
	}
	query := tx.WithContext(ctx).
		Where("subscription_id = ? AND edited_manually = ?", subscriptionID, false)
	if fromDate != nil {
		query = query.Where("scheduled_date >= ?", domain.Date(*fromDate))
	}
	return query.Delete(&domain.Order{}).Error
}

// ListUnassigned returns orders eligible for the assignment engine: no
// assignee and not in a terminal state.
func (r *OrderRepository) ListUnassigned(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.WithContext(ctx).
		Where("assigned_employee_id IS NULL").
		Where("status NOT IN ?", []domain.OrderStatus{domain.OrderStatusDone, domain.OrderStatusCancelled}).
		Order("scheduled_date ASC").
		Find(&orders).Error
	return orders, err
}

// UpdateAssignment sets the assignee on an order. Reassignment overwrites the
// previous assignee; no assignment history is kept.
func (r *OrderRepository) UpdateAssignment(ctx context.Context, orderID, employeeID uuid.UUID, status domain.OrderStatus, autoAssigned bool) error {
	return r.db.WithContext(ctx).Model(&domain.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"assigned_employee_id": employeeID,
			"status":               status,
			"auto_assigned":        autoAssigned,
			"updated_at":           time.Now().UTC(),
		}).Error
}

func (r *OrderRepository) List(ctx context.Context, status domain.OrderStatus, page, pageSize int) ([]domain.Order, int64, error) {
	var orders []domain.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Order{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order("scheduled_date ASC").Find(&orders).Error
	return orders, total, err
}

func (r *OrderRepository) ListBySubscription(ctx context.Context, subscriptionID uuid.UUID) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.WithContext(ctx).
		Where("subscription_id = ?", subscriptionID).
		Order("scheduled_date ASC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Order{}).Count(&count).Error
	return int(count), err
}

// CountNeedingOptimization counts orders that are still unplanned or have no
// assignee, excluding terminal orders.
func (r *OrderRepository) CountNeedingOptimization(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Order{}).
		Where("status NOT IN ?", []domain.OrderStatus{domain.OrderStatusDone, domain.OrderStatusCancelled}).
		Where("status = ? OR assigned_employee_id IS NULL", domain.OrderStatusUnplanned).
		Count(&count).Error
	return int(count), err
}

func (r *OrderRepository) SumRevenue(ctx context.Context) (float64, error) {
	var total *float64
	err := r.db.WithContext(ctx).Model(&domain.Order{}).
		Select("SUM(price)").
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}
