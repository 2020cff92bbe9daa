package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nordrens-as/planning-api/internal/domain"
	"github.com/nordrens-as/planning-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SubscriptionService handles the supplemental CRUD surface for recurring
// contracts. Generation-related mutation lives in GeneratorService.
type SubscriptionService struct {
	subscriptionRepo *repository.SubscriptionRepository
	orderRepo        *repository.OrderRepository
	logger           *zap.Logger
}

func NewSubscriptionService(
	subscriptionRepo *repository.SubscriptionRepository,
	orderRepo *repository.OrderRepository,
	logger *zap.Logger,
) *SubscriptionService {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		orderRepo:        orderRepo,
		logger:           logger,
	}
}

func (s *SubscriptionService) Create(ctx context.Context, req *domain.CreateSubscriptionRequest) (*domain.Subscription, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date: %v", ErrInvalidInput, err)
	}

	autoCreate := true
	if req.AutoCreateOrders != nil {
		autoCreate = *req.AutoCreateOrders
	}

	sub := &domain.Subscription{
		CustomerName:      req.CustomerName,
		CustomerEmail:     req.CustomerEmail,
		CustomerAddress:   req.CustomerAddress,
		ServiceType:       req.ServiceType,
		Description:       req.Description,
		Notes:             req.Notes,
		Price:             req.Price,
		IntervalWeeks:     req.IntervalWeeks,
		StartDate:         domain.Date(startDate),
		NextDueDate:       domain.Date(startDate),
		EstimatedDuration: req.EstimatedDuration,
		AutoCreateOrders:  autoCreate,
		Status:            domain.SubscriptionStatusActive,
	}

	if err := s.subscriptionRepo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	s.logger.Info("subscription created",
		zap.String("subscription_id", sub.ID.String()),
		zap.String("customer", sub.CustomerName),
		zap.Int("interval_weeks", sub.IntervalWeeks),
	)
	return sub, nil
}

func (s *SubscriptionService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Subscription, error) {
	sub, err := s.subscriptionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return sub, nil
}

func (s *SubscriptionService) List(ctx context.Context, page, pageSize int) ([]domain.Subscription, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.subscriptionRepo.List(ctx, page, pageSize)
}

// UpdateStatus pauses, resumes, or cancels a subscription. The generator only
// ever sees active subscriptions, so this is the off switch for order creation.
func (s *SubscriptionService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SubscriptionStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.subscriptionRepo.UpdateStatus(ctx, id, status)
}

// Orders lists the orders generated for one subscription.
func (s *SubscriptionService) Orders(ctx context.Context, id uuid.UUID) ([]domain.Order, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.orderRepo.ListBySubscription(ctx, id)
}
