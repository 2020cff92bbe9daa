package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nordrens-as/planning-api/internal/auth"
	"github.com/nordrens-as/planning-api/internal/domain"
	"github.com/nordrens-as/planning-api/internal/metrics"
	"github.com/nordrens-as/planning-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GeneratorOptions tune the order generator.
type GeneratorOptions struct {
	// LookaheadDays is how far ahead of the reference date a subscription
	// may be due and still be picked up.
	LookaheadDays int
	// ProjectedOrders is the number of placeholder orders kept beyond the
	// due-date order, for calendar visibility.
	ProjectedOrders int
	// RetryAttempts and RetryBackoff control per-subscription retries on
	// transient store errors.
	RetryAttempts int
	RetryBackoff  time.Duration
}

// DefaultGeneratorOptions match the production configuration defaults.
func DefaultGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{
		LookaheadDays:   7,
		ProjectedOrders: 3,
		RetryAttempts:   3,
		RetryBackoff:    100 * time.Millisecond,
	}
}

// GeneratorService converts due subscriptions into concrete orders, keeps a
// rolling window of projected future orders per subscription, and advances
// subscription due dates. It is the only writer of subscription rows.
type GeneratorService struct {
	subscriptionRepo *repository.SubscriptionRepository
	orderRepo        *repository.OrderRepository
	notifications    *NotificationService
	logger           *zap.Logger
	db               *gorm.DB
	opts             GeneratorOptions
	retry            retryPolicy
	subLocks         *keyedMutex
}

func NewGeneratorService(
	subscriptionRepo *repository.SubscriptionRepository,
	orderRepo *repository.OrderRepository,
	notifications *NotificationService,
	logger *zap.Logger,
	db *gorm.DB,
	opts GeneratorOptions,
) *GeneratorService {
	return &GeneratorService{
		subscriptionRepo: subscriptionRepo,
		orderRepo:        orderRepo,
		notifications:    notifications,
		logger:           logger,
		db:               db,
		opts:             opts,
		retry:            retryPolicy{attempts: opts.RetryAttempts, backoff: opts.RetryBackoff},
		subLocks:         newKeyedMutex(),
	}
}

// RunDailyGeneration processes every subscription due within the lookahead
// window as of the given reference date. The pass is idempotent: a second run
// for the same date is a no-op, because each unit checks for an existing
// order on its due date before inserting. Per-subscription failures are
// reported in the summary and never abort the batch.
func (s *GeneratorService) RunDailyGeneration(ctx context.Context, asOf time.Time) (*domain.GenerationSummary, error) {
	start := time.Now()
	day := domain.Date(asOf)

	subscriptions, err := s.subscriptionRepo.ListDue(ctx, day, s.opts.LookaheadDays)
	if err != nil {
		return nil, fmt.Errorf("failed to list due subscriptions: %w", err)
	}

	s.logger.Info("starting order generation pass",
		zap.Time("as_of", day),
		zap.Int("due_subscriptions", len(subscriptions)),
		zap.String("caller", auth.CallerName(ctx)),
	)

	summary := &domain.GenerationSummary{AsOf: day}
	for i := range subscriptions {
		sub := subscriptions[i]
		result := s.generateForSubscription(ctx, &sub, day)
		summary.Results = append(summary.Results, result)

		switch {
		case result.Error != "":
			summary.Failed++
			metrics.SubscriptionsProcessed.WithLabelValues("failed").Inc()
		case result.Skipped:
			summary.Skipped++
			metrics.SubscriptionsProcessed.WithLabelValues("skipped").Inc()
		default:
			summary.Processed++
			summary.OrdersCreated += result.OrdersCreated
			metrics.SubscriptionsProcessed.WithLabelValues("processed").Inc()
			metrics.OrdersGenerated.Add(float64(result.OrdersCreated))
		}
	}
	summary.Duration = time.Since(start)

	s.logger.Info("order generation pass completed",
		zap.Int("processed", summary.Processed),
		zap.Int("failed", summary.Failed),
		zap.Int("skipped", summary.Skipped),
		zap.Int("orders_created", summary.OrdersCreated),
		zap.Duration("duration", summary.Duration),
	)

	s.notifications.Record(ctx, domain.NotificationTypeGenerationRun,
		"Order generation completed",
		fmt.Sprintf("%d subscriptions processed, %d orders created, %d skipped, %d failed",
			summary.Processed, summary.OrdersCreated, summary.Skipped, summary.Failed))

	return summary, nil
}

// generateForSubscription handles one subscription as an independent unit:
// lock, validate, duplicate-check, then insert the due order plus the
// projected window and advance the due date in a single transaction.
func (s *GeneratorService) generateForSubscription(ctx context.Context, sub *domain.Subscription, day time.Time) domain.SubscriptionResult {
	result := domain.SubscriptionResult{
		SubscriptionID: sub.ID,
		CustomerName:   sub.CustomerName,
	}

	unlock := s.subLocks.lock(sub.ID)
	defer unlock()

	if err := sub.Validate(); err != nil {
		s.logger.Warn("skipping invalid subscription",
			zap.String("subscription_id", sub.ID.String()),
			zap.Error(err),
		)
		result.Error = fmt.Sprintf("validation: %v", err)
		return result
	}

	// New subscriptions that have never generated an order start from their
	// start date rather than the rolling due date.
	startOrder := sub.LastOrderDate == nil && !domain.Date(sub.StartDate).Before(day)
	orderDate := domain.Date(sub.NextDueDate)
	if startOrder {
		orderDate = domain.Date(sub.StartDate)
	}

	existing, err := s.orderRepo.FindBySubscriptionAndDate(ctx, sub.ID, orderDate)
	if err != nil {
		result.Error = fmt.Sprintf("duplicate check: %v", err)
		return result
	}
	if existing != nil {
		result.Skipped = true
		result.Reason = fmt.Sprintf("order already exists for %s", orderDate.Format("2006-01-02"))
		return result
	}

	interval := sub.Interval()
	err = s.retry.do(ctx, func() error {
		return s.db.Transaction(func(tx *gorm.DB) error {
			// Recreate the projected window beyond the due date so earlier
			// cadence drift is corrected. Manually edited orders survive.
			after := orderDate.AddDate(0, 0, 1)
			if err := s.orderRepo.DeleteForSubscription(ctx, tx, sub.ID, &after); err != nil {
				return fmt.Errorf("failed to clear projected orders: %w", err)
			}

			orders := s.buildOrders(sub, orderDate, startOrder)
			if err := s.orderRepo.InsertMany(ctx, tx, orders); err != nil {
				return fmt.Errorf("failed to insert orders: %w", err)
			}

			nextDue := orderDate.Add(interval)
			if err := s.subscriptionRepo.Advance(ctx, tx, sub.ID, nextDue, orderDate); err != nil {
				return fmt.Errorf("failed to advance subscription: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		s.logger.Error("subscription generation unit failed",
			zap.String("subscription_id", sub.ID.String()),
			zap.String("customer", sub.CustomerName),
			zap.Error(err),
		)
		result.Error = err.Error()
		return result
	}

	result.OrdersCreated = 1 + s.opts.ProjectedOrders
	return result
}

// ForceRegenerate deletes all of one subscription's generated orders and
// rebuilds the full window from its start date with the correct cadence. It
// is the corrective tool for subscriptions whose orders were created with a
// wrong interval, and is never run by the daily trigger.
func (s *GeneratorService) ForceRegenerate(ctx context.Context, subscriptionID uuid.UUID) (*domain.GenerationSummary, error) {
	sub, err := s.subscriptionRepo.GetByID(ctx, subscriptionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}
	if err := sub.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSubscription, err)
	}

	unlock := s.subLocks.lock(sub.ID)
	defer unlock()

	s.logger.Info("force regenerating subscription orders",
		zap.String("subscription_id", sub.ID.String()),
		zap.String("customer", sub.CustomerName),
		zap.Int("interval_weeks", sub.IntervalWeeks),
		zap.String("caller", auth.CallerName(ctx)),
	)

	startDate := domain.Date(sub.StartDate)
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.DeleteForSubscription(ctx, tx, sub.ID, nil); err != nil {
			return fmt.Errorf("failed to delete existing orders: %w", err)
		}

		orders := s.buildOrders(sub, startDate, true)
		if err := s.orderRepo.InsertMany(ctx, tx, orders); err != nil {
			return fmt.Errorf("failed to insert orders: %w", err)
		}

		nextDue := startDate.Add(sub.Interval())
		if err := s.subscriptionRepo.Advance(ctx, tx, sub.ID, nextDue, startDate); err != nil {
			return fmt.Errorf("failed to advance subscription: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	created := 1 + s.opts.ProjectedOrders
	s.notifications.Record(ctx, domain.NotificationTypeRegeneration,
		"Subscription orders regenerated",
		fmt.Sprintf("%s: %d orders recreated at %d-week intervals",
			sub.CustomerName, created, sub.IntervalWeeks))

	return &domain.GenerationSummary{
		AsOf:          startDate,
		Processed:     1,
		OrdersCreated: created,
		Results: []domain.SubscriptionResult{{
			SubscriptionID: sub.ID,
			CustomerName:   sub.CustomerName,
			OrdersCreated:  created,
		}},
	}, nil
}

// buildOrders produces the due-date order and the projected future window
// for one subscription. Projected dates are spaced at exactly
// intervalWeeks*7 days so the cadence invariant holds.
func (s *GeneratorService) buildOrders(sub *domain.Subscription, orderDate time.Time, startOrder bool) []domain.Order {
	label := sub.Description
	if label == "" {
		label = sub.ServiceType
	}

	comment := "Subscription: " + label
	if startOrder {
		comment = "Subscription (start): " + label
	}
	if sub.Notes != "" {
		comment += "\nNotes: " + sub.Notes
	}

	orders := make([]domain.Order, 0, 1+s.opts.ProjectedOrders)
	orders = append(orders, s.orderFor(sub, orderDate, comment))

	projectedComment := "Subscription (projected): " + label
	for k := 1; k <= s.opts.ProjectedOrders; k++ {
		futureDate := orderDate.AddDate(0, 0, k*sub.IntervalWeeks*7)
		orders = append(orders, s.orderFor(sub, futureDate, projectedComment))
	}
	return orders
}

func (s *GeneratorService) orderFor(sub *domain.Subscription, date time.Time, comment string) domain.Order {
	scheduled := domain.Date(date)
	subID := sub.ID
	return domain.Order{
		SubscriptionID:    &subID,
		OrderType:         sub.ServiceType,
		CustomerName:      sub.CustomerName,
		CustomerEmail:     sub.CustomerEmail,
		Address:           sub.CustomerAddress,
		Price:             sub.Price,
		ScheduledDate:     &scheduled,
		Status:            domain.OrderStatusUnplanned,
		Priority:          domain.OrderPriorityNormal,
		EstimatedDuration: sub.EstimatedDuration,
		Comment:           comment,
	}
}
