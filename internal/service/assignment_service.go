package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nordrens-as/planning-api/internal/auth"
	"github.com/nordrens-as/planning-api/internal/domain"
	"github.com/nordrens-as/planning-api/internal/metrics"
	"github.com/nordrens-as/planning-api/internal/repository"
	"go.uber.org/zap"
)

const noEligibleEmployeesReason = "no eligible employees"

// AssignmentService assigns each unassigned, non-terminal order to the
// best-fit active employee. It never rebalances existing assignments.
type AssignmentService struct {
	orderRepo     *repository.OrderRepository
	employeeRepo  *repository.EmployeeRepository
	notifications *NotificationService
	logger        *zap.Logger
	retry         retryPolicy
}

func NewAssignmentService(
	orderRepo *repository.OrderRepository,
	employeeRepo *repository.EmployeeRepository,
	notifications *NotificationService,
	logger *zap.Logger,
) *AssignmentService {
	return &AssignmentService{
		orderRepo:     orderRepo,
		employeeRepo:  employeeRepo,
		notifications: notifications,
		logger:        logger,
		retry:         retryPolicy{attempts: 3, backoff: 100 * time.Millisecond},
	}
}

// RunAssignmentPass scores every active employee against every unassigned
// order and applies the best match. Employees are iterated in stable id
// order, so score ties always resolve to the same employee. Per-order
// failures are counted and never abort the pass.
func (s *AssignmentService) RunAssignmentPass(ctx context.Context) (*domain.AssignmentSummary, error) {
	orders, err := s.orderRepo.ListUnassigned(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unassigned orders: %w", err)
	}

	summary := &domain.AssignmentSummary{}
	if len(orders) == 0 {
		return summary, nil
	}

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	if len(employees) == 0 {
		s.logger.Warn("assignment pass found no eligible employees",
			zap.Int("unassigned_orders", len(orders)),
		)
		summary.Reason = noEligibleEmployeesReason
		s.notifications.Record(ctx, domain.NotificationTypeAssignmentRun,
			"Assignment pass skipped",
			fmt.Sprintf("%d unassigned orders but no active employees", len(orders)))
		return summary, nil
	}

	s.logger.Info("starting assignment pass",
		zap.Int("unassigned_orders", len(orders)),
		zap.Int("active_employees", len(employees)),
		zap.String("caller", auth.CallerName(ctx)),
	)

	for i := range orders {
		order := orders[i]

		var best *domain.Employee
		var bestScore int
		var reason string

		if len(employees) == 1 {
			// With a single active employee there is nothing to score.
			best = &employees[0]
			bestScore = scoreCandidate(&order, best)
			reason = "only active employee"
		} else {
			for j := range employees {
				if score := scoreCandidate(&order, &employees[j]); score > bestScore {
					bestScore = score
					best = &employees[j]
				}
			}
			reason = fmt.Sprintf("best match (score %d)", bestScore)
		}

		err := s.retry.do(ctx, func() error {
			return s.orderRepo.UpdateAssignment(ctx, order.ID, best.ID, domain.OrderStatusPlanned, true)
		})
		if err != nil {
			s.logger.Error("failed to assign order",
				zap.String("order_id", order.ID.String()),
				zap.String("employee_id", best.ID.String()),
				zap.Error(err),
			)
			summary.Failed++
			metrics.OrdersAssigned.WithLabelValues("failed").Inc()
			continue
		}

		summary.Assigned++
		metrics.OrdersAssigned.WithLabelValues("assigned").Inc()
		summary.Results = append(summary.Results, domain.AssignmentResult{
			OrderID:      order.ID,
			EmployeeID:   best.ID,
			EmployeeName: best.Name,
			Score:        bestScore,
			Reason:       reason,
		})
	}

	s.logger.Info("assignment pass completed",
		zap.Int("assigned", summary.Assigned),
		zap.Int("failed", summary.Failed),
	)

	s.notifications.Record(ctx, domain.NotificationTypeAssignmentRun,
		"Assignment pass completed",
		fmt.Sprintf("%d orders assigned, %d failed", summary.Assigned, summary.Failed))

	return summary, nil
}

// scoreCandidate rates one employee against one order. Base score 1, +3 for
// a specialty overlapping the order type (case-insensitive substring match in
// either direction), +2 for high priority, +1 when the customer record
// carries an email.
func scoreCandidate(order *domain.Order, employee *domain.Employee) int {
	score := 1

	if order.OrderType != "" {
		orderType := strings.ToLower(order.OrderType)
		for _, specialty := range employee.Specialties {
			sp := strings.ToLower(specialty)
			if sp == "" {
				continue
			}
			if strings.Contains(sp, orderType) || strings.Contains(orderType, sp) {
				score += 3
				break
			}
		}
	}

	if order.Priority == domain.OrderPriorityHigh {
		score += 2
	}

	if order.CustomerEmail != "" {
		score += 1
	}

	return score
}
