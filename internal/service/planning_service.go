package service

import (
	"context"
	"fmt"
	"math"

	"github.com/nordrens-as/planning-api/internal/domain"
	"github.com/nordrens-as/planning-api/internal/repository"
	"go.uber.org/zap"
)

// PlanningService derives read-side planning counters. It holds no state and
// recomputes on every call; stale reads are acceptable.
type PlanningService struct {
	orderRepo    *repository.OrderRepository
	employeeRepo *repository.EmployeeRepository
	logger       *zap.Logger
}

func NewPlanningService(
	orderRepo *repository.OrderRepository,
	employeeRepo *repository.EmployeeRepository,
	logger *zap.Logger,
) *PlanningService {
	return &PlanningService{
		orderRepo:    orderRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

func (s *PlanningService) GetStats(ctx context.Context) (*domain.PlanningStats, error) {
	total, err := s.orderRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	needingOptimization, err := s.orderRepo.CountNeedingOptimization(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count unoptimized orders: %w", err)
	}

	activeEmployees, err := s.employeeRepo.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active employees: %w", err)
	}

	revenue, err := s.orderRepo.SumRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	return &domain.PlanningStats{
		TotalOrders:               total,
		OrdersNeedingOptimization: needingOptimization,
		OptimizationRate:          optimizationRate(total, needingOptimization),
		ActiveEmployees:           activeEmployees,
		TotalRevenue:              revenue,
	}, nil
}

// optimizationRate is the percentage of orders already planned. Defined as 0
// when there are no orders at all.
func optimizationRate(total, needingOptimization int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(total-needingOptimization) / float64(total) * 100))
}
