package service

import (
	"context"
	"fmt"

	"github.com/nordrens-as/planning-api/internal/domain"
	"github.com/nordrens-as/planning-api/internal/repository"
	"go.uber.org/zap"
)

type EmployeeService struct {
	employeeRepo *repository.EmployeeRepository
	logger       *zap.Logger
}

func NewEmployeeService(employeeRepo *repository.EmployeeRepository, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo, logger: logger}
}

func (s *EmployeeService) Create(ctx context.Context, req *domain.CreateEmployeeRequest) (*domain.Employee, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	emp := &domain.Employee{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		IsActive:       isActive,
		Specialties:    req.Specialties,
		PreferredAreas: req.PreferredAreas,
	}

	if err := s.employeeRepo.Create(ctx, emp); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	s.logger.Info("employee created",
		zap.String("employee_id", emp.ID.String()),
		zap.String("name", emp.Name),
	)
	return emp, nil
}

func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.employeeRepo.List(ctx)
}
