package domain

import (
	"time"

	"github.com/google/uuid"
)

// CreateSubscriptionRequest is the payload for registering a recurring contract
type CreateSubscriptionRequest struct {
	CustomerName      string  `json:"customerName" validate:"required,max=200"`
	CustomerEmail     string  `json:"customerEmail" validate:"omitempty,email"`
	CustomerAddress   string  `json:"customerAddress" validate:"max=500"`
	ServiceType       string  `json:"serviceType" validate:"required,max=100"`
	Description       string  `json:"description"`
	Notes             string  `json:"notes"`
	Price             float64 `json:"price" validate:"gte=0"`
	IntervalWeeks     int     `json:"intervalWeeks" validate:"required,gte=1,lte=52"`
	StartDate         string  `json:"startDate" validate:"required,datetime=2006-01-02"`
	EstimatedDuration int     `json:"estimatedDuration" validate:"gte=0"`
	AutoCreateOrders  *bool   `json:"autoCreateOrders"`
}

// UpdateSubscriptionStatusRequest pauses or resumes a subscription
type UpdateSubscriptionStatusRequest struct {
	Status SubscriptionStatus `json:"status" validate:"required,oneof=active paused cancelled"`
}

// CreateEmployeeRequest is the payload for registering an employee
type CreateEmployeeRequest struct {
	Name           string   `json:"name" validate:"required,max=200"`
	Email          string   `json:"email" validate:"omitempty,email"`
	Phone          string   `json:"phone" validate:"max=50"`
	Specialties    []string `json:"specialties"`
	PreferredAreas []string `json:"preferredAreas"`
	IsActive       *bool    `json:"isActive"`
}

// RunGenerationRequest optionally overrides the reference date of a generation
// pass. Used by tests and admin backfills; the daily job always passes today.
type RunGenerationRequest struct {
	AsOf string `json:"asOf" validate:"omitempty,datetime=2006-01-02"`
}

// SubscriptionResult records the outcome of one subscription's generation unit
type SubscriptionResult struct {
	SubscriptionID uuid.UUID `json:"subscriptionId"`
	CustomerName   string    `json:"customerName"`
	OrdersCreated  int       `json:"ordersCreated"`
	Skipped        bool      `json:"skipped"`
	Reason         string    `json:"reason,omitempty"`
	Error          string    `json:"error,omitempty"`
}

// GenerationSummary is the batch-level contract of a generation pass.
// Per-unit failures are aggregated here and never escape to the trigger caller.
type GenerationSummary struct {
	AsOf          time.Time            `json:"asOf"`
	Processed     int                  `json:"processed"`
	Failed        int                  `json:"failed"`
	Skipped       int                  `json:"skipped"`
	OrdersCreated int                  `json:"ordersCreated"`
	Results       []SubscriptionResult `json:"results"`
	Duration      time.Duration        `json:"-"`
}

// AssignmentResult reports one order assignment for observability
type AssignmentResult struct {
	OrderID      uuid.UUID `json:"orderId"`
	EmployeeID   uuid.UUID `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	Score        int       `json:"score"`
	Reason       string    `json:"reason"`
}

// AssignmentSummary is the batch-level contract of an assignment pass
type AssignmentSummary struct {
	Assigned int                `json:"assigned"`
	Failed   int                `json:"failed"`
	Reason   string             `json:"reason,omitempty"`
	Results  []AssignmentResult `json:"results"`
}

// ErrorResponse is the simple error envelope used by handlers
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// PaginatedResponse wraps list responses with paging metadata
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

// PlanningStats holds the read-side planning counters
type PlanningStats struct {
	TotalOrders               int     `json:"totalOrders"`
	OrdersNeedingOptimization int     `json:"ordersNeedingOptimization"`
	OptimizationRate          int     `json:"optimizationRate"`
	ActiveEmployees           int     `json:"activeEmployees"`
	TotalRevenue              float64 `json:"totalRevenue"`
}
