package domain

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

// BeforeCreate assigns an ID when the database cannot (sqlite has no
// gen_random_uuid).
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// SubscriptionStatus represents the lifecycle state of a subscription
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusPaused    SubscriptionStatus = "paused"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

// IsValid checks if the SubscriptionStatus is a valid enum value
func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionStatusActive, SubscriptionStatusPaused, SubscriptionStatusCancelled:
		return true
	}
	return false
}

// Subscription represents a recurring service contract. The order generator is
// the only component that mutates it: it advances NextDueDate by IntervalWeeks*7
// days and stamps LastOrderDate. Subscriptions are never deleted by this service.
type Subscription struct {
	BaseModel
	CustomerName      string             `gorm:"type:varchar(200);not null;index" json:"customerName" validate:"required,max=200"`
	CustomerEmail     string             `gorm:"type:varchar(255)" json:"customerEmail" validate:"omitempty,email"`
	CustomerAddress   string             `gorm:"type:varchar(500)" json:"customerAddress"`
	ServiceType       string             `gorm:"type:varchar(100);not null" json:"serviceType" validate:"required,max=100"`
	Description       string             `gorm:"type:text" json:"description,omitempty"`
	Notes             string             `gorm:"type:text" json:"notes,omitempty"`
	Price             float64            `gorm:"not null;default:0" json:"price" validate:"gte=0"`
	IntervalWeeks     int                `gorm:"not null;column:interval_weeks" json:"intervalWeeks" validate:"gte=1"`
	StartDate         time.Time          `gorm:"type:date;not null;column:start_date" json:"startDate"`
	NextDueDate       time.Time          `gorm:"type:date;not null;column:next_due_date;index" json:"nextDueDate"`
	LastOrderDate     *time.Time         `gorm:"type:date;column:last_order_date" json:"lastOrderDate,omitempty"`
	EstimatedDuration int                `gorm:"not null;default:60;column:estimated_duration" json:"estimatedDuration" validate:"gte=0"`
	AutoCreateOrders  bool               `gorm:"not null;default:true;column:auto_create_orders" json:"autoCreateOrders"`
	Status            SubscriptionStatus `gorm:"type:varchar(50);not null;default:'active';index" json:"status"`
	Orders            []Order            `gorm:"foreignKey:SubscriptionID" json:"-"`
}

var subscriptionValidate = validator.New()

// Validate enforces subscription invariants at the store boundary.
// A subscription failing validation is skipped by the generator, not repaired.
func (s *Subscription) Validate() error {
	if err := subscriptionValidate.Struct(s); err != nil {
		return err
	}
	if s.NextDueDate.Before(s.StartDate) {
		return ErrNextDueBeforeStart
	}
	return nil
}

// Interval returns the subscription cadence as a duration.
func (s *Subscription) Interval() time.Duration {
	return time.Duration(s.IntervalWeeks) * 7 * 24 * time.Hour
}

// OrderStatus represents the scheduling state of an order
type OrderStatus string

const (
	OrderStatusUnplanned  OrderStatus = "unplanned"
	OrderStatusPlanned    OrderStatus = "planned"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusDone       OrderStatus = "done"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsTerminal reports whether the order has reached a final state.
// Terminal orders are never touched by the assignment engine.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDone || s == OrderStatusCancelled
}

// OrderPriority represents the urgency of an order
type OrderPriority string

const (
	OrderPriorityLow    OrderPriority = "low"
	OrderPriorityNormal OrderPriority = "normal"
	OrderPriorityHigh   OrderPriority = "high"
)

// Order represents one concrete scheduled visit. Subscription-generated orders
// carry a SubscriptionID back-reference and a ScheduledDate equal to the due
// date they were generated for.
type Order struct {
	BaseModel
	SubscriptionID     *uuid.UUID    `gorm:"type:uuid;column:subscription_id;index:idx_orders_sub_date" json:"subscriptionId,omitempty"`
	OrderType          string        `gorm:"type:varchar(100);not null;column:order_type" json:"orderType"`
	CustomerName       string        `gorm:"type:varchar(200);not null" json:"customerName"`
	CustomerEmail      string        `gorm:"type:varchar(255)" json:"customerEmail"`
	Address            string        `gorm:"type:varchar(500)" json:"address"`
	Price              float64       `gorm:"not null;default:0" json:"price"`
	ScheduledDate      *time.Time    `gorm:"type:date;column:scheduled_date;index:idx_orders_sub_date" json:"scheduledDate,omitempty"`
	AssignedEmployeeID *uuid.UUID    `gorm:"type:uuid;column:assigned_employee_id;index" json:"assignedEmployeeId,omitempty"`
	Status             OrderStatus   `gorm:"type:varchar(50);not null;default:'unplanned';index" json:"status"`
	Priority           OrderPriority `gorm:"type:varchar(50);not null;default:'normal'" json:"priority"`
	EstimatedDuration  int           `gorm:"not null;default:60;column:estimated_duration" json:"estimatedDuration"`
	Comment            string        `gorm:"type:text" json:"comment,omitempty"`
	AutoAssigned       bool          `gorm:"not null;default:false;column:auto_assigned" json:"autoAssigned"`
	EditedManually     bool          `gorm:"not null;default:false;column:edited_manually" json:"editedManually"`
}

// Employee represents a field worker. Read-only from this service's
// perspective apart from the supplemental create endpoint.
type Employee struct {
	BaseModel
	Name           string   `gorm:"type:varchar(200);not null" json:"name"`
	Email          string   `gorm:"type:varchar(255)" json:"email"`
	Phone          string   `gorm:"type:varchar(50)" json:"phone"`
	IsActive       bool     `gorm:"not null;default:true;column:is_active;index" json:"isActive"`
	Specialties    []string `gorm:"serializer:json" json:"specialties"`
	PreferredAreas []string `gorm:"serializer:json;column:preferred_areas" json:"preferredAreas"`
}

// NotificationType classifies persisted planning notifications
type NotificationType string

const (
	NotificationTypeGenerationRun NotificationType = "generation_run"
	NotificationTypeAssignmentRun NotificationType = "assignment_run"
	NotificationTypeRegeneration  NotificationType = "regeneration"
)

// Notification is a persisted record of a planning run, kept so the
// presentation layer can show what the background jobs did.
type Notification struct {
	BaseModel
	Type    NotificationType `gorm:"type:varchar(50);not null;index" json:"type"`
	Title   string           `gorm:"type:varchar(200);not null" json:"title"`
	Message string           `gorm:"type:text" json:"message"`
	Read    bool             `gorm:"not null;default:false" json:"read"`
}

// Date normalizes a timestamp to a calendar date (UTC midnight).
// Scheduled and due dates are compared at day granularity throughout.
func Date(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether two timestamps fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return Date(a).Equal(Date(b))
}
