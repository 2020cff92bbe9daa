package service

import (
	"context"
	"testing"

	"github.com/nordrens-as/planning-api/internal/domain"
	"github.com/nordrens-as/planning-api/internal/repository"
	"github.com/nordrens-as/planning-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestAssigner(t *testing.T, db *gorm.DB) *AssignmentService {
	t.Helper()
	return NewAssignmentService(
		repository.NewOrderRepository(db),
		repository.NewEmployeeRepository(db),
		NewNotificationService(repository.NewNotificationRepository(db), zap.NewNop()),
		zap.NewNop(),
	)
}

func createUnassignedOrder(t *testing.T, db *gorm.DB, orderType, email string, priority domain.OrderPriority) *domain.Order {
	t.Helper()
	order := &domain.Order{
		OrderType:     orderType,
		CustomerName:  "Kunde",
		CustomerEmail: email,
		Status:        domain.OrderStatusUnplanned,
		Priority:      priority,
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func TestRunAssignmentPass_NoOrders(t *testing.T) {
	db := testutil.SetupTestDB(t)
	assigner := newTestAssigner(t, db)

	summary, err := assigner.RunAssignmentPass(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Assigned)
	assert.Empty(t, summary.Reason)
}

func TestRunAssignmentPass_NoEligibleEmployees(t *testing.T) {
	db := testutil.SetupTestDB(t)
	assigner := newTestAssigner(t, db)

	createUnassignedOrder(t, db, "Vinduespudsning", "", domain.OrderPriorityNormal)
	inactive := testutil.CreateTestEmployee(t, db, "Inaktiv")
	require.NoError(t, db.Model(inactive).Update("is_active", false).Error)

	summary, err := assigner.RunAssignmentPass(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Assigned)
	assert.Equal(t, "no eligible employees", summary.Reason)

	// Orders remain untouched for the next pass
	var order domain.Order
	require.NoError(t, db.First(&order).Error)
	assert.Nil(t, order.AssignedEmployeeID)
	assert.Equal(t, domain.OrderStatusUnplanned, order.Status)
}

func TestRunAssignmentPass_SingleEmployeeShortcut(t *testing.T) {
	db := testutil.SetupTestDB(t)
	assigner := newTestAssigner(t, db)

	order := createUnassignedOrder(t, db, "Vinduespudsning", "", domain.OrderPriorityNormal)
	emp := testutil.CreateTestEmployee(t, db, "Eneste")

	summary, err := assigner.RunAssignmentPass(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, summary.Assigned)
	require.Len(t, summary.Results, 1)
	assert.Equal(t, "only active employee", summary.Results[0].Reason)
	assert.Equal(t, emp.ID, summary.Results[0].EmployeeID)

	var updated domain.Order
	require.NoError(t, db.First(&updated, "id = ?", order.ID).Error)
	require.NotNil(t, updated.AssignedEmployeeID)
	assert.Equal(t, emp.ID, *updated.AssignedEmployeeID)
	assert.Equal(t, domain.OrderStatusPlanned, updated.Status)
	assert.True(t, updated.AutoAssigned)
}

func TestRunAssignmentPass_PrefersSpecialtyMatch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	assigner := newTestAssigner(t, db)

	order := createUnassignedOrder(t, db, "Vinduespudsning", "kunde@example.com", domain.OrderPriorityHigh)
	testutil.CreateTestEmployee(t, db, "Generalist", "Havearbejde")
	specialist := testutil.CreateTestEmployee(t, db, "Specialist", "vinduespudsning")

	summary, err := assigner.RunAssignmentPass(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.Results, 1)

	// Specialty +3, high priority +2, email +1, base 1
	assert.Equal(t, specialist.ID, summary.Results[0].EmployeeID)
	assert.Equal(t, 7, summary.Results[0].Score)

	var updated domain.Order
	require.NoError(t, db.First(&updated, "id = ?", order.ID).Error)
	assert.Equal(t, specialist.ID, *updated.AssignedEmployeeID)
}

func TestRunAssignmentPass_SkipsTerminalOrders(t *testing.T) {
	db := testutil.SetupTestDB(t)
	assigner := newTestAssigner(t, db)

	done := createUnassignedOrder(t, db, "Rengøring", "", domain.OrderPriorityNormal)
	require.NoError(t, db.Model(done).Update("status", domain.OrderStatusDone).Error)
	testutil.CreateTestEmployee(t, db, "Arbejder")

	summary, err := assigner.RunAssignmentPass(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Assigned)
}

func TestScoreCandidate(t *testing.T) {
	tests := []struct {
		name     string
		order    domain.Order
		employee domain.Employee
		want     int
	}{
		{
			name:     "base score only",
			order:    domain.Order{OrderType: "Rengøring", Priority: domain.OrderPriorityNormal},
			employee: domain.Employee{},
			want:     1,
		},
		{
			name:     "specialty contained in order type",
			order:    domain.Order{OrderType: "Vinduespudsning erhverv", Priority: domain.OrderPriorityNormal},
			employee: domain.Employee{Specialties: []string{"Vinduespudsning"}},
			want:     4,
		},
		{
			name:     "specialty containing order type",
			order:    domain.Order{OrderType: "rengøring", Priority: domain.OrderPriorityNormal},
			employee: domain.Employee{Specialties: []string{"Erhvervsrengøring"}},
			want:     4,
		},
		{
			name:     "all bonuses",
			order:    domain.Order{OrderType: "Rengøring", Priority: domain.OrderPriorityHigh, CustomerEmail: "a@b.dk"},
			employee: domain.Employee{Specialties: []string{"rengøring"}},
			want:     7,
		},
		{
			name:     "empty specialty ignored",
			order:    domain.Order{OrderType: "Rengøring", Priority: domain.OrderPriorityNormal},
			employee: domain.Employee{Specialties: []string{""}},
			want:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoreCandidate(&tt.order, &tt.employee))
		})
	}
}
