package commands_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/assignment"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustOrderID(t *testing.T, v int64) kernel.OrderID {
	t.Helper()
	id, err := kernel.NewOrderID(v)
	require.NoError(t, err)
	return id
}

func mustAgentID(t *testing.T, v int64) kernel.AgentID {
	t.Helper()
	id, err := kernel.NewAgentID(v)
	require.NoError(t, err)
	return id
}

func newWaitingAssignment(t *testing.T, orderID kernel.OrderID, agentID kernel.AgentID) *assignment.Assignment {
	t.Helper()
	pickup := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	a, err := assignment.NewAssignment(
		kernel.NewUUID(), orderID, agentID, "John Doe", pickup, pickup.Add(45*time.Minute))
	require.NoError(t, err)
	return a
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) LookupCustomerName(ctx context.Context, id kernel.OrderID) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Add(ctx context.Context, a *assignment.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, a *assignment.Assignment,
	expectedWorkflow assignment.WorkflowStatus, expectedTransit assignment.TransitStatus,
) error {
	args := m.Called(ctx, a, expectedWorkflow, expectedTransit)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Delete(ctx context.Context, a *assignment.Assignment,
	expectedWorkflow assignment.WorkflowStatus,
) error {
	args := m.Called(ctx, a, expectedWorkflow)
	return args.Error(0)
}

func (m *MockAssignmentRepository) GetByID(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetByOrderID(
	ctx context.Context, orderID kernel.OrderID,
) (*assignment.Assignment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

type MockPerformanceRepository struct{ mock.Mock }

func (m *MockPerformanceRepository) Refresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

func (m *MockUoW) PerformanceRepository() ports.PerformanceRepository {
	args := m.Called()
	return args.Get(0).(ports.PerformanceRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockPerformanceUoWFactory struct{ mock.Mock }

func (m *MockPerformanceUoWFactory) Create() commands.PerformanceUoW {
	args := m.Called()
	return args.Get(0).(commands.PerformanceUoW)
}
