package commands_test

import (
	"context"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/center"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCenterRepository struct{ mock.Mock }

func (m *MockCenterRepository) Add(ctx context.Context, c *center.Center) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCenterRepository) Update(ctx context.Context, c *center.Center) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCenterRepository) Get(ctx context.Context, id kernel.ID) (*center.Center, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*center.Center), args.Error(1)
}

func (m *MockCenterRepository) GetAll(ctx context.Context) ([]*center.Center, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*center.Center), args.Error(1)
}

func (m *MockCenterRepository) GetAllAvailable(ctx context.Context) ([]*center.Center, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*center.Center), args.Error(1)
}

func (m *MockCenterRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCenterRepository) ExistsAtCoordinates(ctx context.Context, c kernel.Coordinates) (bool, error) {
	args := m.Called(ctx, c)
	return args.Bool(0), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllPending(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

// MockUoW satisfies every unit of work flavour used by the handlers.
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

func (m *MockUoW) LockAssignments(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CenterRepository() ports.CenterRepository {
	args := m.Called()
	return args.Get(0).(ports.CenterRepository)
}

type MockCenterUoWFactory struct{ mock.Mock }

func (m *MockCenterUoWFactory) Create() commands.CenterUoW {
	args := m.Called()
	return args.Get(0).(commands.CenterUoW)
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

type MockBatchRecorder struct{ mock.Mock }

func (m *MockBatchRecorder) ObserveBatch(assigned, rejected int, duration time.Duration) {
	m.Called(assigned, rejected, duration)
}

func (m *MockBatchRecorder) ObserveFailure(reason string) {
	m.Called(reason)
}
