package commands_test

import (
	"context"
	"testing"
	"time"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByUser(ctx context.Context, id, userID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderSequence struct{ mock.Mock }

func (m *MockOrderSequence) Next(ctx context.Context, day time.Time) (int, error) {
	args := m.Called(ctx, day)
	return args.Int(0), args.Error(1)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) OrderCreated(ctx context.Context, o *order.Order) {
	m.Called(ctx, o)
}

func (m *MockPublisher) OrderStatusChanged(ctx context.Context, o *order.Order, previous order.Status) {
	m.Called(ctx, o, previous)
}

func (m *MockPublisher) OrderCancelled(ctx context.Context, o *order.Order) {
	m.Called(ctx, o)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCreateOrderUoW struct{ MockOrderUoW }

func (m *MockCreateOrderUoW) OrderSequence() ports.OrderSequence {
	args := m.Called()
	return args.Get(0).(ports.OrderSequence)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

// Fixtures shared by the command tests.

func fixtureItems(t *testing.T) []order.Item {
	t.Helper()

	item, err := order.NewItem("prod-1", "Wireless Mouse", 29.99, 2)
	require.NoError(t, err)
	return []order.Item{item}
}

func fixturePricing(t *testing.T) order.Pricing {
	t.Helper()

	pricing, err := order.NewPricing(59.98, 5.40, 10.00, 75.38)
	require.NoError(t, err)
	return pricing
}

func fixtureAddress(t *testing.T) order.Address {
	t.Helper()

	address, err := order.NewAddress(
		"Jane Doe", "1 Main St", "", "Springfield", "IL", "62704", "US", "+1-555-0100")
	require.NoError(t, err)
	return address
}

func fixturePendingOrder(t *testing.T, userID kernel.UUID) *order.Order {
	t.Helper()

	now := time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)
	number, err := order.NewNumber(now, 1)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), number, userID,
		fixtureItems(t), fixturePricing(t), fixtureAddress(t), "", "", now)
	require.NoError(t, err)
	return o
}
