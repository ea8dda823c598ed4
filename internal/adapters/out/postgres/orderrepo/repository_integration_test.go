package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence behavior
// against a real PostgreSQL instance.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(kernel.NewUUID(), 1)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateOrderNumber_Fails() {
	ctx := context.Background()

	userID := kernel.NewUUID()
	first := suite.createTestOrder(userID, 7)
	second := suite.createTestOrder(userID, 7)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()

	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().Error(suite.repository.Add(ctx, second))
	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTrip_PreservesAllFields() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(kernel.NewUUID(), 3)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(restored.IsEqual(testOrder))
	suite.True(restored.Number().IsEqual(testOrder.Number()))
	suite.True(restored.UserID().IsEqual(testOrder.UserID()))
	suite.Equal(order.Pending, restored.Status())
	suite.Equal(testOrder.PaymentID(), restored.PaymentID())
	suite.Len(restored.Items(), 2)
	suite.Equal("Wireless Mouse", restored.Items()[0].Name())
	suite.InDelta(75.38, restored.Pricing().Total(), 0.001)
	suite.Equal("Springfield", restored.Address().City())
	suite.Nil(restored.ShippedAt())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_MissingOrder_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByUser_ForeignOwner_ReturnsNotFound() {
	ctx := context.Background()

	owner := kernel.NewUUID()
	testOrder := suite.createTestOrder(owner, 5)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Owner sees the order.
	found, err := suite.repository.GetByUser(ctx, testOrder.ID(), owner)
	suite.Require().NoError(err)
	suite.True(found.IsEqual(testOrder))

	// Any other user gets the same not-found error as for an absent order.
	_, err = suite.repository.GetByUser(ctx, testOrder.ID(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	_, absentErr := suite.repository.GetByUser(ctx, kernel.NewUUID(), owner)
	suite.Require().Error(absentErr)
	suite.ErrorIs(absentErr, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusChange_Persisted() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(kernel.NewUUID(), 9)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	now := time.Now().UTC()
	suite.Require().NoError(testOrder.ChangeStatus(order.Processing, "", "", now))
	suite.Require().NoError(testOrder.ChangeStatus(order.Shipped, "TRACK123", "", now))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Shipped, restored.Status())
	suite.Equal("TRACK123", restored.TrackingNumber())
	suite.Require().NotNil(restored.ShippedAt())
	suite.WithinDuration(now, *restored.ShippedAt(), time.Second)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Cancellation_PersistsReason() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(kernel.NewUUID(), 11)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Cancel("Changed my mind", time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, restored.Status())
	suite.Equal("Changed my mind", restored.CancellationReason())
	suite.NotNil(restored.CancelledAt())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrder_ReturnsNotFound() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(kernel.NewUUID(), 13)

	err := suite.repository.Update(ctx, testOrder)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(userID kernel.UUID, sequence int) *order.Order {
	now := time.Now().UTC()

	number, err := order.NewNumber(now, sequence)
	suite.Require().NoError(err)

	mouse, err := order.NewItem("prod-1", "Wireless Mouse", 19.99, 2)
	suite.Require().NoError(err)
	keyboard, err := order.NewItem("prod-2", "Keyboard", 20.00, 1)
	suite.Require().NoError(err)

	pricing, err := order.NewPricing(59.98, 5.40, 10.00, 75.38)
	suite.Require().NoError(err)

	address, err := order.NewAddress(
		"John Smith", "1 Main St", "", "Springfield", "IL", "62701", "US", "+1-555-0100",
	)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), number, userID,
		[]order.Item{mouse, keyboard}, pricing, address,
		"pay-123", "leave at door", now,
	)
	suite.Require().NoError(err)

	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
