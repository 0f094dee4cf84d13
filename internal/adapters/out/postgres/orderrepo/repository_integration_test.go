package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"commerce/internal/adapters/out/postgres/orderrepo"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderProductDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_products, orders RESTART IDENTITY").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_AssignsIDAndKeepsLineItemOrder() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(3, 1, 2)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)

	suite.Require().NoError(err)
	suite.Positive(testOrder.ID())
	suite.assertOrderCount(1)

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	products := loaded.Products()
	suite.Require().Len(products, 3)
	suite.Equal(int64(3), products[0].ProductID())
	suite.Equal(int64(1), products[1].ProductID())
	suite.Equal(int64(2), products[2].ProductID())
	suite.Equal(order.Received, loaded.Status())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnconstructedOrder_Fails() {
	err := suite.repository.Add(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertOrderCount(0)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTripsAllFields() {
	ctx := context.Background()
	createdAt := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	delivery := createdAt.Add(72 * time.Hour)
	item, err := order.NewOrderProduct(7, 2, "XL")
	suite.Require().NoError(err)
	testOrder, err := order.NewOrder("Anna", "+37455000000", "Abovyan 1", []order.OrderProduct{item}, createdAt, &delivery)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.AssignDriver(42))
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())

	suite.Require().NoError(err)
	suite.Equal("Anna", loaded.FullName())
	suite.Equal("+37455000000", loaded.Phone())
	suite.Equal("Abovyan 1", loaded.Address())
	suite.True(createdAt.Equal(loaded.CreatedAt()))
	suite.Require().NotNil(loaded.DeliveryDate())
	suite.True(delivery.Equal(*loaded.DeliveryDate()))
	suite.Require().NotNil(loaded.Driver())
	suite.Equal(int64(42), *loaded.Driver())
	suite.Equal("XL", loaded.Products()[0].Size())
	suite.Equal(2, loaded.Products()[0].Quantity())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	loaded, err := suite.repository.Get(context.Background(), 999)

	suite.Nil(loaded)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_WritesScalarsOnly() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(1, 2)
	suite.Require().NoError(testOrder.AssignDriver(5))
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.ChangeStatus(order.Completed))
	testOrder.DetachDriver()
	suite.Require().NoError(testOrder.SetAddress("New street 5"))

	err := suite.repository.Update(ctx, testOrder)

	suite.Require().NoError(err)
	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Completed, loaded.Status())
	suite.Nil(loaded.Driver())
	suite.Equal("New street 5", loaded.Address())
	suite.Len(loaded.Products(), 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFound() {
	testOrder := suite.createTestOrder(1)
	suite.Require().NoError(testOrder.SetID(12345))

	err := suite.repository.Update(context.Background(), testOrder)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestRemove_DeletesOrderAndLineItems() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(1, 2)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(suite.repository.Remove(ctx, testOrder.ID()))

	suite.assertOrderCount(0)
	var items int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderProductDTO{}).Count(&items).Error)
	suite.Zero(items)

	err := suite.repository.Remove(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// createTestOrder creates an order with one line item per product ID.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(productIDs ...int64) *order.Order {
	items := make([]order.OrderProduct, 0, len(productIDs))
	for _, id := range productIDs {
		item, err := order.NewOrderProduct(id, 1, "M")
		suite.Require().NoError(err)
		items = append(items, item)
	}
	testOrder, err := order.NewOrder("Test Customer", "555", "Main St", items, time.Now(), nil)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
