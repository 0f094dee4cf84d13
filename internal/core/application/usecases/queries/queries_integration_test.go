package queries_test

import (
	"context"
	"testing"
	"time"

	adapterpg "commerce/internal/adapters/out/postgres"
	"commerce/internal/adapters/out/postgres/driverrepo"
	"commerce/internal/adapters/out/postgres/orderrepo"
	"commerce/internal/adapters/out/postgres/productrepo"
	"commerce/internal/adapters/out/postgres/userrepo"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ReadModelTestSuite runs the query handlers against a real PostgreSQL
// schema created by AutoMigrate.
type ReadModelTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	base      time.Time
}

func (suite *ReadModelTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(adapterpg.AutoMigrate(db))

	suite.base = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
}

func (suite *ReadModelTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ReadModelTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE order_products, orders, products, drivers, users RESTART IDENTITY",
	).Error)
}

func (suite *ReadModelTestSuite) seedProducts() {
	products := []productrepo.ProductDTO{
		{Name: "Linen shirt", Category: "tops", Price: decimal.RequireFromString("19.90"), CreatedAt: suite.base, UpdatedAt: suite.base},
		{Name: "Wool hat", Category: "hats", Price: decimal.RequireFromString("7.50"), CreatedAt: suite.base.Add(time.Hour), UpdatedAt: suite.base},
		{Name: "Cotton SHIRT", Category: "tops", Price: decimal.RequireFromString("12.00"), CreatedAt: suite.base.Add(2 * time.Hour), UpdatedAt: suite.base},
	}
	suite.Require().NoError(suite.db.Create(&products).Error)
}

func (suite *ReadModelTestSuite) seedOrder(phone, name string, createdAt time.Time) {
	o := orderrepo.OrderDTO{
		FullName:  name,
		Phone:     phone,
		Address:   "Yerevan",
		Status:    "RECEIVED",
		CreatedAt: createdAt,
	}
	suite.Require().NoError(suite.db.Create(&o).Error)
}

func (suite *ReadModelTestSuite) TestListProducts_NewestFirstWithFilters() {
	suite.seedProducts()
	handler := queries.NewListProductsQueryHandler(suite.db)

	all, err := handler.Handle(suite.T().Context(), queries.NewListProductsQuery(queries.ProductFilter{}, queries.DefaultPage()))
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal("Cotton SHIRT", all[0].Name)
	suite.Equal("Linen shirt", all[2].Name)
	suite.True(decimal.RequireFromString("19.90").Equal(all[2].Price))

	shirts, err := handler.Handle(suite.T().Context(), queries.NewListProductsQuery(
		queries.ProductFilter{Category: "tops", Name: "shirt"}, queries.Page{Take: 1, Skip: 1}))
	suite.Require().NoError(err)
	suite.Require().Len(shirts, 1)
	suite.Equal("Linen shirt", shirts[0].Name)
}

func (suite *ReadModelTestSuite) TestGetProduct_AttachesImages() {
	suite.seedProducts()
	images := &MockImageStore{}
	images.On("GetImageURLs", mock.Anything, "products/2").Return([]string{"https://img/hat.jpg"}, nil)
	handler := queries.NewGetProductQueryHandler(suite.db, images)

	query, err := queries.NewGetProductQuery(2)
	suite.Require().NoError(err)

	view, err := handler.Handle(suite.T().Context(), query)

	suite.Require().NoError(err)
	suite.Equal("Wool hat", view.Name)
	suite.Equal([]string{"https://img/hat.jpg"}, view.Images)
}

func (suite *ReadModelTestSuite) TestGetProduct_NotFound() {
	handler := queries.NewGetProductQueryHandler(suite.db, &MockImageStore{})

	query, err := queries.NewGetProductQuery(404)
	suite.Require().NoError(err)

	_, err = handler.Handle(suite.T().Context(), query)

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ReadModelTestSuite) TestCustomers_AggregateByPhone() {
	suite.seedOrder("555", "Anna", suite.base)
	suite.seedOrder("555", "Anna Petrosyan", suite.base.Add(48*time.Hour))
	suite.seedOrder("777", "Bob", suite.base.Add(24*time.Hour))

	list, err := queries.NewListCustomersQueryHandler(suite.db).
		Handle(suite.T().Context(), queries.NewListCustomersQuery(queries.DefaultPage()))
	suite.Require().NoError(err)
	suite.Require().Len(list, 2)
	suite.Equal("555", list[0].Phone)
	suite.Equal("Anna Petrosyan", list[0].FullName)
	suite.Equal(int64(2), list[0].OrdersCount)
	suite.Equal("777", list[1].Phone)

	query, err := queries.NewGetCustomerQuery("555")
	suite.Require().NoError(err)

	details, err := queries.NewGetCustomerQueryHandler(suite.db).Handle(suite.T().Context(), query)
	suite.Require().NoError(err)
	suite.Require().Len(details.Orders, 2)
	suite.Equal("Anna Petrosyan", details.Orders[0].FullName)
}

func (suite *ReadModelTestSuite) TestUsers_ListAndGet() {
	users := []userrepo.UserDTO{
		{FirstName: "Ani", LastName: "Sargsyan", Status: "ADMIN", CreatedAt: suite.base, UpdatedAt: suite.base},
		{FirstName: "Tigran", LastName: "Hakobyan", Status: "USER", CreatedAt: suite.base.Add(time.Minute), UpdatedAt: suite.base},
	}
	suite.Require().NoError(suite.db.Create(&users).Error)

	list, err := queries.NewListUsersQueryHandler(suite.db).
		Handle(suite.T().Context(), queries.NewListUsersQuery(queries.DefaultPage()))
	suite.Require().NoError(err)
	suite.Require().Len(list, 2)
	suite.Equal("Tigran", list[0].FirstName)

	query, err := queries.NewGetUserQuery(users[0].ID)
	suite.Require().NoError(err)

	user, err := queries.NewGetUserQueryHandler(suite.db).Handle(suite.T().Context(), query)
	suite.Require().NoError(err)
	suite.Equal("ADMIN", user.Status)

	missing, err := queries.NewGetUserQuery(999)
	suite.Require().NoError(err)
	_, err = queries.NewGetUserQueryHandler(suite.db).Handle(suite.T().Context(), missing)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ReadModelTestSuite) TestDrivers_SortedByName() {
	drivers := []driverrepo.DriverDTO{
		{FullName: "Vardan", Status: "DELIVERY"},
		{FullName: "Aram", Status: "FREE"},
	}
	suite.Require().NoError(suite.db.Create(&drivers).Error)

	list, err := queries.NewListDriversQueryHandler(suite.db).
		Handle(suite.T().Context(), queries.NewListDriversQuery())

	suite.Require().NoError(err)
	suite.Require().Len(list, 2)
	suite.Equal(queries.DriverView{ID: drivers[1].ID, FullName: "Aram", Status: "FREE"}, list[0])
	suite.Equal("DELIVERY", list[1].Status)

	query, err := queries.NewGetDriverQuery(drivers[0].ID)
	suite.Require().NoError(err)
	one, err := queries.NewGetDriverQueryHandler(suite.db).Handle(suite.T().Context(), query)
	suite.Require().NoError(err)
	suite.Equal("Vardan", one.FullName)

	missing, err := queries.NewGetDriverQuery(drivers[1].ID + 100)
	suite.Require().NoError(err)
	_, err = queries.NewGetDriverQueryHandler(suite.db).Handle(suite.T().Context(), missing)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestReadModelTestSuite(t *testing.T) {
	suite.Run(t, new(ReadModelTestSuite))
}
