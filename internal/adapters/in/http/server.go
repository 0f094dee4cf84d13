package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/core/domain/model/user"
	"commerce/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Handler is implemented by every command and query handler the server
// dispatches to.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// DeleteOrderHandler is the only use case without a result.
type DeleteOrderHandler interface {
	Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
}

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	// Command handlers
	CreateOrder   Handler[commands.CreateOrderCommand, *order.Order]
	UpdateOrder   Handler[commands.UpdateOrderCommand, *order.Order]
	DeleteOrder   DeleteOrderHandler
	CreateProduct Handler[commands.CreateProductCommand, *product.Product]
	UpdateProduct Handler[commands.UpdateProductCommand, *product.Product]
	CreateUser    Handler[commands.CreateUserCommand, *user.User]

	// Query handlers
	ListOrders    Handler[queries.ListOrdersQuery, []queries.OrderListItem]
	GetOrder      Handler[queries.GetOrderQuery, *queries.OrderDetails]
	ListProducts  Handler[queries.ListProductsQuery, []queries.ProductView]
	GetProduct    Handler[queries.GetProductQuery, *queries.ProductView]
	ListCustomers Handler[queries.ListCustomersQuery, []queries.CustomerView]
	GetCustomer   Handler[queries.GetCustomerQuery, *queries.CustomerDetails]
	ListUsers     Handler[queries.ListUsersQuery, []queries.UserView]
	GetUser       Handler[queries.GetUserQuery, *queries.UserView]
	ListDrivers   Handler[queries.ListDriversQuery, []queries.DriverView]
	GetDriver     Handler[queries.GetDriverQuery, *queries.DriverView]
}

// Server translates HTTP requests into use case calls and use case results
// into JSON envelopes.
type Server struct {
	handlers     Handlers
	metrics      *metrics.Metrics
	logger       *slog.Logger
	allowOrigins []string
}

// Option configures a Server.
type Option func(*Server)

// WithAllowOrigins restricts the origins browsers may call the API from.
// Without it every origin is allowed.
func WithAllowOrigins(origins ...string) Option {
	return func(s *Server) {
		if len(origins) > 0 {
			s.allowOrigins = origins
		}
	}
}

// NewServer creates a server for the given handlers. metrics may be nil.
func NewServer(handlers Handlers, m *metrics.Metrics, logger *slog.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		handlers:     handlers,
		metrics:      m,
		logger:       logger.With("component", "http"),
		allowOrigins: []string{"*"},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register installs middleware and routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.HTTPErrorHandler = s.errorHandler

	e.Use(requestID())
	e.Use(s.cors())
	e.Use(s.requestLogger())
	e.Use(s.observe())

	e.GET("/health", s.Health)
	if s.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))
	}

	orders := e.Group("/orders")
	orders.GET("", s.ListOrders)
	orders.POST("/create", s.CreateOrder)
	orders.GET("/:id", s.GetOrder)
	orders.PUT("/:id", s.UpdateOrder)
	orders.DELETE("/:id", s.DeleteOrder)

	products := e.Group("/products")
	products.GET("", s.ListProducts)
	products.POST("/create", s.CreateProduct)
	products.GET("/:id", s.GetProduct)
	products.PUT("/:id", s.UpdateProduct)

	customers := e.Group("/customers")
	customers.GET("", s.ListCustomers)
	customers.GET("/:phone", s.GetCustomer)

	users := e.Group("/users")
	users.GET("", s.ListUsers)
	users.POST("/create", s.CreateUser)
	users.GET("/:id", s.GetUser)

	e.GET("/drivers", s.ListDrivers)
	e.GET("/drivers/:id", s.GetDriver)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// errorHandler renders echo's own errors (unknown route, bad method) in the
// response envelope.
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(status)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		message = http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok {
			message = m
		}
	} else {
		s.logger.Error("unhandled error", "error", err, "path", c.Path())
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = fail(c, status, message)
	}
	if err != nil {
		s.logger.Error("failed to write error response", "error", err)
	}
}
