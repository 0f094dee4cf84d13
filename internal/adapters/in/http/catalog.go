package http

import (
	"net/http"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type createProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
}

type updateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
}

func newProductResponse(p *product.Product) queries.ProductView {
	return queries.ProductView{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Category:    p.Category(),
		Price:       p.Price(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

type createUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Status    string `json:"status"`
}

func newUserResponse(u *user.User) queries.UserView {
	return queries.UserView{
		ID:        u.ID(),
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
		Status:    string(u.Status()),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

// ListProducts handles GET /products.
func (s *Server) ListProducts(c echo.Context) error {
	query := queries.NewListProductsQuery(queries.ProductFilter{
		Category: c.QueryParam("category"),
		Name:     c.QueryParam("name"),
	}, pageParams(c))

	products, err := s.handlers.ListProducts.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, products)
}

// GetProduct handles GET /products/:id.
func (s *Server) GetProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return respondError(c, err)
	}

	view, err := s.handlers.GetProduct.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, view)
}

// CreateProduct handles POST /products/create.
func (s *Server) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, bindMessage(err))
	}

	cmd := commands.NewCreateProductCommand(req.Name, req.Description, req.Category, req.Price)

	created, err := s.handlers.CreateProduct.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, newProductResponse(created))
}

// UpdateProduct handles PUT /products/:id.
func (s *Server) UpdateProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req updateProductRequest
	if err = c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, bindMessage(err))
	}

	cmd, err := commands.NewUpdateProductCommand(id, commands.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
	})
	if err != nil {
		return respondError(c, err)
	}

	updated, err := s.handlers.UpdateProduct.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, newProductResponse(updated))
}

// ListCustomers handles GET /customers.
func (s *Server) ListCustomers(c echo.Context) error {
	customers, err := s.handlers.ListCustomers.Handle(
		c.Request().Context(), queries.NewListCustomersQuery(pageParams(c)))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, customers)
}

// GetCustomer handles GET /customers/:phone.
func (s *Server) GetCustomer(c echo.Context) error {
	query, err := queries.NewGetCustomerQuery(c.Param("phone"))
	if err != nil {
		return respondError(c, err)
	}

	customer, err := s.handlers.GetCustomer.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, customer)
}

// ListUsers handles GET /users.
func (s *Server) ListUsers(c echo.Context) error {
	users, err := s.handlers.ListUsers.Handle(c.Request().Context(), queries.NewListUsersQuery(pageParams(c)))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, users)
}

// GetUser handles GET /users/:id.
func (s *Server) GetUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetUserQuery(id)
	if err != nil {
		return respondError(c, err)
	}

	view, err := s.handlers.GetUser.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, view)
}

// CreateUser handles POST /users/create.
func (s *Server) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, bindMessage(err))
	}

	cmd, err := commands.NewCreateUserCommand(req.FirstName, req.LastName, req.Status)
	if err != nil {
		return respondError(c, err)
	}

	created, err := s.handlers.CreateUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, newUserResponse(created))
}

// ListDrivers handles GET /drivers.
func (s *Server) ListDrivers(c echo.Context) error {
	drivers, err := s.handlers.ListDrivers.Handle(c.Request().Context(), queries.NewListDriversQuery())
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, drivers)
}

// GetDriver handles GET /drivers/:id.
func (s *Server) GetDriver(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}
	query, err := queries.NewGetDriverQuery(id)
	if err != nil {
		return respondError(c, err)
	}

	view, err := s.handlers.GetDriver.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, view)
}
