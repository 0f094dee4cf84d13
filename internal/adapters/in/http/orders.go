package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/driver"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type orderItemRequest struct {
	ID       int64  `json:"id"`
	Quantity int    `json:"quantity"`
	Size     string `json:"size"`
}

type createOrderRequest struct {
	FullName     string             `json:"fullName"`
	Phone        string             `json:"phone"`
	Address      string             `json:"address"`
	Driver       string             `json:"driver"`
	DeliveryDate kernel.Timestamp   `json:"deliveryDate"`
	ProductIDs   []orderItemRequest `json:"productIDs"`
}

type updateOrderRequest struct {
	FullName     string           `json:"fullName"`
	Phone        string           `json:"phone"`
	Address      string           `json:"address"`
	Status       string           `json:"status"`
	CreatedAt    kernel.Timestamp `json:"createdAt"`
	DeliveryDate kernel.Timestamp `json:"deliveryDate"`
}

type orderItemResponse struct {
	ProductID int64  `json:"productId"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
}

type orderResponse struct {
	ID            int64               `json:"id"`
	FullName      string              `json:"fullName"`
	Phone         string              `json:"phone"`
	Address       string              `json:"address"`
	DriverID      *int64              `json:"driverId"`
	Driver        string              `json:"driver,omitempty"`
	Status        string              `json:"status"`
	CreatedAt     time.Time           `json:"createdAt"`
	DeliveryDate  *time.Time          `json:"deliveryDate"`
	FormattedDate string              `json:"formattedDate,omitempty"`
	OrderProducts []orderItemResponse `json:"orderProducts"`
}

func newOrderResponse(o *order.Order) orderResponse {
	items := o.Products()
	resp := orderResponse{
		ID:            o.ID(),
		FullName:      o.FullName(),
		Phone:         o.Phone(),
		Address:       o.Address(),
		DriverID:      o.Driver(),
		Status:        o.Status().String(),
		CreatedAt:     o.CreatedAt(),
		DeliveryDate:  o.DeliveryDate(),
		OrderProducts: make([]orderItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.OrderProducts = append(resp.OrderProducts, orderItemResponse{
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			Size:      item.Size(),
		})
	}
	return resp
}

// ListOrders handles GET /orders.
func (s *Server) ListOrders(c echo.Context) error {
	query, err := queries.NewListOrdersQuery(queries.OrderFilter{
		Status:   c.QueryParam("status"),
		Driver:   c.QueryParam("driver"),
		Phone:    c.QueryParam("phone"),
		FullName: c.QueryParam("fullName"),
		Address:  c.QueryParam("address"),
	}, pageParams(c))
	if err != nil {
		return softFail(c, err)
	}

	orders, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return softFail(c, err)
	}

	return ok(c, orders)
}

// GetOrder handles GET /orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, MsgOrderNotFound)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return fail(c, http.StatusBadRequest, MsgOrderNotFound)
	}

	details, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return fail(c, http.StatusBadRequest, MsgOrderNotFound)
		}
		s.logger.Error("get order failed", "order_id", id, "error", err)
		return fail(c, http.StatusInternalServerError, err.Error())
	}

	return ok(c, details)
}

// CreateOrder handles POST /orders/create.
func (s *Server) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, bindMessage(err))
	}

	items := make([]commands.CreateOrderItem, 0, len(req.ProductIDs))
	for _, item := range req.ProductIDs {
		items = append(items, commands.CreateOrderItem{
			ProductID: item.ID,
			Quantity:  item.Quantity,
			Size:      item.Size,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.FullName, req.Phone, req.Address, items, req.Driver, req.DeliveryDate.Ptr())
	if err != nil {
		return createOrderError(c, err)
	}

	created, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, driver.ErrDriverIsBusy) {
			s.metrics.DriverBusy()
		}
		s.logger.Warn("create order failed", "driver", cmd.Driver(), "error", err)
		return createOrderError(c, err)
	}
	s.metrics.OrderCreated()

	resp := newOrderResponse(created)
	resp.Driver = cmd.Driver()
	resp.FormattedDate = kernel.ShiftedISODate(created.CreatedAt())

	return ok(c, resp)
}

// UpdateOrder handles PUT /orders/:id. Every failure is reported with
// HTTP 200 and success=false.
func (s *Server) UpdateOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return softFail(c, err)
	}

	var req updateOrderRequest
	if err = c.Bind(&req); err != nil {
		return softFail(c, errors.New(bindMessage(err)))
	}

	cmd, err := commands.NewUpdateOrderCommand(id, commands.OrderPatch{
		FullName:     req.FullName,
		Phone:        req.Phone,
		Address:      req.Address,
		Status:       req.Status,
		CreatedAt:    req.CreatedAt.Ptr(),
		DeliveryDate: req.DeliveryDate.Ptr(),
	})
	if err != nil {
		return softFail(c, err)
	}

	updated, err := s.handlers.UpdateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return softFail(c, err)
	}

	resp := newOrderResponse(updated)
	resp.Driver = s.driverName(c, updated.Driver())

	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    resp,
		Message: MsgOrderUpdated,
	})
}

// driverName projects the assigned driver's name. The update is already
// committed, so a failed lookup only leaves the name out.
func (s *Server) driverName(c echo.Context, driverID *int64) string {
	if driverID == nil {
		return ""
	}
	query, err := queries.NewGetDriverQuery(*driverID)
	if err != nil {
		return ""
	}

	view, err := s.handlers.GetDriver.Handle(c.Request().Context(), query)
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			s.logger.Warn("driver lookup failed", "driver_id", *driverID, "error", err)
		}
		return ""
	}
	return view.FullName
}

// DeleteOrder handles DELETE /orders/:id.
func (s *Server) DeleteOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, MsgOrderNotExists)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return fail(c, http.StatusBadRequest, MsgOrderNotExists)
	}

	if err = s.handlers.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return fail(c, http.StatusBadRequest, MsgOrderNotExists)
		}
		s.logger.Error("delete order failed", "order_id", id, "error", err)
		return fail(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, Envelope{Success: true, Message: MsgOrderDeleted})
}

func pathID(c echo.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%q is not a number", raw))
	}
	return id, nil
}

func pageParams(c echo.Context) queries.Page {
	return queries.ParsePage(c.QueryParam("take"), c.QueryParam("skip"))
}

func bindMessage(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil {
			return "invalid request body: " + he.Internal.Error()
		}
		if m, ok := he.Message.(string); ok {
			return "invalid request body: " + m
		}
	}
	return "invalid request body: " + err.Error()
}
