package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// OrderPatch lists the optional fields of an order update. Empty strings and
// nil pointers leave the stored value unchanged.
type OrderPatch struct {
	FullName     string
	Phone        string
	Address      string
	Status       string
	CreatedAt    *time.Time
	DeliveryDate *time.Time
}

// UpdateOrderCommand represents a partial update of an existing order.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      int64
	fullName     string
	phone        string
	address      string
	status       *order.Status
	createdAt    *time.Time
	deliveryDate *time.Time

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand validates the order ID and parses the status, if any.
func NewUpdateOrderCommand(orderID int64, patch OrderPatch) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		fullName:     strings.TrimSpace(patch.FullName),
		phone:        strings.TrimSpace(patch.Phone),
		address:      strings.TrimSpace(patch.Address),
		createdAt:    patch.CreatedAt,
		deliveryDate: patch.DeliveryDate,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(patch.Status),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() int64 { return c.orderID }

func (c UpdateOrderCommand) FullName() string { return c.fullName }

func (c UpdateOrderCommand) Phone() string { return c.phone }

func (c UpdateOrderCommand) Address() string { return c.address }

// Status returns the requested status, nil when the patch keeps it.
func (c UpdateOrderCommand) Status() *order.Status { return c.status }

func (c UpdateOrderCommand) CreatedAt() *time.Time { return c.createdAt }

func (c UpdateOrderCommand) DeliveryDate() *time.Time { return c.deliveryDate }

// Completes reports whether the patch moves the order to Completed.
func (c UpdateOrderCommand) Completes() bool {
	return c.status != nil && *c.status == order.Completed
}

func (c *UpdateOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid order id", orderID))
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setStatus(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	status, err := order.ParseStatus(raw)
	if err != nil {
		return err
	}
	c.status = &status
	return nil
}
