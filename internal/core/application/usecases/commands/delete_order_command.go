package commands

import (
	"errors"
	"fmt"

	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var (
	ErrDeleteOrderCommandIsNotConstructed = errors.New(
		"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
	)
)

// DeleteOrderCommand removes an order together with its line items.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete the order with the given ID.
func NewDeleteOrderCommand(orderID int64) (DeleteOrderCommand, error) {
	if orderID <= 0 {
		return DeleteOrderCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"id", fmt.Errorf("%d is not a valid order id", orderID))
	}

	return DeleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the order to delete.
func (c DeleteOrderCommand) OrderID() int64 {
	return c.orderID
}
