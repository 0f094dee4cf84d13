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
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderItem is one requested line item.
type CreateOrderItem struct {
	ProductID int64
	Quantity  int
	Size      string
}

// CreateOrderCommand represents a request to register a new customer order.
// All input validation happens in the constructor, before any I/O.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Anna", "+37455000000", "Abovyan 1",
//	    []CreateOrderItem{{ProductID: 1, Quantity: 2, Size: "M"}}, "Aram Petrosyan", nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	fullName     string
	phone        string
	address      string
	items        []order.OrderProduct
	driver       string
	deliveryDate *time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// fullName, phone and address are trimmed and must not be empty. At least one
// item is required and every item needs a positive product ID and quantity.
// driver is the optional driver full name; deliveryDate is optional too.
func NewCreateOrderCommand(
	fullName, phone, address string,
	items []CreateOrderItem,
	driver string,
	deliveryDate *time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		driver:       strings.TrimSpace(driver),
		deliveryDate: deliveryDate,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFullName(fullName),
		cmd.setPhone(phone),
		cmd.setAddress(address),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) FullName() string { return c.fullName }

func (c CreateOrderCommand) Phone() string { return c.phone }

func (c CreateOrderCommand) Address() string { return c.address }

// Items returns the validated line items in request order.
func (c CreateOrderCommand) Items() []order.OrderProduct {
	return append([]order.OrderProduct(nil), c.items...)
}

// Driver returns the requested driver's full name, empty if none.
func (c CreateOrderCommand) Driver() string {
	return c.driver
}

// DeliveryDate returns the requested delivery time, nil if not supplied.
func (c CreateOrderCommand) DeliveryDate() *time.Time {
	return c.deliveryDate
}

func (c *CreateOrderCommand) setFullName(fullName string) error {
	c.fullName = strings.TrimSpace(fullName)
	if c.fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	return nil
}

func (c *CreateOrderCommand) setPhone(phone string) error {
	c.phone = strings.TrimSpace(phone)
	if c.phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	c.address = strings.TrimSpace(address)
	if c.address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("productIDs")
	}

	c.items = make([]order.OrderProduct, 0, len(items))
	for i, item := range items {
		p, err := order.NewOrderProduct(item.ProductID, item.Quantity, item.Size)
		if err != nil {
			return fmt.Errorf("productIDs[%d]: %w", i, err)
		}
		c.items = append(c.items, p)
	}

	return nil
}
