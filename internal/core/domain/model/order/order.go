package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"commerce/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrIdentityAlreadyAssigned is returned when SetID is called on an order that
	// already has a database identity.
	ErrIdentityAlreadyAssigned = errors.New("order identity is already assigned")
)

// Order represents a customer purchase request. It is the aggregate root that owns
// the line items and tracks the lifecycle from reception to completion.
//
// Order follows these invariants:
//   - fullName, phone and address are never blank
//   - at least one line item exists
//   - status is always a defined Status
//   - createdAt is set once at construction
//   - the identity is assigned by the persistence layer exactly once
type Order struct {
	// id is the database identity (0 until the order is persisted)
	id int64

	fullName string
	phone    string
	address  string

	// driverID references the assigned driver (nil if none)
	driverID *int64

	status Status

	createdAt    time.Time
	deliveryDate *time.Time

	products []OrderProduct

	isConstructed bool
}

// NewOrder creates a new order in Received status.
//
// Parameters:
//   - fullName, phone, address: customer details, must not be blank
//   - products: line items in the order they were requested, at least one
//   - createdAt: creation time, must not be zero
//   - deliveryDate: requested delivery time; nil defaults to createdAt
//
// Example:
//
//	item, _ := order.NewOrderProduct(1, 2, "M")
//	o, err := order.NewOrder("Anna Petrosyan", "+37455000000", "Yerevan, Abovyan 1",
//	    []order.OrderProduct{item}, time.Now(), nil)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	fullName, phone, address string,
	products []OrderProduct,
	createdAt time.Time,
	deliveryDate *time.Time,
) (*Order, error) {
	o := &Order{
		status:        Received,
		isConstructed: true,
	}

	if err := errors.Join(
		o.SetFullName(fullName),
		o.SetPhone(phone),
		o.SetAddress(address),
		o.setProducts(products),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	if deliveryDate != nil {
		o.RescheduleDelivery(*deliveryDate)
	} else {
		o.RescheduleDelivery(o.createdAt)
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persisted state. It applies the same
// validation as NewOrder except the line-item requirement, because list
// projections load orders without their items.
func RestoreOrder(
	id int64,
	fullName, phone, address string,
	driverID *int64,
	status Status,
	createdAt time.Time,
	deliveryDate *time.Time,
	products []OrderProduct,
) (*Order, error) {
	o := &Order{
		id:            id,
		status:        status,
		deliveryDate:  deliveryDate,
		products:      append([]OrderProduct(nil), products...),
		isConstructed: true,
	}

	if driverID != nil {
		d := *driverID
		o.driverID = &d
	}

	if err := errors.Join(
		o.SetFullName(fullName),
		o.SetPhone(phone),
		o.SetAddress(address),
		status.Validate(),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two persisted orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the database identity, 0 before the first save.
func (o *Order) ID() int64 {
	return o.id
}

// SetID assigns the identity generated by the database. It may be called once.
func (o *Order) SetID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid order id", id))
	}
	if o.id != 0 {
		return ErrIdentityAlreadyAssigned
	}
	o.id = id
	return nil
}

func (o *Order) FullName() string { return o.fullName }

func (o *Order) Phone() string { return o.phone }

func (o *Order) Address() string { return o.address }

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveryDate returns the requested delivery timestamp, nil if unset.
func (o *Order) DeliveryDate() *time.Time {
	if o.deliveryDate == nil {
		return nil
	}
	d := *o.deliveryDate
	return &d
}

// Driver returns the assigned driver's ID, nil if no driver is assigned.
func (o *Order) Driver() *int64 {
	if o.driverID == nil {
		return nil
	}
	d := *o.driverID
	return &d
}

// Products returns a copy of the line items in insertion order.
func (o *Order) Products() []OrderProduct {
	return append([]OrderProduct(nil), o.products...)
}

// AssignDriver attaches a driver to the order.
//
// Business rules:
//   - the driver ID must be positive
//   - a completed order cannot take a driver
//   - an order keeps its driver until completion, so reassignment is rejected
//
// Driver availability is not checked here; see services.DriverDispatcher.
func (o *Order) AssignDriver(driverID int64) error {
	if driverID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("driver", fmt.Errorf("%d is not a valid driver id", driverID))
	}
	if o.status.IsTerminal() {
		return errs.NewConflictErrorWithCause("driver", ErrOrderIsCompleted)
	}
	if o.driverID != nil {
		return errs.NewConflictErrorWithCause("driver", fmt.Errorf("order already has driver %d", *o.driverID))
	}

	o.driverID = &driverID
	return nil
}

// DetachDriver clears the driver reference and returns the previous driver ID.
func (o *Order) DetachDriver() *int64 {
	prev := o.driverID
	o.driverID = nil
	return prev
}

// ChangeStatus moves the order to next following the Status state machine.
// The order is left unchanged on error.
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// SetFullName replaces the customer name.
func (o *Order) SetFullName(fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	o.fullName = fullName
	return nil
}

// SetPhone replaces the customer phone.
func (o *Order) SetPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	o.phone = phone
	return nil
}

// SetAddress replaces the delivery address.
func (o *Order) SetAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

// RescheduleDelivery sets the requested delivery timestamp.
func (o *Order) RescheduleDelivery(at time.Time) {
	at = at.UTC()
	o.deliveryDate = &at
}

// Backdate overrides the creation timestamp. It exists for operators who
// correct orders entered late; regular flows never call it.
func (o *Order) Backdate(at time.Time) error {
	return o.setCreatedAt(at)
}

func (o *Order) setCreatedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = at.UTC()
	return nil
}

func (o *Order) setProducts(products []OrderProduct) error {
	if len(products) == 0 {
		return errs.NewValueIsRequiredError("productIDs")
	}
	for i, p := range products {
		if p.productID <= 0 || p.quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"productIDs", fmt.Errorf("line item %d was not created via NewOrderProduct", i))
		}
	}
	o.products = append([]OrderProduct(nil), products...)
	return nil
}
