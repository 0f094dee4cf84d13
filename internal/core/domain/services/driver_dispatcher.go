package services

import (
	"errors"
	"fmt"

	"commerce/internal/core/domain/model/driver"
	"commerce/internal/core/domain/model/order"
)

// ErrDriverMismatch is returned when the driver passed to Complete is not the
// driver referenced by the order.
var ErrDriverMismatch = errors.New("driver is not assigned to the order")

// DriverDispatcher keeps the order/driver relationship consistent:
//
//	create:   driver FREE -> DELIVERY, order.driver = driver
//	complete: order -> COMPLETED, order.driver = nil, driver DELIVERY -> FREE
//
// It works on in-memory aggregates only. Callers persist the driver with a
// compare-and-set on the status it had before the call.
//
// Example usage:
//
//	dispatcher := services.NewDriverDispatcher()
//	if err := dispatcher.Dispatch(o, d); errors.Is(err, driver.ErrDriverIsBusy) {
//	    // the driver is on another delivery
//	}
type DriverDispatcher struct{}

// NewDriverDispatcher creates a new DriverDispatcher instance.
func NewDriverDispatcher() DriverDispatcher {
	return DriverDispatcher{}
}

// Dispatch assigns d to o and marks d as on delivery.
//
// Returns:
//   - driver.ErrDriverIsBusy if d is already on delivery
//   - a conflict error if o already has a driver or is completed
//
// Neither aggregate is modified on error.
func (DriverDispatcher) Dispatch(o *order.Order, d *driver.Driver) error {
	if err := errors.Join(o.Validate(), d.Validate()); err != nil {
		return err
	}

	if !d.IsFree() {
		return driver.ErrDriverIsBusy
	}

	if err := o.AssignDriver(d.ID()); err != nil {
		return err
	}

	return d.StartDelivery()
}

// Complete moves o to Completed, detaches its driver and frees d.
//
// d may be nil when the order has no driver or the driver row no longer
// exists; the reference is cleared either way. A driver that is already free
// is left untouched and released is false.
func (DriverDispatcher) Complete(o *order.Order, d *driver.Driver) (released bool, err error) {
	if err = o.Validate(); err != nil {
		return false, err
	}

	assigned := o.Driver()
	if d != nil {
		if err = d.Validate(); err != nil {
			return false, err
		}
		if assigned == nil || *assigned != d.ID() {
			return false, fmt.Errorf("%w: driver %d", ErrDriverMismatch, d.ID())
		}
	}

	if err = o.ChangeStatus(order.Completed); err != nil {
		return false, err
	}
	o.DetachDriver()

	if d == nil {
		return false, nil
	}

	if err = d.FinishDelivery(); err != nil {
		if errors.Is(err, driver.ErrDriverIsNotOnDelivery) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
