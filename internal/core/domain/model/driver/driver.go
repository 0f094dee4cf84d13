package driver

import (
	"errors"
	"fmt"
	"strings"

	"commerce/internal/pkg/errs"
)

var (
	// ErrDriverIsNotConstructed is returned when a Driver was not created through
	// NewDriver or RestoreDriver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

	// ErrDriverIsBusy is returned when a driver already on delivery is assigned again.
	ErrDriverIsBusy = errors.New("driver is busy")

	// ErrDriverIsNotOnDelivery is returned when a free driver is released.
	ErrDriverIsNotOnDelivery = errors.New("driver is not on delivery")
)

// Driver is a delivery agent. Drivers are seeded out of band; the order
// engine only moves them between Free and Delivery.
type Driver struct {
	id       int64
	fullName string
	phone    string
	status   Status

	isConstructed bool
}

// NewDriver creates a free driver. The ID is assigned by persistence.
func NewDriver(fullName, phone string) (*Driver, error) {
	d := &Driver{status: Free, isConstructed: true}

	if err := d.setFullName(fullName); err != nil {
		return nil, err
	}
	d.phone = strings.TrimSpace(phone)

	return d, nil
}

// RestoreDriver rebuilds a driver from persisted state.
func RestoreDriver(id int64, fullName, phone string, status Status) (*Driver, error) {
	d := &Driver{id: id, phone: strings.TrimSpace(phone), isConstructed: true}

	if err := errors.Join(
		d.setID(id),
		d.setFullName(fullName),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	d.status = status

	return d, nil
}

// Validate ensures the Driver instance was properly constructed.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

func (d *Driver) ID() int64 { return d.id }

func (d *Driver) FullName() string { return d.fullName }

func (d *Driver) Phone() string { return d.phone }

func (d *Driver) Status() Status { return d.status }

// IsFree reports whether the driver can take an order.
func (d *Driver) IsFree() bool {
	return d.status == Free
}

// StartDelivery moves the driver from Free to Delivery.
// Returns ErrDriverIsBusy if the driver is already on delivery.
func (d *Driver) StartDelivery() error {
	if d.status == Delivery {
		return ErrDriverIsBusy
	}
	d.status = Delivery
	return nil
}

// FinishDelivery moves the driver from Delivery back to Free.
// Returns ErrDriverIsNotOnDelivery if the driver is already free.
func (d *Driver) FinishDelivery() error {
	if d.status != Delivery {
		return ErrDriverIsNotOnDelivery
	}
	d.status = Free
	return nil
}

func (d *Driver) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid driver id", id))
	}
	d.id = id
	return nil
}

func (d *Driver) setFullName(fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	d.fullName = fullName
	return nil
}
