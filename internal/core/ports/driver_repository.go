package ports

import (
	"context"

	"commerce/internal/core/domain/model/driver"
)

// DriverRepository defines the persistence contract for drivers. Drivers are
// seeded out of band, so there is no Add.
type DriverRepository interface {
	// Get retrieves a driver by identity.
	Get(ctx context.Context, id int64) (*driver.Driver, error)

	// GetByFullName retrieves a driver by the full name used as lookup key by
	// clients. Returns errs.ErrObjectNotFound if no driver has that name.
	GetByFullName(ctx context.Context, fullName string) (*driver.Driver, error)

	// CompareAndSetStatus writes the current status of d only if the stored
	// status still equals expected. It returns errs.ErrConflict when another
	// transaction changed the driver first.
	//
	// Example:
	//
	//	prev := d.Status()
	//	if err := d.StartDelivery(); err != nil {
	//	    return err
	//	}
	//	if err := repo.CompareAndSetStatus(ctx, d, prev); errors.Is(err, errs.ErrConflict) {
	//	    // lost the race for this driver
	//	}
	CompareAndSetStatus(ctx context.Context, d *driver.Driver, expected driver.Status) error

	// ReleaseIdle frees every driver in Delivery status that is not referenced
	// by any non-completed order and returns how many rows changed.
	ReleaseIdle(ctx context.Context) (int64, error)
}
