package driverrepo

import (
	"context"
	"errors"
	"fmt"

	"commerce/internal/core/domain/model/driver"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves a driver by ID.
func (r *GormDriverRepository) Get(ctx context.Context, id int64) (*driver.Driver, error) {
	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByFullName retrieves a driver by its unique full name.
func (r *GormDriverRepository) GetByFullName(ctx context.Context, fullName string) (*driver.Driver, error) {
	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "full_name = ?", fullName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", fullName)
		}
		return nil, err
	}

	return toDomain(dto)
}

// CompareAndSetStatus issues
//
//	UPDATE drivers SET status = <current> WHERE id = ? AND status = <expected>
//
// Zero affected rows means the stored status moved on since d was loaded.
func (r *GormDriverRepository) CompareAndSetStatus(
	ctx context.Context,
	d *driver.Driver,
	expected driver.Status,
) error {
	if err := d.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("id = ? AND status = ?", d.ID(), expected.String()).
		Update("status", d.Status().String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictErrorWithCause("driver",
			fmt.Errorf("driver %d is no longer %s", d.ID(), expected))
	}

	r.tracker.TrackAggregate(d.ID(), d)
	return nil
}

// ReleaseIdle frees drivers stuck in Delivery without an in-flight order.
func (r *GormDriverRepository) ReleaseIdle(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("status = ?", driver.Delivery.String()).
		Where(`NOT EXISTS (
			SELECT 1 FROM orders
			WHERE orders.driver_id = drivers.id AND orders.status <> ?
		)`, order.Completed.String()).
		Update("status", driver.Free.String())
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
