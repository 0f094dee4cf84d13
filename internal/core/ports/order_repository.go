// Package ports defines the contracts between the order management core and
// its infrastructure: repositories, the unit of work and the image store.
package ports

import (
	"context"

	"commerce/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates
// together with their line items.
type OrderRepository interface {
	// Add persists a new order and its line items. The database identity is
	// assigned to the aggregate via SetID.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the scalar fields of an existing order. Line items are
	// never rewritten by Update.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its line items in insertion order.
	// Returns errs.ErrObjectNotFound if the order does not exist.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// Remove deletes an order and all of its line items.
	// Returns errs.ErrObjectNotFound if the order does not exist.
	Remove(ctx context.Context, id int64) error
}
