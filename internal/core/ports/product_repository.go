package ports

import (
	"context"

	"commerce/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalogue products.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error
	Update(ctx context.Context, aggregate *product.Product) error

	// Get returns errs.ErrObjectNotFound if the product does not exist.
	Get(ctx context.Context, id int64) (*product.Product, error)
}
