package queries

import (
	"errors"
	"fmt"

	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var (
	ErrGetProductQueryIsNotConstructed = errors.New(
		"GetProductQuery must be created via NewGetProductQuery constructor",
	)
)

// GetProductQuery retrieves one product with its image URLs.
type GetProductQuery struct {
	productID int64

	guard guard.ConstructorGuard
}

func NewGetProductQuery(productID int64) (GetProductQuery, error) {
	if productID <= 0 {
		return GetProductQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"id", fmt.Errorf("%d is not a valid product id", productID))
	}
	return GetProductQuery{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

func (q GetProductQuery) ProductID() int64 { return q.productID }
