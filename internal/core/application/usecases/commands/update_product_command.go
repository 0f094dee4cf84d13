package commands

import (
	"errors"
	"fmt"

	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrUpdateProductCommandIsNotConstructed = errors.New(
		"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
	)
)

// ProductPatch lists the optional fields of a product update; nil keeps the
// stored value.
type ProductPatch struct {
	Name        *string
	Description *string
	Category    *string
	Price       *decimal.Decimal
}

// UpdateProductCommand represents a partial update of a catalogue product.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID int64
	patch     ProductPatch

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to patch the given product.
func NewUpdateProductCommand(productID int64, patch ProductPatch) (UpdateProductCommand, error) {
	if productID <= 0 {
		return UpdateProductCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"id", fmt.Errorf("%d is not a valid product id", productID))
	}

	return UpdateProductCommand{
		productID: productID,
		patch:     patch,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) ProductID() int64 { return c.productID }

func (c UpdateProductCommand) Patch() ProductPatch { return c.patch }
