package order

import (
	"fmt"
	"strings"

	"commerce/internal/pkg/errs"
)

// OrderProduct is a line item of an Order. It is a value owned by its order:
// it has no identity of its own and is only created together with the order.
type OrderProduct struct {
	productID int64
	quantity  int
	size      string
}

// NewOrderProduct creates a line item for productID.
// The product ID and the quantity must be positive; the size is free-form.
func NewOrderProduct(productID int64, quantity int, size string) (OrderProduct, error) {
	if productID <= 0 {
		return OrderProduct{}, errs.NewValueIsInvalidErrorWithCause(
			"productId", fmt.Errorf("%d is not a valid product id", productID))
	}
	if quantity <= 0 {
		return OrderProduct{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	return OrderProduct{
		productID: productID,
		quantity:  quantity,
		size:      strings.TrimSpace(size),
	}, nil
}

// ProductID returns the referenced product.
func (p OrderProduct) ProductID() int64 {
	return p.productID
}

// Quantity returns the ordered quantity.
func (p OrderProduct) Quantity() int {
	return p.quantity
}

// Size returns the requested size attribute.
func (p OrderProduct) Size() string {
	return p.size
}
