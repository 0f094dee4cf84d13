// Package product provides the Product aggregate of the catalogue. Product
// images are not part of the aggregate: they live in the image store under
// the key returned by ImageKey.
package product

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"commerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned when a Product was not created through
// NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a sellable item.
type Product struct {
	id          int64
	name        string
	description string
	category    string
	price       decimal.Decimal
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewProduct creates a product. The name is required and the price must not be negative.
func NewProduct(name, description, category string, price decimal.Decimal, now time.Time) (*Product, error) {
	p := &Product{
		description:   strings.TrimSpace(description),
		category:      strings.TrimSpace(category),
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(p.SetName(name), p.SetPrice(price)); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a product from persisted state.
func RestoreProduct(
	id int64,
	name, description, category string,
	price decimal.Decimal,
	createdAt, updatedAt time.Time,
) (*Product, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid product id", id))
	}

	p, err := NewProduct(name, description, category, price, createdAt)
	if err != nil {
		return nil, err
	}
	p.id = id
	p.updatedAt = updatedAt.UTC()

	return p, nil
}

// ImageKey returns the image store key of the product with the given ID.
func ImageKey(id int64) string {
	return fmt.Sprintf("products/%d", id)
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() int64 { return p.id }
func (p *Product) Name() string { return p.name }
func (p *Product) Description() string { return p.description }
func (p *Product) Category() string { return p.category }
func (p *Product) Price() decimal.Decimal { return p.price }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }

// SetID assigns the identity generated by the database.
func (p *Product) SetID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid product id", id))
	}
	p.id = id
	return nil
}

func (p *Product) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) SetDescription(description string) {
	p.description = strings.TrimSpace(description)
}

func (p *Product) SetCategory(category string) {
	p.category = strings.TrimSpace(category)
}

func (p *Product) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsOutOfRangeError("price", price.String(), 0, "unbounded")
	}
	p.price = price
	return nil
}

// Touch records a modification time.
func (p *Product) Touch(now time.Time) {
	p.updatedAt = now.UTC()
}
