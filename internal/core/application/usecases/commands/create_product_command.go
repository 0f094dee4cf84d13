package commands

import (
	"errors"

	"commerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
)

// CreateProductCommand adds a product to the catalogue. Field rules live in
// product.NewProduct; the command only carries the input.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	name        string
	description string
	category    string
	price       decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a product.
func NewCreateProductCommand(name, description, category string, price decimal.Decimal) CreateProductCommand {
	return CreateProductCommand{
		name:        name,
		description: description,
		category:    category,
		price:       price,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Name() string { return c.name }

func (c CreateProductCommand) Description() string { return c.description }

func (c CreateProductCommand) Category() string { return c.category }

func (c CreateProductCommand) Price() decimal.Decimal { return c.price }
