package commands

import (
	"context"
	"time"

	"commerce/internal/core/domain/model/product"
)

// CreateProductCommandHandler persists new catalogue products.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	now        func() time.Time
}

// NewCreateProductCommandHandler creates a handler for product creation.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle validates and stores the product, returning it with its new ID.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	p, err := product.NewProduct(cmd.Name(), cmd.Description(), cmd.Category(), cmd.Price(), h.now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
