package commands

import (
	"context"
	"errors"
	"time"

	"commerce/internal/core/domain/model/product"
)

// UpdateProductCommandHandler applies product patches.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	now        func() time.Time
}

// NewUpdateProductCommandHandler creates a handler for product updates.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle loads the product, applies the patch and saves it.
// Returns errs.ErrObjectNotFound if the product does not exist.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ProductRepository()
	p, err := repo.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	patch := cmd.Patch()
	var errName, errPrice error
	if patch.Name != nil {
		errName = p.SetName(*patch.Name)
	}
	if patch.Description != nil {
		p.SetDescription(*patch.Description)
	}
	if patch.Category != nil {
		p.SetCategory(*patch.Category)
	}
	if patch.Price != nil {
		errPrice = p.SetPrice(*patch.Price)
	}
	if err = errors.Join(errName, errPrice); err != nil {
		return nil, err
	}
	p.Touch(h.now())

	if err = repo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
