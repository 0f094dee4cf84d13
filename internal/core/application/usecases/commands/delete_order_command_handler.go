package commands

import (
	"context"
)

// DeleteOrderCommandHandler deletes orders. Drivers still assigned to a
// deleted order are released later by the reconciliation job.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the order and its line items in one transaction.
// Returns errs.ErrObjectNotFound if the order does not exist.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Remove(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
