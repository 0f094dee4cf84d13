package commands

import (
	"context"
	"errors"

	"commerce/internal/core/domain/model/driver"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/services"
	"commerce/internal/pkg/errs"
)

// UpdateOrderCommandHandler applies order patches. Completing an order also
// releases its driver in the same transaction.
//
// Example:
//
//	cmd, _ := NewUpdateOrderCommand(42, OrderPatch{Status: "COMPLETED"})
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    // the order was already completed
//	}
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher services.DriverDispatcher
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewDriverDispatcher(),
	}
}

// Handle loads the order, applies the status transition and the field
// patches, persists the scalars and returns the saved order.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	switch {
	case cmd.Completes():
		if err = h.complete(ctx, uow, o); err != nil {
			return nil, err
		}
	case cmd.Status() != nil:
		if err = o.ChangeStatus(*cmd.Status()); err != nil {
			return nil, err
		}
	}

	if err = applyPatch(o, cmd); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// complete moves o to Completed and frees its driver. A driver row that is
// gone, already free, or freed concurrently is left as it is.
func (h *UpdateOrderCommandHandler) complete(ctx context.Context, uow OrderUoW, o *order.Order) error {
	var (
		d          *driver.Driver
		driverRepo = uow.DriverRepository()
	)

	if id := o.Driver(); id != nil {
		loaded, err := driverRepo.Get(ctx, *id)
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
		case err != nil:
			return err
		default:
			d = loaded
		}
	}

	released, err := h.dispatcher.Complete(o, d)
	if err != nil {
		return err
	}
	if !released {
		return nil
	}

	err = driverRepo.CompareAndSetStatus(ctx, d, driver.Delivery)
	if err != nil && !errors.Is(err, errs.ErrConflict) {
		return err
	}

	return nil
}

func applyPatch(o *order.Order, cmd UpdateOrderCommand) error {
	var errFullName, errPhone, errAddress, errCreatedAt error

	if cmd.FullName() != "" {
		errFullName = o.SetFullName(cmd.FullName())
	}
	if cmd.Phone() != "" {
		errPhone = o.SetPhone(cmd.Phone())
	}
	if cmd.Address() != "" {
		errAddress = o.SetAddress(cmd.Address())
	}
	if cmd.CreatedAt() != nil {
		errCreatedAt = o.Backdate(*cmd.CreatedAt())
	}
	if cmd.DeliveryDate() != nil {
		o.RescheduleDelivery(*cmd.DeliveryDate())
	}

	return errors.Join(errFullName, errPhone, errAddress, errCreatedAt)
}
