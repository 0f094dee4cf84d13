package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"commerce/internal/core/domain/model/driver"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/services"
	"commerce/internal/pkg/errs"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrDriverNotFound  = errors.New("driver not found")
)

// CreateOrderCommandHandler registers new orders and claims the requested
// driver in the same transaction.
//
// Processing order:
//  1. resolve every product (ErrProductNotFound)
//  2. load the driver by full name (ErrDriverNotFound)
//  3. dispatch it through services.DriverDispatcher (driver.ErrDriverIsBusy)
//  4. persist FREE -> DELIVERY with a compare-and-set; a lost race is
//     reported as driver.ErrDriverIsBusy
//  5. insert the order with its line items and commit
//
// A failure at any step rolls everything back, so a failed creation never
// leaves a driver busy.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher services.DriverDispatcher
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewDriverDispatcher(),
		now:        time.Now,
	}
}

// Handle processes the order creation command and returns the persisted order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	items := cmd.Items()
	if err := h.resolveProducts(ctx, uow, items); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(cmd.FullName(), cmd.Phone(), cmd.Address(), items, h.now(), cmd.DeliveryDate())
	if err != nil {
		return nil, err
	}

	if cmd.Driver() != "" {
		if err = h.claimDriver(ctx, uow, o, cmd.Driver()); err != nil {
			return nil, err
		}
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

func (h *CreateOrderCommandHandler) resolveProducts(ctx context.Context, uow OrderUoW, items []order.OrderProduct) error {
	productRepo := uow.ProductRepository()
	seen := make(map[int64]struct{}, len(items))

	for _, item := range items {
		if _, ok := seen[item.ProductID()]; ok {
			continue
		}
		seen[item.ProductID()] = struct{}{}

		if _, err := productRepo.Get(ctx, item.ProductID()); err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return fmt.Errorf("%w: %w", ErrProductNotFound, err)
			}
			return err
		}
	}

	return nil
}

func (h *CreateOrderCommandHandler) claimDriver(ctx context.Context, uow OrderUoW, o *order.Order, fullName string) error {
	driverRepo := uow.DriverRepository()

	d, err := driverRepo.GetByFullName(ctx, fullName)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return fmt.Errorf("%w: %w", ErrDriverNotFound, err)
		}
		return err
	}

	expected := d.Status()
	if err = h.dispatcher.Dispatch(o, d); err != nil {
		return err
	}

	if err = driverRepo.CompareAndSetStatus(ctx, d, expected); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return fmt.Errorf("%w: %w", driver.ErrDriverIsBusy, err)
		}
		return err
	}

	return nil
}
