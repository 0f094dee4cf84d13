package commands

import (
	"context"
)

// ReleaseIdleDriversCommandHandler repairs driver rows left in Delivery by
// deleted orders or legacy data.
type ReleaseIdleDriversCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewReleaseIdleDriversCommandHandler creates the reconciliation handler.
func NewReleaseIdleDriversCommandHandler(uowFactory DriverUoWFactory) ReleaseIdleDriversCommandHandler {
	return ReleaseIdleDriversCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns how many drivers were released.
func (h ReleaseIdleDriversCommandHandler) Handle(ctx context.Context, cmd ReleaseIdleDriversCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	released, err := uow.DriverRepository().ReleaseIdle(ctx)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return released, nil
}
