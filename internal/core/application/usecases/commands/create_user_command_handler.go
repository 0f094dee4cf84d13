package commands

import (
	"context"
	"time"

	"commerce/internal/core/domain/model/user"
)

// CreateUserCommandHandler persists new users.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
	now        func() time.Time
}

// NewCreateUserCommandHandler creates a handler for user creation.
func NewCreateUserCommandHandler(uowFactory UserUoWFactory) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle validates and stores the user, returning it with its new ID.
func (h *CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	u, err := user.NewUser(cmd.FirstName(), cmd.LastName(), cmd.Status(), h.now())
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

	if err = uow.UserRepository().Add(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
