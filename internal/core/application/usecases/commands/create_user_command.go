package commands

import (
	"errors"

	"commerce/internal/core/domain/model/user"
	"commerce/internal/pkg/guard"
)

var (
	ErrCreateUserCommandIsNotConstructed = errors.New(
		"CreateUserCommand must be created via NewCreateUserCommand constructor",
	)
)

// CreateUserCommand registers a back-office user.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	firstName string
	lastName  string
	status    user.Status

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a command to add a user. An empty status
// means user.Regular; anything other than USER or ADMIN is rejected.
func NewCreateUserCommand(firstName, lastName, status string) (CreateUserCommand, error) {
	parsed, err := user.ParseStatus(status)
	if err != nil {
		return CreateUserCommand{}, err
	}

	return CreateUserCommand{
		firstName: firstName,
		lastName:  lastName,
		status:    parsed,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

func (c CreateUserCommand) FirstName() string { return c.firstName }

func (c CreateUserCommand) LastName() string { return c.lastName }

func (c CreateUserCommand) Status() user.Status { return c.status }
