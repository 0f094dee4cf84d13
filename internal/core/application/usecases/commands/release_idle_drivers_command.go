package commands

import (
	"errors"

	"commerce/internal/pkg/guard"
)

var (
	ErrReleaseIdleDriversCommandIsNotConstructed = errors.New(
		"ReleaseIdleDriversCommand must be created via NewReleaseIdleDriversCommand constructor",
	)
)

// ReleaseIdleDriversCommand frees drivers stuck in Delivery without an
// in-flight order. It has no parameters and is issued by the scheduler.
type ReleaseIdleDriversCommand struct {
	guard guard.ConstructorGuard
}

// NewReleaseIdleDriversCommand creates the reconciliation command.
func NewReleaseIdleDriversCommand() ReleaseIdleDriversCommand {
	return ReleaseIdleDriversCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ReleaseIdleDriversCommand) Validate() error {
	return c.guard.Validate(ErrReleaseIdleDriversCommandIsNotConstructed)
}
