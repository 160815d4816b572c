package commands

import (
	"errors"

	"ordertrack/internal/core/application/access"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrDeleteProducerCommandIsNotConstructed = errors.New(
		"DeleteProducerCommand must be created via NewDeleteProducerCommand constructor",
	)
)

// DeleteProducerCommand represents the administrator removing a producer
// account.
type DeleteProducerCommand struct { //nolint:recvcheck //using for validation
	actor  access.Actor
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteProducerCommand creates a command with a validated user id.
func NewDeleteProducerCommand(actor access.Actor, userID kernel.UUID) (DeleteProducerCommand, error) {
	cmd := DeleteProducerCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setUserID(userID); err != nil {
		return DeleteProducerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteProducerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProducerCommandIsNotConstructed)
}

// Actor returns the caller deleting the account.
func (c DeleteProducerCommand) Actor() access.Actor {
	return c.actor
}

// UserID returns the identifier of the account to delete.
func (c DeleteProducerCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *DeleteProducerCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
