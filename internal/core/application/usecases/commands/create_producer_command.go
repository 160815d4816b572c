package commands

import (
	"errors"
	"strings"

	"ordertrack/internal/core/application/access"
	"ordertrack/internal/core/domain/model/account"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrCreateProducerCommandIsNotConstructed = errors.New(
		"CreateProducerCommand must be created via NewCreateProducerCommand constructor",
	)
)

// CreateProducerCommand represents the administrator creating a producer
// account on someone's behalf.
type CreateProducerCommand struct { //nolint:recvcheck //using for validation
	actor    access.Actor
	fullName string
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewCreateProducerCommand creates a command with validated parameters.
func NewCreateProducerCommand(
	actor access.Actor,
	fullName, email, password string,
) (CreateProducerCommand, error) {
	cmd := CreateProducerCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFullName(fullName),
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return CreateProducerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProducerCommand) Validate() error {
	return c.guard.Validate(ErrCreateProducerCommandIsNotConstructed)
}

// Actor returns the caller creating the account.
func (c CreateProducerCommand) Actor() access.Actor {
	return c.actor
}

// FullName returns the display name for the new profile.
func (c CreateProducerCommand) FullName() string {
	return c.fullName
}

// Email returns the new account's email.
func (c CreateProducerCommand) Email() string {
	return c.email
}

// Password returns the new account's initial password.
func (c CreateProducerCommand) Password() string {
	return c.password
}

func (c *CreateProducerCommand) setFullName(fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return account.ErrFullNameIsRequired
	}

	c.fullName = fullName
	return nil
}

func (c *CreateProducerCommand) setEmail(email string) error {
	if email == "" {
		return account.ErrEmailIsRequired
	}
	if !strings.Contains(email, "@") {
		return account.ErrEmailIsInvalid
	}

	c.email = email
	return nil
}

func (c *CreateProducerCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}
