package commands

import (
	"errors"
	"strings"

	"ordertrack/internal/core/domain/model/account"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrRegisterProducerCommandIsNotConstructed = errors.New(
		"RegisterProducerCommand must be created via NewRegisterProducerCommand constructor",
	)
	ErrPasswordIsRequired = errs.NewValueIsRequiredError("password")
)

// RegisterProducerCommand represents a self-service signup. The new
// account always gets the producer role; administrators are created only
// through the bootstrap path.
type RegisterProducerCommand struct { //nolint:recvcheck //using for validation
	fullName string
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewRegisterProducerCommand creates a signup command with validated
// parameters.
func NewRegisterProducerCommand(fullName, email, password string) (RegisterProducerCommand, error) {
	cmd := RegisterProducerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFullName(fullName),
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return RegisterProducerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterProducerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterProducerCommandIsNotConstructed)
}

// FullName returns the display name for the new profile.
func (c RegisterProducerCommand) FullName() string {
	return c.fullName
}

// Email returns the signup email.
func (c RegisterProducerCommand) Email() string {
	return c.email
}

// Password returns the signup password. It is passed to the identity
// provider and never persisted by the application.
func (c RegisterProducerCommand) Password() string {
	return c.password
}

func (c *RegisterProducerCommand) setFullName(fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return account.ErrFullNameIsRequired
	}

	c.fullName = fullName
	return nil
}

func (c *RegisterProducerCommand) setEmail(email string) error {
	if email == "" {
		return account.ErrEmailIsRequired
	}
	if !strings.Contains(email, "@") {
		return account.ErrEmailIsInvalid
	}

	c.email = email
	return nil
}

func (c *RegisterProducerCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}
