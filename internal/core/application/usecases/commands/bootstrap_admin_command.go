package commands

import (
	"errors"
	"strings"

	"ordertrack/internal/core/domain/model/account"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrBootstrapAdminCommandIsNotConstructed = errors.New(
		"BootstrapAdminCommand must be created via NewBootstrapAdminCommand constructor",
	)
	ErrSecretKeyIsRequired = errs.NewValueIsRequiredError("secret key")
)

// BootstrapAdminCommand represents the unauthenticated request to create
// the administrator account. The caller proves entitlement with the
// shared secret; the handler compares it against the configured value.
type BootstrapAdminCommand struct { //nolint:recvcheck //using for validation
	fullName  string
	email     string
	password  string
	secretKey string

	guard guard.ConstructorGuard
}

// NewBootstrapAdminCommand creates a command with validated parameters.
func NewBootstrapAdminCommand(fullName, email, password, secretKey string) (BootstrapAdminCommand, error) {
	cmd := BootstrapAdminCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFullName(fullName),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setSecretKey(secretKey),
	); err != nil {
		return BootstrapAdminCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c BootstrapAdminCommand) Validate() error {
	return c.guard.Validate(ErrBootstrapAdminCommandIsNotConstructed)
}

// FullName returns the administrator's display name.
func (c BootstrapAdminCommand) FullName() string {
	return c.fullName
}

// Email returns the administrator's email.
func (c BootstrapAdminCommand) Email() string {
	return c.email
}

// Password returns the administrator's initial password.
func (c BootstrapAdminCommand) Password() string {
	return c.password
}

// SecretKey returns the shared secret presented by the caller.
func (c BootstrapAdminCommand) SecretKey() string {
	return c.secretKey
}

func (c *BootstrapAdminCommand) setFullName(fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return account.ErrFullNameIsRequired
	}

	c.fullName = fullName
	return nil
}

func (c *BootstrapAdminCommand) setEmail(email string) error {
	if email == "" {
		return account.ErrEmailIsRequired
	}
	if !strings.Contains(email, "@") {
		return account.ErrEmailIsInvalid
	}

	c.email = email
	return nil
}

func (c *BootstrapAdminCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}

func (c *BootstrapAdminCommand) setSecretKey(secretKey string) error {
	if secretKey == "" {
		return ErrSecretKeyIsRequired
	}

	c.secretKey = secretKey
	return nil
}
