package commands

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"ordertrack/internal/core/domain/model/account"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"
)

// ErrBootstrapNotConfigured is returned when no shared secret is set on
// the server. The transport maps it to an internal error, distinct from
// the rejection a caller gets for presenting a wrong secret.
var ErrBootstrapNotConfigured = errors.New("admin bootstrap secret is not configured")

// BootstrapAdminCommandHandler creates the administrator account. The
// endpoint is unauthenticated, so the shared secret comparison is the
// only gate; it runs in constant time.
type BootstrapAdminCommandHandler struct {
	identity   ports.IdentityProvider
	uowFactory ProfileUoWFactory
	secretKey  string
}

// NewBootstrapAdminCommandHandler creates a handler with the configured
// shared secret. An empty secret disables the endpoint.
func NewBootstrapAdminCommandHandler(
	identity ports.IdentityProvider,
	uowFactory ProfileUoWFactory,
	secretKey string,
) BootstrapAdminCommandHandler {
	return BootstrapAdminCommandHandler{
		identity:   identity,
		uowFactory: uowFactory,
		secretKey:  secretKey,
	}
}

// Handle creates the administrator's identity account and profile and
// returns the new user id.
func (h *BootstrapAdminCommandHandler) Handle(
	ctx context.Context, cmd BootstrapAdminCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	if h.secretKey == "" {
		return kernel.UUID{}, ErrBootstrapNotConfigured
	}

	if subtle.ConstantTimeCompare([]byte(cmd.SecretKey()), []byte(h.secretKey)) != 1 {
		return kernel.UUID{}, errs.NewBootstrapRejectedError("invalid secret key")
	}

	user, err := h.identity.CreateUser(ctx, cmd.Email(), cmd.Password())
	if err != nil {
		return kernel.UUID{}, err
	}

	profile, err := account.NewProfile(user.ID, account.RoleAdmin, cmd.FullName(), user.Email, time.Now().UTC())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, errs.NewPersistenceError("begin bootstrap admin", err)
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if err := uow.ProfileRepository().Add(ctx, profile); err != nil {
		return kernel.UUID{}, errs.NewPersistenceError(
			fmt.Sprintf("insert admin profile (orphaned identity %s)", user.ID), err)
	}

	if err := uow.Commit(ctx); err != nil {
		return kernel.UUID{}, errs.NewPersistenceError(
			fmt.Sprintf("commit bootstrap admin (orphaned identity %s)", user.ID), err)
	}

	return user.ID, nil
}
