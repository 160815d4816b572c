package commands

import (
	"context"

	"ordertrack/internal/core/application/access"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"
)

// DeleteProducerCommandHandler removes a producer's identity account and
// profile row. The identity deletion goes first: the profile row, which
// backs the visible user list, is dropped only once the provider has
// confirmed the account is gone. A repeated delete fails at the provider
// without touching anything.
type DeleteProducerCommandHandler struct {
	identity   ports.IdentityProvider
	uowFactory ProfileUoWFactory
	policy     *access.Policy
}

// NewDeleteProducerCommandHandler creates a handler for the
// administrator's user deletion.
func NewDeleteProducerCommandHandler(
	identity ports.IdentityProvider,
	uowFactory ProfileUoWFactory,
	policy *access.Policy,
) DeleteProducerCommandHandler {
	return DeleteProducerCommandHandler{
		identity:   identity,
		uowFactory: uowFactory,
		policy:     policy,
	}
}

func (h *DeleteProducerCommandHandler) Handle(ctx context.Context, cmd DeleteProducerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.Allow(cmd.Actor().Role, access.ResourceUsers, access.ActionDelete); err != nil {
		return err
	}

	if err := h.identity.DeleteUser(ctx, cmd.UserID()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return errs.NewPersistenceError("begin delete producer", err)
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if err := uow.ProfileRepository().Delete(ctx, cmd.UserID()); err != nil {
		return errs.NewPersistenceError("delete producer profile", err)
	}

	if err := uow.Commit(ctx); err != nil {
		return errs.NewPersistenceError("commit delete producer", err)
	}

	return nil
}
