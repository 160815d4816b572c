package commands

import (
	"context"
	"fmt"
	"time"

	"ordertrack/internal/core/application/access"
	"ordertrack/internal/core/domain/model/account"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"
)

// CreateProducerCommandHandler creates a producer account through the
// identity provider's privileged API and stores the matching profile.
// Only administrators may call it.
type CreateProducerCommandHandler struct {
	identity   ports.IdentityProvider
	uowFactory ProfileUoWFactory
	policy     *access.Policy
}

// NewCreateProducerCommandHandler creates a handler for the
// administrator's user creation.
func NewCreateProducerCommandHandler(
	identity ports.IdentityProvider,
	uowFactory ProfileUoWFactory,
	policy *access.Policy,
) CreateProducerCommandHandler {
	return CreateProducerCommandHandler{
		identity:   identity,
		uowFactory: uowFactory,
		policy:     policy,
	}
}

func (h *CreateProducerCommandHandler) Handle(ctx context.Context, cmd CreateProducerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.Allow(cmd.Actor().Role, access.ResourceUsers, access.ActionCreate); err != nil {
		return err
	}

	user, err := h.identity.CreateUser(ctx, cmd.Email(), cmd.Password())
	if err != nil {
		return err
	}

	profile, err := account.NewProfile(user.ID, account.RoleProducer, cmd.FullName(), user.Email, time.Now().UTC())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return errs.NewPersistenceError("begin create producer", err)
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if err := uow.ProfileRepository().Add(ctx, profile); err != nil {
		return errs.NewPersistenceError(
			fmt.Sprintf("insert producer profile (orphaned identity %s)", user.ID), err)
	}

	if err := uow.Commit(ctx); err != nil {
		return errs.NewPersistenceError(
			fmt.Sprintf("commit create producer (orphaned identity %s)", user.ID), err)
	}

	return nil
}
