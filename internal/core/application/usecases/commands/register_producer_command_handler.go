package commands

import (
	"context"
	"fmt"
	"time"

	"ordertrack/internal/core/domain/model/account"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"
)

// RegisterProducerCommandHandler signs a new producer up with the
// identity provider and stores the matching profile row.
//
// The two writes are not atomic: if the profile insert fails after the
// identity account was created, the account is left behind and the
// operation is reported failed. The error carries the orphaned identity
// id so an operator can clean up.
type RegisterProducerCommandHandler struct {
	identity   ports.IdentityProvider
	uowFactory ProfileUoWFactory
}

// NewRegisterProducerCommandHandler creates a handler for self-service
// signup.
func NewRegisterProducerCommandHandler(
	identity ports.IdentityProvider,
	uowFactory ProfileUoWFactory,
) RegisterProducerCommandHandler {
	return RegisterProducerCommandHandler{
		identity:   identity,
		uowFactory: uowFactory,
	}
}

func (h *RegisterProducerCommandHandler) Handle(ctx context.Context, cmd RegisterProducerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	user, err := h.identity.SignUp(ctx, cmd.Email(), cmd.Password())
	if err != nil {
		return err
	}

	profile, err := account.NewProfile(user.ID, account.RoleProducer, cmd.FullName(), user.Email, time.Now().UTC())
	if err != nil {
		return err
	}

	if err := h.storeProfile(ctx, profile); err != nil {
		return errs.NewPersistenceError(
			fmt.Sprintf("insert producer profile (orphaned identity %s)", user.ID), err)
	}

	return nil
}

func (h *RegisterProducerCommandHandler) storeProfile(ctx context.Context, profile *account.Profile) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if err := uow.ProfileRepository().Add(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
