package commands_test

import (
	"errors"
	"testing"

	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/domain/model/account"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateProducerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateProducerCommand(adminActor(), "Luis Perez", "luis@example.com", "secret123")
	require.NoError(t, err)

	newUser := ports.IdentityUser{ID: kernel.NewUUID(), Email: "luis@example.com"}

	identity := new(MockIdentityProvider)
	repo := new(MockProfileRepository)
	uow := new(MockProfileUoW)
	mock.InOrder(
		identity.On("CreateUser", ctx, "luis@example.com", "secret123").Return(newUser, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProfileRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.MatchedBy(func(p *account.Profile) bool {
			return p.ID().IsEqual(newUser.ID) && p.Role() == account.RoleProducer && p.FullName() == "Luis Perez"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProfileUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProducerCommandHandler(identity, factory, testPolicy(t))
	require.NoError(t, h.Handle(ctx, cmd))
	identity.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateProducerCommandHandler_Handle_ProducerDenied(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateProducerCommand(producerActor(), "Luis Perez", "luis@example.com", "secret123")
	require.NoError(t, err)

	identity := new(MockIdentityProvider)
	factory := new(MockProfileUoWFactory)

	h := commands.NewCreateProducerCommandHandler(identity, factory, testPolicy(t))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrAuthorizationDenied)
	identity.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateProducerCommandHandler_Handle_CreateUserError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateProducerCommand(adminActor(), "Luis Perez", "luis@example.com", "secret123")
	require.NoError(t, err)

	identity := new(MockIdentityProvider)
	identity.On("CreateUser", ctx, "luis@example.com", "secret123").
		Return(ports.IdentityUser{}, errors.New("provider unavailable")).Once()

	factory := new(MockProfileUoWFactory)
	h := commands.NewCreateProducerCommandHandler(identity, factory, testPolicy(t))
	require.Error(t, h.Handle(ctx, cmd))
	factory.AssertNotCalled(t, "Create")
}

func TestCreateProducerCommandHandler_Handle_ProfileInsertError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateProducerCommand(adminActor(), "Luis Perez", "luis@example.com", "secret123")
	require.NoError(t, err)

	newUser := ports.IdentityUser{ID: kernel.NewUUID(), Email: "luis@example.com"}

	identity := new(MockIdentityProvider)
	repo := new(MockProfileRepository)
	uow := new(MockProfileUoW)
	mock.InOrder(
		identity.On("CreateUser", ctx, "luis@example.com", "secret123").Return(newUser, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProfileRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*account.Profile")).
			Return(errors.New("insert error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProfileUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProducerCommandHandler(identity, factory, testPolicy(t))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrPersistence)
	require.ErrorContains(t, err, newUser.ID.String())
}
