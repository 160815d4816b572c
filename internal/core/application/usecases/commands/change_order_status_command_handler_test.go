package commands_test

import (
	"errors"
	"testing"
	"time"

	"ordertrack/internal/core/application/access"
	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/domain/model/account"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testPolicy(t *testing.T) *access.Policy {
	t.Helper()
	policy, err := access.NewPolicy()
	require.NoError(t, err)
	return policy
}

func adminActor() access.Actor {
	return access.Actor{ID: kernel.NewUUID(), Email: "admin@example.com", Role: account.RoleAdmin}
}

func producerActor() access.Actor {
	return access.Actor{ID: kernel.NewUUID(), Email: "producer@example.com", Role: account.RoleProducer}
}

func storedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), "100 units", validDetails(t), status, time.Now().UTC())
	require.NoError(t, err)
	return o
}

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, order.Pending)
	cmd, err := commands.NewChangeOrderStatusCommand(adminActor(), stored.ID(), order.Loaded)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("UpdateStatus", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, testPolicy(t), order.Permissive)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.Loaded, stored.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_BackwardTransitionAllowed(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, order.Operated)
	cmd, err := commands.NewChangeOrderStatusCommand(adminActor(), stored.ID(), order.Pending)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("UpdateStatus", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, testPolicy(t), order.Permissive)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.Pending, stored.Status())
}

func TestChangeOrderStatusCommandHandler_Handle_ProducerDenied(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(producerActor(), kernel.NewUUID(), order.Loaded)
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewChangeOrderStatusCommandHandler(factory, testPolicy(t), order.Permissive)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrAuthorizationDenied)
	// nothing may reach the store on a denied request
	factory.AssertNotCalled(t, "Create")
}

func TestChangeOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	missingID := kernel.NewUUID()
	cmd, err := commands.NewChangeOrderStatusCommand(adminActor(), missingID, order.Loaded)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, missingID).
			Return(nil, errs.NewObjectNotFoundError("order", missingID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, testPolicy(t), order.Permissive)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestChangeOrderStatusCommandHandler_Handle_ForwardOnlyRejectsBackward(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, order.Operated)
	cmd, err := commands.NewChangeOrderStatusCommand(adminActor(), stored.ID(), order.Pending)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, testPolicy(t), order.ForwardOnly)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.Equal(t, order.Operated, stored.Status())
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, order.Pending)
	cmd, err := commands.NewChangeOrderStatusCommand(adminActor(), stored.ID(), order.Operated)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("UpdateStatus", mock.Anything, stored).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, testPolicy(t), order.Permissive)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrPersistence)
}

func TestChangeOrderStatusCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.ChangeOrderStatusCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrChangeOrderStatusCommandIsNotConstructed)
}

func TestNewChangeOrderStatusCommand_InvalidTarget(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(adminActor(), kernel.NewUUID(), order.Unknown)
	require.Error(t, err)
}
