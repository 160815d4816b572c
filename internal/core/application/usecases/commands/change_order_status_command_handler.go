package commands

import (
	"context"

	"ordertrack/internal/core/application/access"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler moves an order between statuses under
// the configured transition policy.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     *access.Policy
	transition order.TransitionPolicy
}

// NewChangeOrderStatusCommandHandler creates a handler for status
// transitions. The transition policy is fixed at construction from
// configuration.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	policy *access.Policy,
	transition order.TransitionPolicy,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		transition: transition,
	}
}

// Handle validates the caller's role, loads the order and applies the
// transition atomically. On any failure the order's status is unchanged.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.Allow(cmd.Actor().Role, access.ResourceOrders, access.ActionUpdateStatus); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return errs.NewPersistenceError("begin change order status", err)
	}
	defer func() { _ = uow.Rollback(ctx) }()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err := aggregate.ChangeStatus(cmd.Target(), h.transition); err != nil {
		return err
	}

	if err := uow.OrderRepository().UpdateStatus(ctx, aggregate); err != nil {
		return errs.NewPersistenceError("update order status", err)
	}

	if err := uow.Commit(ctx); err != nil {
		return errs.NewPersistenceError("commit change order status", err)
	}

	return nil
}
