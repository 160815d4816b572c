package commands

import (
	"context"
	"time"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order
// submission. Every new order starts in Pending status and belongs to
// exactly one producer.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order submission.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order submission command. Inserts exactly one row;
// a rejected insert surfaces as a PersistenceError and the operation is
// treated as not applied.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.ProducerID(),
		cmd.Description(),
		cmd.Details(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return errs.NewPersistenceError("begin create order", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return errs.NewPersistenceError("insert order", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewPersistenceError("commit create order", err)
	}

	return nil
}
