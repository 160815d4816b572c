package commands

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDescriptionIsRequired = errs.NewValueIsRequiredError("description")
)

// CreateOrderCommand represents a producer's request to submit a new
// order. The producer id comes from the resolved session, never from the
// request body, so an order cannot be created on another producer's
// behalf.
//
// Example:
//
//	details, _ := order.NewDetails(payload)
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), actor.ID, "Corn delivery", details)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	producerID  kernel.UUID
	description string
	details     order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to submit a new order.
// Validates identifiers, a non-empty description, and a present
// well-formed details payload.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	producerID kernel.UUID,
	description string,
	details order.Details,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProducerID(producerID),
		cmd.setDescription(description),
		cmd.setDetails(details),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProducerID returns the owning producer's identifier.
func (c CreateOrderCommand) ProducerID() kernel.UUID {
	return c.producerID
}

// Description returns the producer-supplied description.
func (c CreateOrderCommand) Description() string {
	return c.description
}

// Details returns the opaque payload captured with the order.
func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setProducerID(producerID kernel.UUID) error {
	if err := producerID.Validate(); err != nil {
		return err
	}

	c.producerID = producerID
	return nil
}

func (c *CreateOrderCommand) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}

	c.description = description
	return nil
}

func (c *CreateOrderCommand) setDetails(details order.Details) error {
	if err := details.Validate(); err != nil {
		return err
	}

	c.details = details
	return nil
}
