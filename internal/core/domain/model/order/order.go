package order

import (
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders
	// are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a producer order tracked through its lifecycle. It is
// the aggregate root governing ownership and status changes.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a valid owning producer
//   - Description and details are required and immutable after creation
//   - Status is the only mutable field; changes go through ChangeStatus
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// producerID identifies the owning producer account
	producerID kernel.UUID

	// description is the producer-supplied free text
	description string

	// details is the opaque payload captured at creation
	details Details

	// status is the current state in the order lifecycle
	status Status

	// createdAt is the creation timestamp
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order owned by the given producer. The order
// starts in Pending status; this is the only way new orders enter the
// system.
//
// Parameters:
//   - id: unique identifier for the order
//   - producerID: identifier of the owning producer account
//   - description: producer-supplied free text (required)
//   - details: opaque payload (required, well-formed JSON)
//   - createdAt: creation timestamp (must not be zero)
//
// Returns the created order, or a validation error if any parameter is
// invalid.
func NewOrder(
	id kernel.UUID,
	producerID kernel.UUID,
	description string,
	details Details,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setProducerID(producerID),
		o.setDescription(description),
		o.setDetails(details),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its
// stored status. Used only by repository adapters.
func RestoreOrder(
	id kernel.UUID,
	producerID kernel.UUID,
	description string,
	details Details,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, producerID, description, details, createdAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ProducerID returns the identifier of the owning producer.
func (o *Order) ProducerID() kernel.UUID {
	return o.producerID
}

// Description returns the producer-supplied description.
func (o *Order) Description() string {
	return o.description
}

// Details returns the opaque payload captured at creation.
func (o *Order) Details() Details {
	return o.details
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus moves the order to the target status under the given
// transition policy. Description and details are untouched.
//
// Authorization (administrator-only) is enforced by the command handler;
// this method enforces only the transition rules themselves.
func (o *Order) ChangeStatus(target Status, policy TransitionPolicy) error {
	if err := policy.Check(o.status, target); err != nil {
		return err
	}

	o.status = target
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setProducerID validates and sets the owning producer.
// This is a private method used only during construction.
func (o *Order) setProducerID(producerID kernel.UUID) error {
	if err := producerID.Validate(); err != nil {
		return err
	}
	o.producerID = producerID
	return nil
}

// setDescription validates and sets the description.
// This is a private method used only during construction.
func (o *Order) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	o.description = description
	return nil
}

// setDetails validates and sets the opaque payload.
// This is a private method used only during construction.
func (o *Order) setDetails(details Details) error {
	if err := details.Validate(); err != nil {
		return err
	}
	o.details = details
	return nil
}

// setCreatedAt validates and sets the creation timestamp.
// This is a private method used only during construction.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
