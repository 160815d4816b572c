package order

import (
	"fmt"

	"ordertrack/internal/pkg/errs"
)

// TransitionPolicy decides which status changes an administrator may
// apply to an order.
//
// Permissive is the default: any valid status may move to any other
// valid status, including backward moves such as Operada -> Pendiente.
// Whether backward moves are intentional is an open product question;
// until it is answered the permissive policy stays the default and
// ForwardOnly stays behind configuration.
type TransitionPolicy int

const (
	// Permissive allows any transition between valid statuses.
	Permissive TransitionPolicy = iota

	// ForwardOnly allows only strictly forward moves along
	// Pending -> Loaded -> Operated.
	ForwardOnly
)

// Check validates a transition from one status to another under the
// policy. Both endpoints must be valid statuses regardless of policy.
func (p TransitionPolicy) Check(from, to Status) error {
	if err := from.Validate(); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}

	if p == ForwardOnly && to <= from {
		return errs.NewValueIsInvalidErrorWithCause(
			"status transition is not allowed",
			fmt.Errorf("%s -> %s is not a forward transition", from, to),
		)
	}

	return nil
}
