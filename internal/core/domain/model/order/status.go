package order

import (
	"fmt"

	"ordertrack/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The intended progression is forward:
//
//	Pending ──> Loaded ──> Operated
//
// but the transition rules live in TransitionPolicy, not here: by default
// any valid status may move to any other valid status (see transition.go).
//
// Status is a value object that persists and displays under its domain
// labels: "Pendiente", "Cargada", "Operada".
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at creation. Orders in this
	// status are waiting for the administrator to process them.
	Pending

	// Loaded indicates the administrator has loaded the order into the
	// processing system.
	Loaded

	// Operated indicates the order has been operated. This is the last
	// step of the intended progression, but not a terminal state under
	// the permissive policy.
	Operated
)

// statusLabels maps every Status to its persistence/display label.
func statusLabels() map[Status]string {
	return map[Status]string{
		Unknown:  "Desconocido",
		Pending:  "Pendiente",
		Loaded:   "Cargada",
		Operated: "Operada",
	}
}

// validStatusLabels maps only valid Status values, to support validation
// and parsing.
func validStatusLabels() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "Pendiente",
		Loaded:   "Cargada",
		Operated: "Operada",
	}
}

// StatusFromLabel parses a persistence label back into a Status.
// Returns an error for anything that is not exactly one of the three
// valid labels.
func StatusFromLabel(label string) (Status, error) {
	for s, l := range validStatusLabels() {
		if l == label {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status label", label),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Loaded, Operated. Unknown (0) and any
// other values are invalid.
func (s Status) Validate() error {
	if _, ok := validStatusLabels()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the domain label of the status: "Pendiente", "Cargada"
// or "Operada" for valid statuses, "Desconocido" otherwise.
//
// This method implements the fmt.Stringer interface and is safe to call
// on any Status value, including invalid ones.
func (s Status) String() string {
	if label, ok := statusLabels()[s]; ok {
		return label
	}
	return "Desconocido"
}
