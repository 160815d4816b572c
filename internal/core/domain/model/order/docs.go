// Package order provides domain entities and business logic for producer
// orders. It implements the Order aggregate root with lifecycle management
// and status transitions.
//
// The package includes:
//   - Order: the aggregate root holding identity, ownership, and lifecycle
//   - Status: the lifecycle state with its persistence labels
//   - TransitionPolicy: the rule deciding which status changes are allowed
//   - Details: the opaque payload captured at creation
//
// Key business rules:
//   - Every order is owned by exactly one producer; ownership never changes
//   - Description and details are immutable after creation
//   - New orders always start in Pending status
//   - Status is the only mutable field, and only the administrator role
//     may change it (enforced in the application layer)
//   - The default transition policy is permissive: any valid status may
//     move to any other valid status; a forward-only policy is available
//     behind configuration
//
// Statuses persist under their domain labels "Pendiente", "Cargada" and
// "Operada".
package order
