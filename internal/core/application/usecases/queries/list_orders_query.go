// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS
// architecture. Queries bypass the domain model and read optimized
// projections straight from the database.
package queries

import (
	"encoding/json"
	"errors"
	"time"

	"ordertrack/internal/core/application/access"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves the orders visible to the calling actor.
// Producers see only their own submissions; the administrator sees
// everything. The scoping key is the actor's id, which is also the
// orders' producer_id.
type ListOrdersQuery struct {
	actor access.Actor

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query scoped to the given actor.
func NewListOrdersQuery(actor access.Actor) (ListOrdersQuery, error) {
	if err := actor.ID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	if err := actor.Role.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Actor returns the caller the result set is scoped to.
func (q ListOrdersQuery) Actor() access.Actor {
	return q.actor
}

// ListOrdersQueryResponse is one row of the order list read model. The
// producer's display name is resolved by joining profiles; orders whose
// producer no longer exists show the placeholder name.
type ListOrdersQueryResponse struct {
	ID           kernel.UUID
	ProducerID   kernel.UUID
	ProducerName string
	Description  string
	Details      json.RawMessage
	Status       string
	CreatedAt    time.Time
}
