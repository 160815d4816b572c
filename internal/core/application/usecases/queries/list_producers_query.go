package queries

import (
	"errors"
	"time"

	"ordertrack/internal/core/application/access"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrListProducersQueryIsNotConstructed = errors.New(
		"ListProducersQuery must be created via NewListProducersQuery constructor",
	)
)

// ListProducersQuery retrieves all producer accounts for the
// administrator's user management view.
type ListProducersQuery struct {
	actor access.Actor

	guard guard.ConstructorGuard
}

// NewListProducersQuery creates a query on behalf of the given actor.
// The handler rejects non-administrators.
func NewListProducersQuery(actor access.Actor) (ListProducersQuery, error) {
	if err := actor.Role.Validate(); err != nil {
		return ListProducersQuery{}, err
	}

	return ListProducersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListProducersQuery) Validate() error {
	return q.guard.Validate(ErrListProducersQueryIsNotConstructed)
}

// Actor returns the caller requesting the list.
func (q ListProducersQuery) Actor() access.Actor {
	return q.actor
}

// ListProducersQueryResponse is one row of the producer list read model.
type ListProducersQueryResponse struct {
	ID        kernel.UUID
	FullName  string
	Email     string
	CreatedAt time.Time
}
