package queries

import (
	"context"
	"encoding/json"
	"time"

	"ordertrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// unknownProducerName is shown for orders whose producer profile has
// been deleted. Orders survive their producer; the list must not.
const unknownProducerName = "Desconocido"

// ListOrdersQueryHandler reads the order list projection. Producer
// display names come from a left join so a deleted account never hides
// its orders.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are newest first; producers get
// only rows whose producer_id matches their own id.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const baseQuery = `
		SELECT
			o.id,
			o.producer_id,
			COALESCE(p.full_name, ?),
			o.description,
			o.details,
			o.status,
			o.created_at
		FROM orders o
		LEFT JOIN profiles p ON p.id = o.producer_id
	`

	tx := h.db.WithContext(ctx)
	actor := query.Actor()

	var rows *gorm.DB
	if actor.Role.IsAdmin() {
		rows = tx.Raw(baseQuery+` ORDER BY o.created_at DESC`, unknownProducerName)
	} else {
		rows = tx.Raw(baseQuery+` WHERE o.producer_id = ? ORDER BY o.created_at DESC`,
			unknownProducerName, actor.ID.String())
	}

	result, err := rows.Rows()
	if err != nil {
		return nil, err
	}
	defer result.Close()

	orders := make([]ListOrdersQueryResponse, 0)
	for result.Next() {
		var (
			id         uuid.UUID
			producerID uuid.UUID
			name       string
			desc       string
			details    []byte
			status     string
			createdAt  time.Time
		)

		if err = result.Scan(&id, &producerID, &name, &desc, &details, &status, &createdAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		ownerID, idErr := kernel.UUIDFromBytes(producerID[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, ListOrdersQueryResponse{
			ID:           orderID,
			ProducerID:   ownerID,
			ProducerName: name,
			Description:  desc,
			Details:      json.RawMessage(details),
			Status:       status,
			CreatedAt:    createdAt,
		})
	}

	if err = result.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
