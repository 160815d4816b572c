// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. This package implements the repository pattern
// for the order domain aggregate, handling the conversion between domain
// entities and database representations.
package orderrepo

import (
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The producer_id index backs the producer-scoped list
// query; status is stored as its display label so read models never
// translate it. Details uses the json column type, not jsonb: jsonb
// normalizes the payload and the domain promises byte-identical reads.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProducerID  uuid.UUID `gorm:"type:uuid;index"`
	Description string
	Details     []byte    `gorm:"type:json"`
	Status      string    `gorm:"index"`
	CreatedAt   time.Time `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		ProducerID:  aggregate.ProducerID().Bytes(),
		Description: aggregate.Description(),
		Details:     []byte(aggregate.Details()),
		Status:      aggregate.Status().String(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	producerID, err := kernel.UUIDFromBytes(dto.ProducerID[:])
	if err != nil {
		return nil, err
	}

	details, err := order.NewDetails(dto.Details)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromLabel(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, producerID, dto.Description, details, status, dto.CreatedAt)
}
