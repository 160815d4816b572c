package queries

import (
	"context"

	"ordertrack/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler counts orders per status.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler creates a handler for order stats
// queries.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle executes the query. Statuses with no orders count as zero.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	result, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}
	defer result.Close()

	var stats GetOrderStatsQueryResponse
	for result.Next() {
		var (
			status string
			count  int64
		)

		if err = result.Scan(&status, &count); err != nil {
			return GetOrderStatsQueryResponse{}, err
		}

		switch status {
		case order.Pending.String():
			stats.Pending = count
		case order.Loaded.String():
			stats.Loaded = count
		case order.Operated.String():
			stats.Operated = count
		}
		stats.Total += count
	}

	if err = result.Err(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	return stats, nil
}
