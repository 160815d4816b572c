package http

import (
	"encoding/json"
	"time"

	"ordertrack/internal/core/application/usecases/queries"
)

// Error is the JSON body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Created is the body of a 201 response carrying the new resource ID.
type Created struct {
	ID string `json:"id"`
}

// RegisterRequest is the body of POST /api/v1/register and
// POST /api/v1/users.
type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// BootstrapRequest is the body of POST /api/v1/admin/bootstrap.
type BootstrapRequest struct {
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	SecretKey string `json:"secret_key"`
}

// BootstrapResponse is the body of a successful bootstrap.
type BootstrapResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// NewOrder is the body of POST /api/v1/orders. Details is kept raw so
// the stored payload is exactly what the producer sent.
type NewOrder struct {
	Description string          `json:"description"`
	Details     json.RawMessage `json:"details,omitempty"`
}

// StatusChange is the body of PATCH /api/v1/orders/:id/status. Status
// is the lifecycle label as shown to users (Pendiente, Cargada,
// Operada).
type StatusChange struct {
	Status string `json:"status"`
}

// Order is one row of the order list as returned to clients.
type Order struct {
	ID           string          `json:"id"`
	ProducerID   string          `json:"producer_id"`
	ProducerName string          `json:"producer_name"`
	Description  string          `json:"description"`
	Details      json.RawMessage `json:"details"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Producer is one row of the producer account list.
type Producer struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func toOrderDTOs(rows []queries.ListOrdersQueryResponse) []Order {
	response := make([]Order, len(rows))
	for i, row := range rows {
		response[i] = Order{
			ID:           row.ID.String(),
			ProducerID:   row.ProducerID.String(),
			ProducerName: row.ProducerName,
			Description:  row.Description,
			Details:      row.Details,
			Status:       row.Status,
			CreatedAt:    row.CreatedAt,
		}
	}
	return response
}

func toProducerDTOs(rows []queries.ListProducersQueryResponse) []Producer {
	response := make([]Producer, len(rows))
	for i, row := range rows {
		response[i] = Producer{
			ID:        row.ID.String(),
			FullName:  row.FullName,
			Email:     row.Email,
			CreatedAt: row.CreatedAt,
		}
	}
	return response
}
