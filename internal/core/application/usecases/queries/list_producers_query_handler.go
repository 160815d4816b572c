package queries

import (
	"context"
	"time"

	"ordertrack/internal/core/application/access"
	"ordertrack/internal/core/domain/model/account"
	"ordertrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListProducersQueryHandler reads the producer account list. Admin only;
// the administrator's own profile is not part of the result.
type ListProducersQueryHandler struct {
	db     *gorm.DB
	policy *access.Policy
}

// NewListProducersQueryHandler creates a handler for producer list
// queries.
func NewListProducersQueryHandler(db *gorm.DB, policy *access.Policy) ListProducersQueryHandler {
	return ListProducersQueryHandler{db: db, policy: policy}
}

// Handle executes the query. Results are newest first.
func (h ListProducersQueryHandler) Handle(
	ctx context.Context,
	query ListProducersQuery,
) ([]ListProducersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Allow(query.Actor().Role, access.ResourceUsers, access.ActionList); err != nil {
		return nil, err
	}

	result, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			full_name,
			email,
			created_at
		FROM profiles
		WHERE role = ?
		ORDER BY created_at DESC
	`, account.RoleProducer.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer result.Close()

	producers := make([]ListProducersQueryResponse, 0)
	for result.Next() {
		var (
			id        uuid.UUID
			fullName  string
			email     string
			createdAt time.Time
		)

		if err = result.Scan(&id, &fullName, &email, &createdAt); err != nil {
			return nil, err
		}

		profileID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		producers = append(producers, ListProducersQueryResponse{
			ID:        profileID,
			FullName:  fullName,
			Email:     email,
			CreatedAt: createdAt,
		})
	}

	if err = result.Err(); err != nil {
		return nil, err
	}

	return producers, nil
}
