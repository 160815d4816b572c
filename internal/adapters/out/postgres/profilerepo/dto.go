// Package profilerepo provides data transfer objects and mapping
// functions for profile persistence.
package profilerepo

import (
	"time"

	"ordertrack/internal/core/domain/model/account"
	"ordertrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ProfileDTO represents the database structure for persisting profile
// aggregates. The id is the identity provider's subject id; the role
// index backs the producer list query.
type ProfileDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role      string    `gorm:"index"`
	FullName  string
	Email     string `gorm:"uniqueIndex"`
	CreatedAt time.Time
}

// TableName specifies the database table name for profile entities.
func (ProfileDTO) TableName() string {
	return "profiles"
}

// fromDomain converts a profile domain aggregate to its database
// representation.
func fromDomain(aggregate *account.Profile) ProfileDTO {
	return ProfileDTO{
		ID:        aggregate.ID().Bytes(),
		Role:      aggregate.Role().String(),
		FullName:  aggregate.FullName(),
		Email:     aggregate.Email(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a profile domain aggregate using
// RestoreProfile.
func toDomain(dto ProfileDTO) (*account.Profile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.RoleFromLabel(dto.Role)
	if err != nil {
		return nil, err
	}

	return account.RestoreProfile(id, role, dto.FullName, dto.Email, dto.CreatedAt)
}
