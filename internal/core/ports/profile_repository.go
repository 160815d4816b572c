package ports

import (
	"context"

	"ordertrack/internal/core/domain/model/account"
	"ordertrack/internal/core/domain/model/kernel"
)

// ProfileRepository defines the persistence contract for profile
// aggregates.
type ProfileRepository interface {
	// Add persists a new profile aggregate to storage.
	Add(ctx context.Context, aggregate *account.Profile) error

	// Get retrieves a profile by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Profile, error)

	// Update persists changes to an existing profile (display name).
	Update(ctx context.Context, aggregate *account.Profile) error

	// Delete removes a profile row. The identity provider's record is a
	// separate concern handled by the IdentityProvider port.
	Delete(ctx context.Context, id kernel.UUID) error
}
