package ports

import (
	"context"

	"ordertrack/internal/core/domain/model/kernel"
)

// IdentityUser is the identity provider's view of an account: the session
// subject and the email it authenticated with.
type IdentityUser struct {
	ID    kernel.UUID
	Email string
}

// IdentityProvider is the contract of the external authentication
// service. It owns credentials and sessions; the application only stores
// profiles keyed by the provider's subject id.
//
// The surface is fixed: session resolution, self-service signup/signout,
// and the privileged account management used by the administrator and
// the bootstrap endpoint. Failures are terminal for the calling action;
// no retries happen at this layer.
type IdentityProvider interface {
	// CurrentUser resolves an access token to the authenticated user.
	// An absent, expired or malformed token yields an
	// AuthenticationRequired error.
	CurrentUser(ctx context.Context, accessToken string) (IdentityUser, error)

	// SignUp registers a new account with the provider (self-service).
	SignUp(ctx context.Context, email, password string) (IdentityUser, error)

	// SignOut invalidates the session behind the access token.
	SignOut(ctx context.Context, accessToken string) error

	// CreateUser creates an account through the provider's privileged
	// API. Used by the administrator's user management and the
	// bootstrap endpoint.
	CreateUser(ctx context.Context, email, password string) (IdentityUser, error)

	// DeleteUser removes an account through the provider's privileged
	// API. Deleting an unknown user is an error; a repeated delete must
	// fail without side effects.
	DeleteUser(ctx context.Context, id kernel.UUID) error
}
