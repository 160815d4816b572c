package access

import (
	"context"
	"errors"
	"log/slog"

	"ordertrack/internal/core/domain/model/account"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"
)

// ErrWrongDashboard indicates an authenticated user reached a view meant
// for the other role. The caller should redirect to the dashboard of the
// actual role carried by WrongDashboardError.
var ErrWrongDashboard = errors.New("view does not match role")

// WrongDashboardError carries the user's actual role so the transport
// layer can redirect to the matching dashboard.
type WrongDashboardError struct {
	Actual account.Role
}

func (e *WrongDashboardError) Error() string {
	return "view does not match role: actual role is " + e.Actual.String()
}

func (e *WrongDashboardError) Unwrap() error {
	return ErrWrongDashboard
}

// Actor is an authenticated user as seen by the application: the
// identity provider's subject, the email it authenticated with, and the
// role the profile store assigns to it.
type Actor struct {
	ID    kernel.UUID
	Email string
	Role  account.Role
}

// profileReader is the slice of ProfileRepository the resolver needs.
type profileReader interface {
	Get(ctx context.Context, id kernel.UUID) (*account.Profile, error)
}

// Resolver maps an access token to an Actor. It is invoked once per
// navigation by the transport layer; individual views never re-implement
// the role check.
//
// Resolution failures are non-fatal to the process: they abort only the
// current view. Provider errors are logged here and surface as an
// authentication-required decision, never as a user-visible error.
type Resolver struct {
	identity ports.IdentityProvider
	profiles profileReader
	logger   *slog.Logger
}

// NewResolver creates a resolver over the identity provider and the
// profile store.
func NewResolver(identity ports.IdentityProvider, profiles profileReader, logger *slog.Logger) *Resolver {
	return &Resolver{
		identity: identity,
		profiles: profiles,
		logger:   logger.With("component", "access_resolver"),
	}
}

// Resolve turns an access token into an Actor.
//
// Outcomes:
//   - empty/invalid token -> AuthenticationRequiredError
//   - provider error -> logged, AuthenticationRequiredError
//   - no profile row -> logged, AuthenticationRequiredError (the role
//     cannot be determined without a profile)
func (r *Resolver) Resolve(ctx context.Context, accessToken string) (Actor, error) {
	if accessToken == "" {
		return Actor{}, errs.NewAuthenticationRequiredError()
	}

	user, err := r.identity.CurrentUser(ctx, accessToken)
	if err != nil {
		if !errors.Is(err, errs.ErrAuthenticationRequired) {
			r.logger.ErrorContext(ctx, "identity provider failed to resolve session", "error", err)
		}
		return Actor{}, errs.NewAuthenticationRequiredErrorWithCause(err)
	}

	profile, err := r.profiles.Get(ctx, user.ID)
	if err != nil {
		r.logger.ErrorContext(ctx, "profile lookup failed during session resolution",
			"user_id", user.ID.String(), "error", err)
		return Actor{}, errs.NewAuthenticationRequiredErrorWithCause(err)
	}

	return Actor{
		ID:    user.ID,
		Email: user.Email,
		Role:  profile.Role(),
	}, nil
}

// ResolveForView resolves the session and additionally checks that the
// actor's role matches the role the current view expects. A mismatch
// yields a WrongDashboardError carrying the actual role, so the caller
// redirects there instead of rendering.
func (r *Resolver) ResolveForView(ctx context.Context, accessToken string, expected account.Role) (Actor, error) {
	actor, err := r.Resolve(ctx, accessToken)
	if err != nil {
		return Actor{}, err
	}

	if actor.Role != expected {
		return Actor{}, &WrongDashboardError{Actual: actor.Role}
	}

	return actor, nil
}
