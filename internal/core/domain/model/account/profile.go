package account

import (
	"errors"
	"strings"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

// Domain errors for profile operations.
var (
	// ErrFullNameIsRequired is returned when creating a profile without a display name.
	ErrFullNameIsRequired = errs.NewValueIsRequiredError("full name")
	// ErrEmailIsRequired is returned when creating a profile without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrEmailIsInvalid is returned when the email has no "@".
	ErrEmailIsInvalid = errs.NewValueIsInvalidError("email")
	// ErrProfileIsNotConstructed is returned when using an improperly initialized Profile.
	ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile or RestoreProfile")
)

// Profile represents the application-level identity record associated
// with an authenticated account. Its id is the identity provider's
// session subject, which is how order ownership and role resolution tie
// back to a login.
//
// Business rules:
//   - id, role, email and creation timestamp are immutable
//   - the display name may be changed after creation (Rename)
//   - role must be valid at construction; self-registration paths pass
//     RoleProducer, the bootstrap path passes RoleAdmin
type Profile struct {
	// id uniquely identifies the profile, shared with the identity provider
	id kernel.UUID
	// role is the access role, producer or admin
	role Role
	// fullName is the display name
	fullName string
	// email is the account's email address
	email string
	// createdAt is the creation timestamp
	createdAt time.Time
	// guard ensures the profile was properly constructed
	guard guard.ConstructorGuard
}

// NewProfile creates a new Profile with the specified parameters.
// All parameters are validated; errors are aggregated.
func NewProfile(id kernel.UUID, role Role, fullName, email string, createdAt time.Time) (*Profile, error) {
	profile := &Profile{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		profile.setID(id),
		profile.setRole(role),
		profile.setFullName(fullName),
		profile.setEmail(email),
		profile.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return profile, nil
}

// RestoreProfile reconstructs a Profile from persistent storage.
// Used only by repository adapters.
func RestoreProfile(id kernel.UUID, role Role, fullName, email string, createdAt time.Time) (*Profile, error) {
	return NewProfile(id, role, fullName, email, createdAt)
}

// Validate ensures the Profile instance was properly constructed.
func (p *Profile) Validate() error {
	if p == nil {
		return ErrProfileIsNotConstructed
	}
	return p.guard.Validate(ErrProfileIsNotConstructed)
}

// IsEqual compares two profiles by their unique identifiers.
func (p *Profile) IsEqual(other *Profile) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the profile's unique identifier.
func (p *Profile) ID() kernel.UUID {
	return p.id
}

// Role returns the profile's access role.
func (p *Profile) Role() Role {
	return p.role
}

// FullName returns the display name.
func (p *Profile) FullName() string {
	return p.fullName
}

// Email returns the account's email address.
func (p *Profile) Email() string {
	return p.email
}

// CreatedAt returns the creation timestamp.
func (p *Profile) CreatedAt() time.Time {
	return p.createdAt
}

// Rename changes the display name. This is the only mutation a profile
// supports after creation.
func (p *Profile) Rename(fullName string) error {
	return p.setFullName(fullName)
}

// setID validates and sets the profile's unique identifier.
// This is a private method used only during construction.
func (p *Profile) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setRole validates and sets the access role.
// This is a private method used only during construction.
func (p *Profile) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	p.role = role
	return nil
}

// setFullName validates and sets the display name.
func (p *Profile) setFullName(fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return ErrFullNameIsRequired
	}
	p.fullName = fullName
	return nil
}

// setEmail validates and sets the email address.
// This is a private method used only during construction.
func (p *Profile) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	if !strings.Contains(email, "@") {
		return ErrEmailIsInvalid
	}
	p.email = email
	return nil
}

// setCreatedAt validates and sets the creation timestamp.
// This is a private method used only during construction.
func (p *Profile) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	p.createdAt = createdAt
	return nil
}
