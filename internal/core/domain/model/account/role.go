package account

import (
	"fmt"

	"ordertrack/internal/pkg/errs"
)

// Role represents the access role of a profile. There are exactly two:
// producers, who create and view their own orders, and the single
// administrator, who views everything, moves orders through their
// lifecycle, and manages producer accounts.
//
// Role is a value object that persists under the labels "producer" and
// "admin".
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleProducer may create orders and list only its own.
	RoleProducer

	// RoleAdmin may list all orders, change their status, and manage
	// producer accounts.
	RoleAdmin
)

// roleLabels maps every Role to its persistence label.
func roleLabels() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleProducer: "producer",
		RoleAdmin:    "admin",
	}
}

// validRoleLabels maps only valid Role values, to support validation and
// parsing.
func validRoleLabels() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleProducer: "producer",
		RoleAdmin:    "admin",
	}
}

// RoleFromLabel parses a persistence label back into a Role.
func RoleFromLabel(label string) (Role, error) {
	for r, l := range validRoleLabels() {
		if l == label {
			return r, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a valid role label", label),
	)
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := validRoleLabels()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the persistence label of the role, or "unknown" for
// invalid values. Implements fmt.Stringer.
func (r Role) String() string {
	if label, ok := roleLabels()[r]; ok {
		return label
	}
	return "unknown"
}

// IsAdmin reports whether the role is the administrator role.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
