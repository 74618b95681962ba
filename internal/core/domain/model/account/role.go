// Package account contains the role model for shop staff.
//
// The shop has a flat two-role scheme: staff operate orders, admins
// additionally manage roles and audit data. A user may hold zero, one, or
// both roles; an assignment is a plain (user, role) pair with one
// self-protection invariant around revoking admin access.
package account

import (
	"fmt"
	"time"

	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
)

// Role is one of the two access levels a user can hold.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleStaff may create, advance, and delete orders.
	RoleStaff

	// RoleAdmin may additionally manage role assignments and read the audit trail.
	RoleAdmin
)

// getValidRoleStrings returns only valid Role values to support validation.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleStaff: "staff",
		RoleAdmin: "admin",
	}
}

// RoleFromString parses a wire name ("staff", "admin") into a Role.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks if the Role value is staff or admin.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the wire name of the role.
func (r Role) String() string {
	if name, ok := getValidRoleStrings()[r]; ok {
		return name
	}
	return "unknown"
}

// Assignment is a (user, role) pair. Membership is the whole model: holding
// the pair grants the role, removing it revokes the role.
type Assignment struct {
	UserID    uuid.UUID
	Role      Role
	CreatedAt time.Time
}

// NewAssignment creates a role assignment for the given user.
func NewAssignment(userID uuid.UUID, role Role) (Assignment, error) {
	if userID == uuid.Nil {
		return Assignment{}, errs.NewValueIsRequiredError("userId")
	}
	if err := role.Validate(); err != nil {
		return Assignment{}, err
	}
	return Assignment{UserID: userID, Role: role, CreatedAt: time.Now().UTC()}, nil
}

// CheckRevocation enforces the self-protection invariant: a user may not
// revoke their own admin role, even when they are the only admin. Every other
// revocation is allowed at this level; whether the actor holds the admin role
// at all is checked by the capability gate before the command runs.
func CheckRevocation(actor, target uuid.UUID, role Role) error {
	if role == RoleAdmin && actor == target {
		return errs.NewNotAuthorizedError(actor.String(), "revoke own admin role")
	}
	return nil
}
