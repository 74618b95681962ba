package commands

import (
	"errors"

	"laundry/internal/core/domain/model/account"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrGrantRoleCommandIsNotConstructed = errors.New(
	"GrantRoleCommand must be created via NewGrantRoleCommand constructor",
)

// GrantRoleCommand represents a request to give a user a role.
type GrantRoleCommand struct { //nolint:recvcheck //using for validation
	userID  uuid.UUID
	role    account.Role
	actorID *uuid.UUID

	guard guard.ConstructorGuard
}

// NewGrantRoleCommand creates a grant command for the given user and role.
func NewGrantRoleCommand(userID uuid.UUID, role account.Role, actorID *uuid.UUID) (GrantRoleCommand, error) {
	if userID == uuid.Nil {
		return GrantRoleCommand{}, errs.NewValueIsRequiredError("userId")
	}
	if err := role.Validate(); err != nil {
		return GrantRoleCommand{}, err
	}

	return GrantRoleCommand{
		userID:  userID,
		role:    role,
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c GrantRoleCommand) Validate() error {
	return c.guard.Validate(ErrGrantRoleCommandIsNotConstructed)
}

// UserID returns the user receiving the role.
func (c GrantRoleCommand) UserID() uuid.UUID {
	return c.userID
}

// Role returns the role being granted.
func (c GrantRoleCommand) Role() account.Role {
	return c.role
}

// ActorID returns the administrator performing the grant, if any.
func (c GrantRoleCommand) ActorID() *uuid.UUID {
	return c.actorID
}
