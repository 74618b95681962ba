package commands

import (
	"errors"

	"laundry/internal/core/domain/model/account"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrRevokeRoleCommandIsNotConstructed = errors.New(
	"RevokeRoleCommand must be created via NewRevokeRoleCommand constructor",
)

// RevokeRoleCommand represents a request to take a role away from a user.
// The actor is required here, unlike on the other commands, because the
// self-revocation check needs to know who is asking.
type RevokeRoleCommand struct { //nolint:recvcheck //using for validation
	userID  uuid.UUID
	role    account.Role
	actorID uuid.UUID

	guard guard.ConstructorGuard
}

// NewRevokeRoleCommand creates a revoke command for the given user and role.
func NewRevokeRoleCommand(userID uuid.UUID, role account.Role, actorID uuid.UUID) (RevokeRoleCommand, error) {
	if userID == uuid.Nil {
		return RevokeRoleCommand{}, errs.NewValueIsRequiredError("userId")
	}
	if actorID == uuid.Nil {
		return RevokeRoleCommand{}, errs.NewValueIsRequiredError("actorId")
	}
	if err := role.Validate(); err != nil {
		return RevokeRoleCommand{}, err
	}

	return RevokeRoleCommand{
		userID:  userID,
		role:    role,
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RevokeRoleCommand) Validate() error {
	return c.guard.Validate(ErrRevokeRoleCommandIsNotConstructed)
}

// UserID returns the user losing the role.
func (c RevokeRoleCommand) UserID() uuid.UUID {
	return c.userID
}

// Role returns the role being revoked.
func (c RevokeRoleCommand) Role() account.Role {
	return c.role
}

// ActorID returns the administrator performing the revocation.
func (c RevokeRoleCommand) ActorID() uuid.UUID {
	return c.actorID
}
