package queries

import (
	"errors"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrGetUserRolesQueryIsNotConstructed = errors.New(
	"GetUserRolesQuery must be created via NewGetUserRolesQuery constructor",
)

// GetUserRolesQuery retrieves every role a user holds. Used by the
// authorization gate on each authenticated request and by the admin role
// listing.
type GetUserRolesQuery struct {
	userID uuid.UUID

	guard guard.ConstructorGuard
}

// NewGetUserRolesQuery creates a role lookup for the given user.
func NewGetUserRolesQuery(userID uuid.UUID) (GetUserRolesQuery, error) {
	if userID == uuid.Nil {
		return GetUserRolesQuery{}, errs.NewValueIsRequiredError("userId")
	}

	return GetUserRolesQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserRolesQuery) Validate() error {
	return q.guard.Validate(ErrGetUserRolesQueryIsNotConstructed)
}

// UserID returns the user whose roles are being looked up.
func (q GetUserRolesQuery) UserID() uuid.UUID {
	return q.userID
}
