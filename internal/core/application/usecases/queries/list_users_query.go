package queries

import (
	"errors"
	"time"

	"laundry/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

// ListUsersQuery retrieves every user holding at least one role, with the
// roles they hold. Backs the role management screen.
type ListUsersQuery struct {
	guard guard.ConstructorGuard
}

// NewListUsersQuery creates a user listing query.
func NewListUsersQuery() ListUsersQuery {
	return ListUsersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

// ListUsersQueryResponse is one user and the roles they hold. FirstGranted
// is when their earliest surviving assignment was created.
type ListUsersQueryResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	Roles        []string  `json:"roles"`
	FirstGranted time.Time `json:"first_granted"`
}
