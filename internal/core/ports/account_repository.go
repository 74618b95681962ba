package ports

import (
	"context"

	"laundry/internal/core/domain/model/account"

	"github.com/google/uuid"
)

// AccountRepository defines the persistence contract for role assignments.
type AccountRepository interface {
	// AddAssignment persists a (user, role) pair. Adding an assignment the
	// user already holds is a no-op.
	AddAssignment(ctx context.Context, assignment account.Assignment) error

	// RemoveAssignment deletes a (user, role) pair. Returns an
	// ObjectNotFoundError when the user does not hold the role.
	RemoveAssignment(ctx context.Context, userID uuid.UUID, role account.Role) error

	// RolesFor returns every role the user holds, possibly empty.
	RolesFor(ctx context.Context, userID uuid.UUID) ([]account.Role, error)
}
