package queries

import (
	"context"

	"laundry/internal/core/domain/model/account"

	"gorm.io/gorm"
)

// GetUserRolesQueryHandler retrieves role assignments from the database.
type GetUserRolesQueryHandler struct {
	db *gorm.DB
}

// NewGetUserRolesQueryHandler creates a handler for role lookups.
func NewGetUserRolesQueryHandler(db *gorm.DB) GetUserRolesQueryHandler {
	return GetUserRolesQueryHandler{db: db}
}

// Handle executes the lookup. A user with no assignments gets an empty
// slice, not an error.
func (h GetUserRolesQueryHandler) Handle(ctx context.Context, query GetUserRolesQuery) ([]account.Role, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT role
		FROM role_assignments
		WHERE user_id = ?
		ORDER BY role
	`, query.UserID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := make([]account.Role, 0)
	for rows.Next() {
		var role int
		if err = rows.Scan(&role); err != nil {
			return nil, err
		}
		roles = append(roles, account.Role(role))
	}

	return roles, rows.Err()
}
