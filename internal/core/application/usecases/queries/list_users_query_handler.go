package queries

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/account"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListUsersQueryHandler retrieves the user listing from the database.
type ListUsersQueryHandler struct {
	db *gorm.DB
}

// NewListUsersQueryHandler creates a handler for the user listing.
func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db}
}

// Handle executes the listing. Rows arrive ordered by user then role, so
// assignments for one user are adjacent and can be folded in one pass.
func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]ListUsersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT user_id, role, created_at
		FROM role_assignments
		ORDER BY user_id, role
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]ListUsersQueryResponse, 0)
	for rows.Next() {
		var (
			rawUserID string
			role      int
			createdAt time.Time
		)
		if err = rows.Scan(&rawUserID, &role, &createdAt); err != nil {
			return nil, err
		}

		userID, parseErr := uuid.Parse(rawUserID)
		if parseErr != nil {
			return nil, parseErr
		}

		roleName := account.Role(role).String()
		if n := len(users); n > 0 && users[n-1].UserID == userID {
			users[n-1].Roles = append(users[n-1].Roles, roleName)
			if createdAt.Before(users[n-1].FirstGranted) {
				users[n-1].FirstGranted = createdAt
			}
			continue
		}

		users = append(users, ListUsersQueryResponse{
			UserID:       userID,
			Roles:        []string{roleName},
			FirstGranted: createdAt,
		})
	}

	return users, rows.Err()
}
