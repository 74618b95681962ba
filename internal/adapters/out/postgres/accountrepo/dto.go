// Package accountrepo provides data transfer objects and mapping functions
// for role assignment persistence.
package accountrepo

import (
	"time"

	"laundry/internal/core/domain/model/account"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting role
// assignments. The (user, role) pair is the primary key, so a user holding
// both roles occupies two rows and duplicates are impossible.
type AssignmentDTO struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role      int       `gorm:"type:smallint;primaryKey"`
	CreatedAt time.Time
}

// TableName specifies the database table name for role assignments.
func (AssignmentDTO) TableName() string {
	return "role_assignments"
}

// fromDomain converts a role assignment to its database representation.
func fromDomain(assignment account.Assignment) AssignmentDTO {
	return AssignmentDTO{
		UserID:    assignment.UserID,
		Role:      int(assignment.Role),
		CreatedAt: assignment.CreatedAt,
	}
}
