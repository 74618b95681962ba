package accountrepo

import (
	"context"

	"laundry/internal/core/domain/model/account"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// AddAssignment saves a role assignment. Granting a role the user already
// holds is a no-op rather than a conflict.
func (r *GormAccountRepository) AddAssignment(ctx context.Context, assignment account.Assignment) error {
	dto := fromDomain(assignment)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}

// RemoveAssignment deletes a role assignment.
func (r *GormAccountRepository) RemoveAssignment(ctx context.Context, userID uuid.UUID, role account.Role) error {
	result := r.db.WithContext(ctx).
		Delete(&AssignmentDTO{}, "user_id = ? AND role = ?", userID, int(role))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("assignment", userID.String())
	}

	return nil
}

// RolesFor retrieves every role the user holds.
func (r *GormAccountRepository) RolesFor(ctx context.Context, userID uuid.UUID) ([]account.Role, error) {
	var dtos []AssignmentDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}

	roles := make([]account.Role, 0, len(dtos))
	for _, dto := range dtos {
		roles = append(roles, account.Role(dto.Role))
	}

	return roles, nil
}
