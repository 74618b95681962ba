package auditrepo

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/audit"

	"gorm.io/gorm"
)

// GormAuditRepository implements AuditRepository using GORM.
type GormAuditRepository struct {
	db *gorm.DB
}

// NewGormAuditRepository creates a new GORM audit repository.
func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// Append stores one audit record.
func (r *GormAuditRepository) Append(ctx context.Context, record audit.Record) error {
	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// PurgeOlderThan deletes records created before the cutoff.
func (r *GormAuditRepository) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&RecordDTO{}, "created_at < ?", cutoff)
	return result.RowsAffected, result.Error
}
