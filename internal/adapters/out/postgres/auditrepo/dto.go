// Package auditrepo provides data transfer objects and mapping functions
// for the audit trail.
package auditrepo

import (
	"time"

	"laundry/internal/core/domain/model/audit"

	"github.com/google/uuid"
)

// RecordDTO represents the database structure for persisting audit records.
// Snapshots are stored as jsonb so they can be inspected with SQL.
type RecordDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Table     string     `gorm:"column:table_name;type:varchar(64);index"`
	RecordID  string     `gorm:"type:varchar(64);index"`
	Action    string     `gorm:"type:varchar(16)"`
	OldData   []byte     `gorm:"type:jsonb"`
	NewData   []byte     `gorm:"type:jsonb"`
	UserID    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time  `gorm:"index"`
}

// TableName specifies the database table name for audit records.
func (RecordDTO) TableName() string {
	return "audit_records"
}

// fromDomain converts an audit record to its database representation.
func fromDomain(record audit.Record) RecordDTO {
	return RecordDTO{
		ID:        record.ID,
		Table:     record.TableName,
		RecordID:  record.RecordID,
		Action:    string(record.Action),
		OldData:   record.OldData,
		NewData:   record.NewData,
		UserID:    record.UserID,
		CreatedAt: record.CreatedAt,
	}
}
