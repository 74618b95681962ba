package queries

import (
	"encoding/json"
	"errors"
	"time"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrListAuditRecordsQueryIsNotConstructed = errors.New(
	"ListAuditRecordsQuery must be created via NewListAuditRecordsQuery constructor",
)

const (
	defaultAuditPageSize = 100
	maxAuditPageSize     = 1000
)

// ListAuditRecordsQuery retrieves audit trail entries, newest first,
// optionally narrowed to one table or one record.
type ListAuditRecordsQuery struct {
	tableName string
	recordID  string
	limit     int

	guard guard.ConstructorGuard
}

// NewListAuditRecordsQuery creates an audit listing query. tableName and
// recordID are optional filters; limit 0 means the default page size.
func NewListAuditRecordsQuery(tableName, recordID string, limit int) (ListAuditRecordsQuery, error) {
	if limit < 0 || limit > maxAuditPageSize {
		return ListAuditRecordsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 0, maxAuditPageSize)
	}
	if limit == 0 {
		limit = defaultAuditPageSize
	}

	return ListAuditRecordsQuery{
		tableName: tableName,
		recordID:  recordID,
		limit:     limit,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListAuditRecordsQuery) Validate() error {
	return q.guard.Validate(ErrListAuditRecordsQueryIsNotConstructed)
}

// TableName returns the table filter, empty for all tables.
func (q ListAuditRecordsQuery) TableName() string {
	return q.tableName
}

// RecordID returns the record filter, empty for all records.
func (q ListAuditRecordsQuery) RecordID() string {
	return q.recordID
}

// Limit returns the maximum number of entries to return.
func (q ListAuditRecordsQuery) Limit() int {
	return q.limit
}

// ListAuditRecordsQueryResponse is one audit trail entry as served to
// administrators. Snapshots are passed through as stored.
type ListAuditRecordsQueryResponse struct {
	ID        uuid.UUID       `json:"id"`
	TableName string          `json:"table_name"`
	RecordID  string          `json:"record_id"`
	Action    string          `json:"action"`
	OldData   json.RawMessage `json:"old_data,omitempty"`
	NewData   json.RawMessage `json:"new_data,omitempty"`
	UserID    *uuid.UUID      `json:"user_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
