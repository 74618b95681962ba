package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListAuditRecordsQueryHandler retrieves audit trail entries from the
// database.
type ListAuditRecordsQueryHandler struct {
	db *gorm.DB
}

// NewListAuditRecordsQueryHandler creates a handler for audit listing
// queries.
func NewListAuditRecordsQueryHandler(db *gorm.DB) ListAuditRecordsQueryHandler {
	return ListAuditRecordsQueryHandler{db: db}
}

// Handle executes the listing, newest entries first.
func (h ListAuditRecordsQueryHandler) Handle(
	ctx context.Context,
	query ListAuditRecordsQuery,
) ([]ListAuditRecordsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rowsQuery := `
		SELECT
			id,
			table_name,
			record_id,
			action,
			old_data,
			new_data,
			user_id,
			created_at
		FROM audit_records
	`
	var args []any
	switch {
	case query.TableName() != "" && query.RecordID() != "":
		rowsQuery += ` WHERE table_name = ? AND record_id = ?`
		args = append(args, query.TableName(), query.RecordID())
	case query.TableName() != "":
		rowsQuery += ` WHERE table_name = ?`
		args = append(args, query.TableName())
	case query.RecordID() != "":
		rowsQuery += ` WHERE record_id = ?`
		args = append(args, query.RecordID())
	}
	rowsQuery += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(rowsQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]ListAuditRecordsQueryResponse, 0)
	for rows.Next() {
		var record ListAuditRecordsQueryResponse
		var userID sql.NullString

		err = rows.Scan(
			&record.ID,
			&record.TableName,
			&record.RecordID,
			&record.Action,
			&record.OldData,
			&record.NewData,
			&userID,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if userID.Valid {
			parsed, parseErr := uuid.Parse(userID.String)
			if parseErr != nil {
				return nil, parseErr
			}
			record.UserID = &parsed
		}

		records = append(records, record)
	}

	return records, rows.Err()
}
