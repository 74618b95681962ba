package queries

import (
	"context"

	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackOrderQueryHandler serves the public tracking lookup. Returns the
// privacy-filtered record shape; the phone number never leaves the process
// through this path.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for public tracking lookups.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle executes the tracking lookup. A code that matches no order returns
// an ObjectNotFoundError; a code failing the shape check never reaches the
// database and fails validation instead.
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (ports.PublicOrderRecord, error) {
	if err := query.Validate(); err != nil {
		return ports.PublicOrderRecord{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			customer_name,
			phone,
			items,
			status,
			timestamps,
			created_at
		FROM orders
		WHERE order_id = ?
	`, query.Code()).Rows()
	if err != nil {
		return ports.PublicOrderRecord{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ports.PublicOrderRecord{}, err
		}
		return ports.PublicOrderRecord{}, errs.NewObjectNotFoundError("code", query.Code())
	}

	record, err := scanOrderRecord(rows)
	if err != nil {
		return ports.PublicOrderRecord{}, err
	}

	return record.PublicRecord(), rows.Err()
}
