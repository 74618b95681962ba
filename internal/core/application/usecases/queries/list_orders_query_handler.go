package queries

import (
	"context"

	"laundry/internal/core/ports"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves the order collection from the database.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing. Ordering is newest first by creation time and
// comes from the database; results are returned as scanned, never re-sorted.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]ports.OrderRecord, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const baseQuery = `
		SELECT
			order_id,
			customer_name,
			phone,
			items,
			status,
			timestamps,
			created_at
		FROM orders
	`

	tx := h.db.WithContext(ctx)
	var rowsQuery = baseQuery + ` ORDER BY created_at DESC`
	var args []any
	if !query.FilterAll() {
		rowsQuery = baseQuery + ` WHERE status = ? ORDER BY created_at DESC`
		args = append(args, int(query.Status()))
	}

	rows, err := tx.Raw(rowsQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]ports.OrderRecord, 0)
	for rows.Next() {
		record, scanErr := scanOrderRecord(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		records = append(records, record)
	}

	return records, rows.Err()
}
