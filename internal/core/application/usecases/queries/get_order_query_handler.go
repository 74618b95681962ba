package queries

import (
	"context"

	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns an ObjectNotFoundError when no order
// has the identifier.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (ports.OrderRecord, error) {
	if err := query.Validate(); err != nil {
		return ports.OrderRecord{}, err
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
	`, query.OrderID().String()).Rows()
	if err != nil {
		return ports.OrderRecord{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ports.OrderRecord{}, err
		}
		return ports.OrderRecord{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}

	record, err := scanOrderRecord(rows)
	if err != nil {
		return ports.OrderRecord{}, err
	}

	return record, rows.Err()
}
