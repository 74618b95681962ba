// Package queries contains read-only operations for retrieving system state.
// Implements the Query pattern of the CQRS architecture: handlers read
// through GORM with raw SQL for performance, bypassing the aggregate
// repositories, and return wire-shaped read models.
package queries

import (
	"database/sql"
	"encoding/json"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
)

// scanOrderRecord reads one row of the standard order projection
// (order_id, customer_name, phone, items, status, timestamps, created_at)
// into its wire shape.
func scanOrderRecord(rows *sql.Rows) (ports.OrderRecord, error) {
	var record ports.OrderRecord
	var status int
	var timestampsRaw []byte

	err := rows.Scan(
		&record.OrderID,
		&record.CustomerName,
		&record.Phone,
		&record.Items,
		&status,
		&timestampsRaw,
		&record.CreatedAt,
	)
	if err != nil {
		return ports.OrderRecord{}, err
	}

	record.Status = order.Status(status).String()
	if err = json.Unmarshal(timestampsRaw, &record.Timestamps); err != nil {
		return ports.OrderRecord{}, err
	}

	return record, nil
}
