// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Implements the repository pattern for the order domain
// aggregate, handling the conversion between domain entities and database rows.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The identifier is stored in canonical uppercase, so equality lookups are
// effectively case-insensitive as long as callers canonicalize first.
type OrderDTO struct {
	OrderID      string     `gorm:"type:varchar(20);primaryKey"`
	CustomerName string     `gorm:"type:varchar(100)"`
	Phone        string     `gorm:"type:varchar(20)"`
	Items        int        `gorm:"type:integer"`
	Status       int        `gorm:"type:smallint;index"`
	Timestamps   HistoryDTO `gorm:"type:jsonb"`
	CreatedAt    time.Time  `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// HistoryDTO stores the status history as a jsonb array of entries, oldest
// first, mirroring the wire shape of the timestamps field.
type HistoryDTO []HistoryEntryDTO

// HistoryEntryDTO is one persisted status transition.
type HistoryEntryDTO struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Value implements driver.Valuer for jsonb storage.
func (h HistoryDTO) Value() (driver.Value, error) {
	return json.Marshal(h)
}

// Scan implements sql.Scanner for jsonb retrieval.
func (h *HistoryDTO) Scan(value any) error {
	if value == nil {
		*h = nil
		return nil
	}

	switch raw := value.(type) {
	case []byte:
		return json.Unmarshal(raw, h)
	case string:
		return json.Unmarshal([]byte(raw), h)
	default:
		return fmt.Errorf("cannot scan %T into HistoryDTO", value)
	}
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	history := aggregate.History()
	timestamps := make(HistoryDTO, len(history))
	for i, entry := range history {
		timestamps[i] = HistoryEntryDTO{
			Status:    entry.Status.String(),
			Timestamp: entry.Timestamp,
		}
	}

	return OrderDTO{
		OrderID:      aggregate.ID().String(),
		CustomerName: aggregate.CustomerName(),
		Phone:        aggregate.Phone(),
		Items:        aggregate.Items(),
		Status:       int(aggregate.Status()),
		Timestamps:   timestamps,
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its history using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.OrderID)
	if err != nil {
		return nil, err
	}

	history := make([]order.HistoryEntry, len(dto.Timestamps))
	for i, entry := range dto.Timestamps {
		status, statusErr := order.StatusFromString(entry.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		history[i] = order.HistoryEntry{Status: status, Timestamp: entry.Timestamp}
	}

	return order.RestoreOrder(
		id,
		dto.CustomerName,
		dto.Phone,
		dto.Items,
		order.Status(dto.Status),
		history,
		dto.CreatedAt,
	)
}
