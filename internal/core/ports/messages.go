package ports

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderRecord is the wire shape of an order as it crosses process
// boundaries: persisted snapshots in the audit trail, event payloads on the
// broker, and HTTP responses. Keeping the mapping in one place lets the
// internal Order type evolve independently of the wire contract.
type OrderRecord struct {
	OrderID      string           `json:"order_id"`
	CustomerName string           `json:"customer_name"`
	Phone        string           `json:"phone"`
	Items        int              `json:"items"`
	Status       string           `json:"status"`
	Timestamps   []TimestampEntry `json:"timestamps"`
	CreatedAt    time.Time        `json:"created_at"`
}

// TimestampEntry is one wire-level status history entry.
type TimestampEntry struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types for the order collection broadcast.
const (
	EventOrderCreated = "order.created"
	EventOrderUpdated = "order.updated"
	EventOrderDeleted = "order.deleted"
)

// OrderEvent is one change propagation message. Type is one of the
// EventOrder* constants; Record carries the full current state of the order
// (empty except OrderID for deletes). Observers apply events last-writer-wins
// per OrderID using the embedded record, never merging partial fields.
type OrderEvent struct {
	Type       string      `json:"type"`
	Record     OrderRecord `json:"record"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// OrderRecordFromDomain maps an order aggregate to its wire shape.
func OrderRecordFromDomain(o *order.Order) OrderRecord {
	history := o.History()
	timestamps := make([]TimestampEntry, len(history))
	for i, entry := range history {
		timestamps[i] = TimestampEntry{
			Status:    entry.Status.String(),
			Timestamp: entry.Timestamp,
		}
	}

	return OrderRecord{
		OrderID:      o.ID().String(),
		CustomerName: o.CustomerName(),
		Phone:        o.Phone(),
		Items:        o.Items(),
		Status:       o.Status().String(),
		Timestamps:   timestamps,
		CreatedAt:    o.CreatedAt(),
	}
}

// ToDomain reconstructs an order aggregate from its wire shape.
func (r OrderRecord) ToDomain() (*order.Order, error) {
	id, err := kernel.OrderIDFromString(r.OrderID)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(r.Status)
	if err != nil {
		return nil, err
	}

	history := make([]order.HistoryEntry, len(r.Timestamps))
	for i, entry := range r.Timestamps {
		entryStatus, entryErr := order.StatusFromString(entry.Status)
		if entryErr != nil {
			return nil, entryErr
		}
		history[i] = order.HistoryEntry{Status: entryStatus, Timestamp: entry.Timestamp}
	}

	return order.RestoreOrder(id, r.CustomerName, r.Phone, r.Items, status, history, r.CreatedAt)
}

// PublicRecord returns the privacy-filtered subset served by the public
// tracking endpoint: everything except the phone number.
func (r OrderRecord) PublicRecord() PublicOrderRecord {
	return PublicOrderRecord{
		OrderID:      r.OrderID,
		CustomerName: r.CustomerName,
		Items:        r.Items,
		Status:       r.Status,
		Timestamps:   r.Timestamps,
		CreatedAt:    r.CreatedAt,
	}
}

// PublicOrderRecord is the phone-free order shape safe to return to
// unauthenticated callers.
type PublicOrderRecord struct {
	OrderID      string           `json:"order_id"`
	CustomerName string           `json:"customer_name"`
	Items        int              `json:"items"`
	Status       string           `json:"status"`
	Timestamps   []TimestampEntry `json:"timestamps"`
	CreatedAt    time.Time        `json:"created_at"`
}
