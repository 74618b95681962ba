// Package eventcache maintains an in-memory projection of the order
// collection, seeded by one refetch at startup and reconciled through
// broadcast events from then on. Periodic sweeps read from it without
// touching the database; a missed event heals on the next event for the
// same order because every event carries the full record.
package eventcache

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"laundry/internal/core/ports"
)

// OrderCache is the event-driven order projection. Events apply
// last-writer-wins per identifier: the newest event's record replaces the
// stored one wholesale, never a field-by-field merge.
type OrderCache struct {
	mu        sync.RWMutex
	orders    map[string]ports.OrderRecord
	appliedAt map[string]time.Time
	logger    *slog.Logger
}

// NewOrderCache creates an empty projection.
func NewOrderCache(logger *slog.Logger) *OrderCache {
	return &OrderCache{
		orders:    make(map[string]ports.OrderRecord),
		appliedAt: make(map[string]time.Time),
		logger:    logger.With("component", "order_cache"),
	}
}

// Apply folds one event into the projection. An update for an order the
// cache has never seen inserts it, so a consumer that joined mid-stream
// converges without replay. Events older than the one already applied for
// the same order are dropped.
func (c *OrderCache) Apply(event ports.OrderEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := event.Record.OrderID
	if id == "" {
		c.logger.Warn("Dropping event without an order identifier", "type", event.Type)
		return
	}

	if applied, ok := c.appliedAt[id]; ok && event.OccurredAt.Before(applied) {
		return
	}

	switch event.Type {
	case ports.EventOrderCreated, ports.EventOrderUpdated:
		c.orders[id] = event.Record
		c.appliedAt[id] = event.OccurredAt
	case ports.EventOrderDeleted:
		delete(c.orders, id)
		c.appliedAt[id] = event.OccurredAt
	default:
		c.logger.Warn("Dropping event of unknown type", "type", event.Type, "order_id", id)
	}
}

// Replace rebuilds the projection from an authoritative listing. This is the
// refetch path, used at startup before the first event arrives; afterwards
// events are the only mutation source.
func (c *OrderCache) Replace(records []ports.OrderRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.orders = make(map[string]ports.OrderRecord, len(records))
	c.appliedAt = make(map[string]time.Time, len(records))
	now := time.Now().UTC()
	for _, record := range records {
		if record.OrderID == "" {
			continue
		}
		c.orders[record.OrderID] = record
		c.appliedAt[record.OrderID] = now
	}
}

// Snapshot returns the cached collection newest first by creation time,
// matching the dashboard listing order.
func (c *OrderCache) Snapshot() []ports.OrderRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()

	records := make([]ports.OrderRecord, 0, len(c.orders))
	for _, record := range c.orders {
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	return records
}
