package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/audit"
)

// AuditRepository defines the persistence contract for the audit trail.
type AuditRepository interface {
	// Append stores one audit record. The trail is append-only; records are
	// never updated.
	Append(ctx context.Context, record audit.Record) error

	// PurgeOlderThan deletes records created before the cutoff and returns
	// how many were removed. Used by the retention job; the trail is
	// otherwise immutable.
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
