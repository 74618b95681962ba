package commands

import (
	"errors"
	"time"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrPurgeAuditRecordsCommandIsNotConstructed = errors.New(
	"PurgeAuditRecordsCommand must be created via NewPurgeAuditRecordsCommand constructor",
)

// PurgeAuditRecordsCommand represents a retention sweep over the audit
// trail: every record created before the cutoff is removed.
type PurgeAuditRecordsCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewPurgeAuditRecordsCommand creates a purge command for the given cutoff.
func NewPurgeAuditRecordsCommand(cutoff time.Time) (PurgeAuditRecordsCommand, error) {
	if cutoff.IsZero() {
		return PurgeAuditRecordsCommand{}, errs.NewValueIsRequiredError("cutoff")
	}

	return PurgeAuditRecordsCommand{cutoff: cutoff, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeAuditRecordsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeAuditRecordsCommandIsNotConstructed)
}

// Cutoff returns the retention boundary; records older than this go away.
func (c PurgeAuditRecordsCommand) Cutoff() time.Time {
	return c.cutoff
}
