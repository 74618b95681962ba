package commands

import (
	"encoding/json"

	"laundry/internal/core/domain/model/audit"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"

	"github.com/google/uuid"
)

const (
	ordersTable          = "orders"
	roleAssignmentsTable = "role_assignments"
)

// newOrderAuditRecord builds the audit entry for one order mutation.
// Snapshots use the wire shape so the trail reads the same as the API.
func newOrderAuditRecord(
	action audit.Action,
	recordID string,
	oldState, newState *order.Order,
	actorID *uuid.UUID,
) (audit.Record, error) {
	var oldData, newData json.RawMessage
	var err error

	if oldState != nil {
		if oldData, err = json.Marshal(ports.OrderRecordFromDomain(oldState)); err != nil {
			return audit.Record{}, err
		}
	}
	if newState != nil {
		if newData, err = json.Marshal(ports.OrderRecordFromDomain(newState)); err != nil {
			return audit.Record{}, err
		}
	}

	return audit.NewRecord(ordersTable, recordID, action, oldData, newData, actorID)
}

// roleSnapshot is the audit snapshot shape for role assignment mutations.
type roleSnapshot struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// newRoleAuditRecord builds the audit entry for one role assignment mutation.
func newRoleAuditRecord(
	action audit.Action,
	userID uuid.UUID,
	role string,
	actorID *uuid.UUID,
) (audit.Record, error) {
	snapshot, err := json.Marshal(roleSnapshot{UserID: userID.String(), Role: role})
	if err != nil {
		return audit.Record{}, err
	}

	var oldData, newData json.RawMessage
	if action == audit.ActionDelete {
		oldData = snapshot
	} else {
		newData = snapshot
	}

	return audit.NewRecord(roleAssignmentsTable, userID.String(), action, oldData, newData, actorID)
}
