// Package audit contains the audit trail entry recorded for every mutation
// of the order collection and the role table. Records are append-only; the
// trail is read by admins and pruned only by the retention job.
package audit

import (
	"encoding/json"
	"time"

	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
)

// Action identifies the kind of mutation a record describes.
type Action string

const (
	ActionInsert Action = "INSERT"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// Validate checks that the action is one of the three mutation kinds.
func (a Action) Validate() error {
	switch a {
	case ActionInsert, ActionUpdate, ActionDelete:
		return nil
	}
	return errs.NewValueIsInvalidError("action")
}

// Record is one audit trail entry: which table, which record, what changed,
// and who did it. OldData and NewData hold the record snapshots before and
// after the mutation; either may be empty (no before-image on insert, no
// after-image on delete).
type Record struct {
	ID        uuid.UUID
	TableName string
	RecordID  string
	Action    Action
	OldData   json.RawMessage
	NewData   json.RawMessage
	UserID    *uuid.UUID
	CreatedAt time.Time
}

// NewRecord creates an audit record stamped with the current time.
// userID may be nil for mutations without an authenticated actor.
func NewRecord(
	tableName, recordID string,
	action Action,
	oldData, newData json.RawMessage,
	userID *uuid.UUID,
) (Record, error) {
	if tableName == "" {
		return Record{}, errs.NewValueIsRequiredError("tableName")
	}
	if recordID == "" {
		return Record{}, errs.NewValueIsRequiredError("recordId")
	}
	if err := action.Validate(); err != nil {
		return Record{}, err
	}

	return Record{
		ID:        uuid.New(),
		TableName: tableName,
		RecordID:  recordID,
		Action:    action,
		OldData:   oldData,
		NewData:   newData,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}, nil
}
