package auditrepo

import (
	"encoding/json"
	"testing"

	"laundry/internal/core/domain/model/audit"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordDTO_Mapping(t *testing.T) {
	t.Run("should map a domain record onto the audit_records columns", func(t *testing.T) {
		actor := uuid.New()
		record, err := audit.NewRecord(
			"orders",
			"LD-KQJ3F2-8X1Z",
			audit.ActionUpdate,
			json.RawMessage(`{"status":"washing"}`),
			json.RawMessage(`{"status":"ironing"}`),
			&actor,
		)
		require.NoError(t, err)

		dto := fromDomain(record)

		assert.Equal(t, record.ID, dto.ID)
		assert.Equal(t, "orders", dto.Table)
		assert.Equal(t, "LD-KQJ3F2-8X1Z", dto.RecordID)
		assert.Equal(t, "UPDATE", dto.Action)
		assert.JSONEq(t, `{"status":"washing"}`, string(dto.OldData))
		assert.JSONEq(t, `{"status":"ironing"}`, string(dto.NewData))
		assert.Equal(t, &actor, dto.UserID)
		assert.Equal(t, record.CreatedAt, dto.CreatedAt)
	})

	t.Run("should persist into the audit_records table", func(t *testing.T) {
		assert.Equal(t, "audit_records", RecordDTO{}.TableName())
	})
}
