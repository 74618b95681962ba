package account_test

import (
	"testing"

	"laundry/internal/core/domain/model/account"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	t.Run("should parse valid roles", func(t *testing.T) {
		staff, err := account.RoleFromString("staff")
		require.NoError(t, err)
		assert.Equal(t, account.RoleStaff, staff)

		admin, err := account.RoleFromString("admin")
		require.NoError(t, err)
		assert.Equal(t, account.RoleAdmin, admin)
	})

	t.Run("should reject unknown roles", func(t *testing.T) {
		for _, input := range []string{"", "root", "Admin", "manager"} {
			_, err := account.RoleFromString(input)
			require.Error(t, err, "input %q should be rejected", input)
		}
	})
}

func TestRole_Validate(t *testing.T) {
	require.NoError(t, account.RoleStaff.Validate())
	require.NoError(t, account.RoleAdmin.Validate())
	require.Error(t, account.RoleUnknown.Validate())
	require.Error(t, account.Role(42).Validate())
}

func TestNewAssignment(t *testing.T) {
	t.Run("should create assignment", func(t *testing.T) {
		userID := uuid.New()

		a, err := account.NewAssignment(userID, account.RoleStaff)

		require.NoError(t, err)
		assert.Equal(t, userID, a.UserID)
		assert.Equal(t, account.RoleStaff, a.Role)
		assert.False(t, a.CreatedAt.IsZero())
	})

	t.Run("should reject nil user", func(t *testing.T) {
		_, err := account.NewAssignment(uuid.Nil, account.RoleStaff)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject invalid role", func(t *testing.T) {
		_, err := account.NewAssignment(uuid.New(), account.RoleUnknown)

		require.Error(t, err)
	})
}

func TestCheckRevocation(t *testing.T) {
	actor := uuid.New()
	other := uuid.New()

	t.Run("user cannot revoke own admin role", func(t *testing.T) {
		err := account.CheckRevocation(actor, actor, account.RoleAdmin)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrNotAuthorized)
	})

	t.Run("user can revoke own staff role", func(t *testing.T) {
		require.NoError(t, account.CheckRevocation(actor, actor, account.RoleStaff))
	})

	t.Run("user can revoke another admin", func(t *testing.T) {
		require.NoError(t, account.CheckRevocation(actor, other, account.RoleAdmin))
	})
}
