package commands_test

import (
	"testing"

	"profast/internal/core/application/usecases/commands"
	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/user"
	"profast/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeUserRoleCommand_ValidInput(t *testing.T) {
	testCases := []struct {
		name string
		role user.Role
	}{
		{name: "promote to admin", role: user.RoleAdmin},
		{name: "demote to user", role: user.RoleUser},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			userID := kernel.NewUUID()

			cmd, err := commands.NewChangeUserRoleCommand(userID, tc.role)

			require.NoError(t, err)
			assert.Equal(t, userID, cmd.UserID())
			assert.Equal(t, tc.role, cmd.Role())
		})
	}
}

func TestNewChangeUserRoleCommand_RiderRoleIsNotAssignable(t *testing.T) {
	// The rider role is granted exclusively through rider approval
	_, err := commands.NewChangeUserRoleCommand(kernel.NewUUID(), user.RoleRider)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewChangeUserRoleCommand_UnknownRole(t *testing.T) {
	_, err := commands.NewChangeUserRoleCommand(kernel.NewUUID(), user.RoleUnknown)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestChangeUserRoleCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.ChangeUserRoleCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrChangeUserRoleCommandIsNotConstructed)
}
