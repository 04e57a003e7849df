package commands_test

import (
	"testing"

	"profast/internal/core/application/usecases/commands"
	"profast/internal/core/domain/model/kernel"
	"profast/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplyAsRiderCommand_ValidInput(t *testing.T) {
	// Arrange
	riderID := kernel.NewUUID()

	// Act
	cmd, err := commands.NewApplyAsRiderCommand(riderID, "Jane Doe", "jane@example.com", "Dhaka")

	// Assert
	require.NoError(t, err)
	assert.NotZero(t, cmd)
	assert.Equal(t, riderID, cmd.RiderID())
	assert.Equal(t, "Jane Doe", cmd.Name())
	assert.Equal(t, "jane@example.com", cmd.Email())
	assert.Equal(t, "Dhaka", cmd.District())
}

func TestNewApplyAsRiderCommand_MissingFields(t *testing.T) {
	testCases := []struct {
		name     string
		rider    string
		email    string
		district string
	}{
		{name: "empty name", rider: "", email: "jane@example.com", district: "Dhaka"},
		{name: "empty email", rider: "Jane Doe", email: "", district: "Dhaka"},
		{name: "empty district", rider: "Jane Doe", email: "jane@example.com", district: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewApplyAsRiderCommand(kernel.NewUUID(), tc.rider, tc.email, tc.district)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		})
	}
}

func TestNewApplyAsRiderCommand_MultipleCombinedErrors(t *testing.T) {
	var invalidID kernel.UUID // zero value

	_, err := commands.NewApplyAsRiderCommand(invalidID, "", "", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "email")
	assert.Contains(t, err.Error(), "district")
}

func TestApplyAsRiderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.ApplyAsRiderCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrApplyAsRiderCommandIsNotConstructed)
}
