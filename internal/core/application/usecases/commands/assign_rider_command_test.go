package commands_test

import (
	"testing"

	"profast/internal/core/application/usecases/commands"
	"profast/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignRiderCommand_ValidInput(t *testing.T) {
	// Arrange
	parcelID := kernel.NewUUID()
	riderID := kernel.NewUUID()

	// Act
	cmd, err := commands.NewAssignRiderCommand(parcelID, riderID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, parcelID, cmd.ParcelID())
	assert.Equal(t, riderID, cmd.RiderID())
}

func TestNewAssignRiderCommand_InvalidIDs(t *testing.T) {
	var invalidID kernel.UUID // zero value

	_, err := commands.NewAssignRiderCommand(invalidID, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewAssignRiderCommand(kernel.NewUUID(), invalidID)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestAssignRiderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.AssignRiderCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAssignRiderCommandIsNotConstructed)
}
