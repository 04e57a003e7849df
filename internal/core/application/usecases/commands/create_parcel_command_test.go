package commands_test

import (
	"testing"

	"profast/internal/core/application/usecases/commands"
	"profast/internal/core/domain/model/kernel"
	"profast/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateParcelCommand_ValidInput(t *testing.T) {
	// Arrange
	parcelID := kernel.NewUUID()

	// Act
	cmd, err := commands.NewCreateParcelCommand(parcelID, "sender@example.com", "books")

	// Assert
	require.NoError(t, err)
	assert.NotZero(t, cmd)
	assert.Equal(t, parcelID, cmd.ParcelID())
	assert.Equal(t, "sender@example.com", cmd.CreatedBy())
	assert.Equal(t, "books", cmd.Title())
}

func TestNewCreateParcelCommand_EmptyTitle(t *testing.T) {
	// The title is free-form and may be empty.
	cmd, err := commands.NewCreateParcelCommand(kernel.NewUUID(), "sender@example.com", "")

	require.NoError(t, err)
	assert.Empty(t, cmd.Title())
}

func TestNewCreateParcelCommand_EmptyCreatedBy(t *testing.T) {
	_, err := commands.NewCreateParcelCommand(kernel.NewUUID(), "", "books")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateParcelCommand_InvalidParcelID(t *testing.T) {
	var invalidID kernel.UUID // zero value

	_, err := commands.NewCreateParcelCommand(invalidID, "sender@example.com", "books")

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateParcelCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateParcelCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateParcelCommandIsNotConstructed)
}
