package commands_test

import (
	"testing"

	"profast/internal/core/application/usecases/commands"
	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/rider"
	"profast/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeRiderStatusCommand_ValidInput(t *testing.T) {
	testCases := []struct {
		name   string
		status rider.Status
	}{
		{name: "approve", status: rider.StatusActive},
		{name: "reject", status: rider.StatusRejected},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			riderID := kernel.NewUUID()

			cmd, err := commands.NewChangeRiderStatusCommand(riderID, tc.status)

			require.NoError(t, err)
			assert.Equal(t, riderID, cmd.RiderID())
			assert.Equal(t, tc.status, cmd.Status())
		})
	}
}

func TestNewChangeRiderStatusCommand_PendingIsNotDecidable(t *testing.T) {
	// An admin decision is approve or reject; moving an application back to
	// pending is not supported.
	_, err := commands.NewChangeRiderStatusCommand(kernel.NewUUID(), rider.StatusPending)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewChangeRiderStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewChangeRiderStatusCommand(kernel.NewUUID(), rider.StatusUnknown)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestChangeRiderStatusCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.ChangeRiderStatusCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrChangeRiderStatusCommandIsNotConstructed)
}
