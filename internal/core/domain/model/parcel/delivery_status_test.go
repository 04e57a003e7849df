package parcel_test

import (
	"testing"

	"profast/internal/core/domain/model/parcel"
	"profast/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryStatusFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected parcel.DeliveryStatus
	}{
		{"pending", parcel.DeliveryStatusPending},
		{"rider_assigned", parcel.DeliveryStatusRiderAssigned},
		{"in_transit", parcel.DeliveryStatusInTransit},
		{"delivered", parcel.DeliveryStatusDelivered},
		{"service_center_delivered", parcel.DeliveryStatusServiceCenterDelivered},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			status, err := parcel.DeliveryStatusFromString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}

	t.Run("empty_is_required_error", func(t *testing.T) {
		_, err := parcel.DeliveryStatusFromString("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown_value_is_rejected", func(t *testing.T) {
		_, err := parcel.DeliveryStatusFromString("teleported")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDeliveryStatus_TransitionTo(t *testing.T) {
	t.Run("allowed_transitions", func(t *testing.T) {
		allowed := []struct {
			from parcel.DeliveryStatus
			to   parcel.DeliveryStatus
		}{
			{parcel.DeliveryStatusPending, parcel.DeliveryStatusRiderAssigned},
			{parcel.DeliveryStatusRiderAssigned, parcel.DeliveryStatusInTransit},
			{parcel.DeliveryStatusInTransit, parcel.DeliveryStatusDelivered},
			{parcel.DeliveryStatusInTransit, parcel.DeliveryStatusServiceCenterDelivered},
		}

		for _, tr := range allowed {
			next, err := tr.from.TransitionTo(tr.to)
			require.NoError(t, err, "%s -> %s", tr.from, tr.to)
			assert.Equal(t, tr.to, next)
		}
	})

	t.Run("forward_jumps_are_rejected", func(t *testing.T) {
		_, err := parcel.DeliveryStatusPending.TransitionTo(parcel.DeliveryStatusDelivered)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("regressions_are_rejected", func(t *testing.T) {
		_, err := parcel.DeliveryStatusInTransit.TransitionTo(parcel.DeliveryStatusRiderAssigned)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("terminal_statuses_allow_nothing", func(t *testing.T) {
		for _, terminal := range []parcel.DeliveryStatus{
			parcel.DeliveryStatusDelivered,
			parcel.DeliveryStatusServiceCenterDelivered,
		} {
			_, err := terminal.TransitionTo(parcel.DeliveryStatusInTransit)
			require.Error(t, err)
		}
	})

	t.Run("unknown_target_is_rejected", func(t *testing.T) {
		_, err := parcel.DeliveryStatusPending.TransitionTo(parcel.DeliveryStatusUnknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDeliveryStatus_IsCompleted(t *testing.T) {
	assert.True(t, parcel.DeliveryStatusDelivered.IsCompleted())
	assert.True(t, parcel.DeliveryStatusServiceCenterDelivered.IsCompleted())
	assert.False(t, parcel.DeliveryStatusPending.IsCompleted())
	assert.False(t, parcel.DeliveryStatusRiderAssigned.IsCompleted())
	assert.False(t, parcel.DeliveryStatusInTransit.IsCompleted())
}

func TestDeliveryStatus_String(t *testing.T) {
	assert.Equal(t, "pending", parcel.DeliveryStatusPending.String())
	assert.Equal(t, "service_center_delivered", parcel.DeliveryStatusServiceCenterDelivered.String())
	assert.Equal(t, "unknown", parcel.DeliveryStatus(42).String())
}
