package commands

import (
	"errors"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/parcel"
	"profast/internal/pkg/guard"
)

var (
	ErrAdvanceParcelStatusCommandIsNotConstructed = errors.New(
		"AdvanceParcelStatusCommand must be created via NewAdvanceParcelStatusCommand constructor",
	)
)

// AdvanceParcelStatusCommand represents a request to move a parcel forward
// in the fulfillment pipeline.
type AdvanceParcelStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	status   parcel.DeliveryStatus

	guard guard.ConstructorGuard
}

// NewAdvanceParcelStatusCommand creates a command carrying the target
// delivery status. Whether the move is legal from the parcel's current
// status is decided by the aggregate, not here.
func NewAdvanceParcelStatusCommand(
	parcelID kernel.UUID,
	status parcel.DeliveryStatus,
) (AdvanceParcelStatusCommand, error) {
	cmd := AdvanceParcelStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setStatus(status),
	); err != nil {
		return AdvanceParcelStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceParcelStatusCommandIsNotConstructed)
}

// ParcelID returns the parcel being advanced.
func (c AdvanceParcelStatusCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Status returns the target delivery status.
func (c AdvanceParcelStatusCommand) Status() parcel.DeliveryStatus {
	return c.status
}

func (c *AdvanceParcelStatusCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *AdvanceParcelStatusCommand) setStatus(status parcel.DeliveryStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
