package commands

import (
	"errors"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/pkg/guard"
)

var (
	ErrAssignRiderCommandIsNotConstructed = errors.New(
		"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
	)
)

// AssignRiderCommand represents an admin attaching a rider to a pending
// parcel.
type AssignRiderCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	riderID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignRiderCommand creates an assignment command. The rider's name and
// email are resolved from the rider registry inside the handler, never taken
// from the caller.
func NewAssignRiderCommand(parcelID, riderID kernel.UUID) (AssignRiderCommand, error) {
	cmd := AssignRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setRiderID(riderID),
	); err != nil {
		return AssignRiderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

// ParcelID returns the parcel being assigned.
func (c AssignRiderCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// RiderID returns the rider taking the parcel.
func (c AssignRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

func (c *AssignRiderCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *AssignRiderCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	c.riderID = riderID
	return nil
}
