package commands

import (
	"errors"
	"fmt"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/rider"
	"profast/internal/pkg/errs"
	"profast/internal/pkg/guard"
)

var (
	ErrChangeRiderStatusCommandIsNotConstructed = errors.New(
		"ChangeRiderStatusCommand must be created via NewChangeRiderStatusCommand constructor",
	)
)

// ChangeRiderStatusCommand represents an admin decision on a rider
// application: approval or rejection.
type ChangeRiderStatusCommand struct { //nolint:recvcheck //using for validation
	riderID kernel.UUID
	status  rider.Status

	guard guard.ConstructorGuard
}

// NewChangeRiderStatusCommand creates a command carrying the admin's decision.
// Only the active and rejected statuses are valid targets; moving an
// application back to pending is not supported.
func NewChangeRiderStatusCommand(riderID kernel.UUID, status rider.Status) (ChangeRiderStatusCommand, error) {
	cmd := ChangeRiderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRiderID(riderID),
		cmd.setStatus(status),
	); err != nil {
		return ChangeRiderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeRiderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeRiderStatusCommandIsNotConstructed)
}

// RiderID returns the identifier of the application being decided.
func (c ChangeRiderStatusCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Status returns the target approval status.
func (c ChangeRiderStatusCommand) Status() rider.Status {
	return c.status
}

func (c *ChangeRiderStatusCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	c.riderID = riderID
	return nil
}

func (c *ChangeRiderStatusCommand) setStatus(status rider.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status != rider.StatusActive && status != rider.StatusRejected {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a decidable status", status.String()),
		)
	}
	c.status = status
	return nil
}
