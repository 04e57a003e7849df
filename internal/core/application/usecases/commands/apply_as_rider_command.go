package commands

import (
	"errors"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/pkg/errs"
	"profast/internal/pkg/guard"
)

var (
	ErrApplyAsRiderCommandIsNotConstructed = errors.New(
		"ApplyAsRiderCommand must be created via NewApplyAsRiderCommand constructor",
	)
)

// ApplyAsRiderCommand represents a user's application to join the rider
// pool. Applications start pending and are approved or rejected by an admin.
type ApplyAsRiderCommand struct { //nolint:recvcheck //using for validation
	riderID  kernel.UUID
	name     string
	email    string
	district string

	guard guard.ConstructorGuard
}

// NewApplyAsRiderCommand creates a rider application command.
// All identity fields are required.
func NewApplyAsRiderCommand(riderID kernel.UUID, name, email, district string) (ApplyAsRiderCommand, error) {
	cmd := ApplyAsRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRiderID(riderID),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setDistrict(district),
	); err != nil {
		return ApplyAsRiderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyAsRiderCommand) Validate() error {
	return c.guard.Validate(ErrApplyAsRiderCommandIsNotConstructed)
}

// RiderID returns the identifier for the application to create.
func (c ApplyAsRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Name returns the applicant's display name.
func (c ApplyAsRiderCommand) Name() string {
	return c.name
}

// Email returns the applicant's email.
func (c ApplyAsRiderCommand) Email() string {
	return c.email
}

// District returns the delivery district applied for.
func (c ApplyAsRiderCommand) District() string {
	return c.district
}

func (c *ApplyAsRiderCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	c.riderID = riderID
	return nil
}

func (c *ApplyAsRiderCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *ApplyAsRiderCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *ApplyAsRiderCommand) setDistrict(district string) error {
	if district == "" {
		return errs.NewValueIsRequiredError("district")
	}
	c.district = district
	return nil
}
