package commands

import (
	"errors"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/pkg/errs"
	"profast/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
)

// RegisterUserCommand represents a first-sign-in registration. Registration
// is idempotent per email: repeating the command for a known email changes
// nothing and is reported as ErrUserAlreadyRegistered.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	email  string
	name   string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a user record.
// The email is required; the display name may be empty.
func NewRegisterUserCommand(userID kernel.UUID, email, name string) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setEmail(email),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	cmd.name = name
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier for the record to create.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Email returns the registering caller's email.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Name returns the caller's display name.
func (c RegisterUserCommand) Name() string {
	return c.name
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}
