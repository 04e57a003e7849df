package commands

import (
	"errors"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/user"
	"profast/internal/pkg/errs"
	"profast/internal/pkg/guard"
)

var (
	ErrChangeUserRoleCommandIsNotConstructed = errors.New(
		"ChangeUserRoleCommand must be created via NewChangeUserRoleCommand constructor",
	)
)

// ChangeUserRoleCommand represents an admin changing a user's role in the
// directory.
type ChangeUserRoleCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	role   user.Role

	guard guard.ConstructorGuard
}

// NewChangeUserRoleCommand creates a role-change command. Only the user and
// admin roles can be set this way; the rider role is granted exclusively
// through rider approval.
func NewChangeUserRoleCommand(userID kernel.UUID, role user.Role) (ChangeUserRoleCommand, error) {
	cmd := ChangeUserRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setRole(role),
	); err != nil {
		return ChangeUserRoleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeUserRoleCommand) Validate() error {
	return c.guard.Validate(ErrChangeUserRoleCommandIsNotConstructed)
}

// UserID returns the identifier of the record being changed.
func (c ChangeUserRoleCommand) UserID() kernel.UUID {
	return c.userID
}

// Role returns the role to assign.
func (c ChangeUserRoleCommand) Role() user.Role {
	return c.role
}

func (c *ChangeUserRoleCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *ChangeUserRoleCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if !role.IsAssignable() {
		return errs.NewValueIsInvalidError("role")
	}
	c.role = role
	return nil
}
