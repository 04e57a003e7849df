package commands

import (
	"context"
)

// ChangeUserRoleCommandHandler applies an admin role change to a user record.
type ChangeUserRoleCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewChangeUserRoleCommandHandler creates a handler for role changes.
func NewChangeUserRoleCommandHandler(uowFactory UserUoWFactory) ChangeUserRoleCommandHandler {
	return ChangeUserRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the role-change command.
func (h ChangeUserRoleCommandHandler) Handle(ctx context.Context, cmd ChangeUserRoleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	userAggregate, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = userAggregate.ChangeRole(cmd.Role()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, userAggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
