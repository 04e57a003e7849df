package commands

import (
	"context"
	"errors"
	"time"

	"profast/internal/core/domain/model/user"
)

// ErrUserAlreadyRegistered reports that the email is already present in the
// directory. The existing record is left untouched.
var ErrUserAlreadyRegistered = errors.New("user already registered")

// RegisterUserCommandHandler handles idempotent user registration.
// A fresh record always starts with the regular user role.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for user registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command. When the email already has a
// record, nothing is written and ErrUserAlreadyRegistered is returned so the
// caller can report the no-op distinctly from a failure.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newUser, err := user.NewUser(cmd.UserID(), cmd.Email(), cmd.Name(), time.Now().UTC())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	created, err := uow.UserRepository().AddIfAbsent(ctx, newUser)
	if err != nil {
		return err
	}
	if !created {
		return ErrUserAlreadyRegistered
	}

	return uow.Commit(ctx)
}
