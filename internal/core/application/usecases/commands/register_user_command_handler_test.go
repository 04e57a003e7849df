package commands_test

import (
	"context"
	"errors"
	"testing"

	"profast/internal/core/application/usecases/commands"
	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/user"
	"profast/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRegistrationUserRepository struct{ mock.Mock }

func (m *MockRegistrationUserRepository) AddIfAbsent(ctx context.Context, u *user.User) (bool, error) {
	args := m.Called(ctx, u)
	return args.Bool(0), args.Error(1)
}

func (m *MockRegistrationUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRegistrationUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockRegistrationUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockRegistrationUoW struct{ mock.Mock }

func (m *MockRegistrationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRegistrationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRegistrationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRegistrationUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockRegistrationUoWFactory struct{ mock.Mock }

func (m *MockRegistrationUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

func TestRegisterUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "jane@example.com", "Jane Doe")
	require.NoError(t, err)

	userRepo := new(MockRegistrationUserRepository)
	uow := new(MockRegistrationUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("AddIfAbsent", ctx, mock.AnythingOfType("*user.User")).Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRegistrationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterUserCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_AlreadyRegistered(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "jane@example.com", "Jane Doe")
	require.NoError(t, err)

	userRepo := new(MockRegistrationUserRepository)
	uow := new(MockRegistrationUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("AddIfAbsent", ctx, mock.AnythingOfType("*user.User")).Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRegistrationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterUserCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUserAlreadyRegistered)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestRegisterUserCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterUserCommand{} // not constructed properly

	factory := new(MockRegistrationUoWFactory)
	handler := commands.NewRegisterUserCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRegisterUserCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestRegisterUserCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "jane@example.com", "Jane Doe")
	require.NoError(t, err)

	uow := new(MockRegistrationUoW)
	factory := new(MockRegistrationUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewRegisterUserCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "begin error")
}

func TestRegisterUserCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "jane@example.com", "Jane Doe")
	require.NoError(t, err)

	userRepo := new(MockRegistrationUserRepository)
	uow := new(MockRegistrationUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("AddIfAbsent", ctx, mock.AnythingOfType("*user.User")).
			Return(false, errors.New("database error")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRegistrationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterUserCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
}
