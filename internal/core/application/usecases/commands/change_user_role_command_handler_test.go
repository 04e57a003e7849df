package commands_test

import (
	"context"
	"testing"
	"time"

	"profast/internal/core/application/usecases/commands"
	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/user"
	"profast/internal/core/ports"
	"profast/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRoleUserRepository struct{ mock.Mock }

func (m *MockRoleUserRepository) AddIfAbsent(ctx context.Context, u *user.User) (bool, error) {
	args := m.Called(ctx, u)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoleUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRoleUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockRoleUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockRoleUoW struct{ mock.Mock }

func (m *MockRoleUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRoleUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRoleUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRoleUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockRoleUoWFactory struct{ mock.Mock }

func (m *MockRoleUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

func TestChangeUserRoleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd, err := commands.NewChangeUserRoleCommand(userID, user.RoleAdmin)
	require.NoError(t, err)

	testUser, err := user.NewUser(userID, "jane@example.com", "Jane Doe", time.Now().UTC())
	require.NoError(t, err)

	userRepo := new(MockRoleUserRepository)
	uow := new(MockRoleUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, userID).Return(testUser, nil).Once(),
		userRepo.On("Update", ctx, mock.AnythingOfType("*user.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRoleUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeUserRoleCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, testUser.Role())
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeUserRoleCommandHandler_Handle_UserNotFound(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd, err := commands.NewChangeUserRoleCommand(userID, user.RoleAdmin)
	require.NoError(t, err)

	userRepo := new(MockRoleUserRepository)
	uow := new(MockRoleUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, userID).
			Return(nil, errs.NewObjectNotFoundError("userID", userID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRoleUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeUserRoleCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	userRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestChangeUserRoleCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ChangeUserRoleCommand{} // not constructed properly

	factory := new(MockRoleUoWFactory)
	handler := commands.NewChangeUserRoleCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrChangeUserRoleCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
