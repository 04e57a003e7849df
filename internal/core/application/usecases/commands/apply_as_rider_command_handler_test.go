package commands_test

import (
	"context"
	"errors"
	"testing"

	"profast/internal/core/application/usecases/commands"
	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/rider"
	"profast/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockApplicationRiderRepository struct{ mock.Mock }

func (m *MockApplicationRiderRepository) Add(ctx context.Context, r *rider.Rider) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockApplicationRiderRepository) Update(ctx context.Context, r *rider.Rider) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockApplicationRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rider.Rider), args.Error(1)
}

func (m *MockApplicationRiderRepository) GetAllInDelivery(ctx context.Context) ([]*rider.Rider, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rider.Rider), args.Error(1)
}

type MockApplicationUoW struct{ mock.Mock }

func (m *MockApplicationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockApplicationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockApplicationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockApplicationUoW) RiderRepository() ports.RiderRepository {
	args := m.Called()
	return args.Get(0).(ports.RiderRepository)
}

type MockApplicationUoWFactory struct{ mock.Mock }

func (m *MockApplicationUoWFactory) Create() commands.RiderUoW {
	args := m.Called()
	return args.Get(0).(commands.RiderUoW)
}

func TestApplyAsRiderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	riderID := kernel.NewUUID()
	cmd, err := commands.NewApplyAsRiderCommand(riderID, "Jane Doe", "jane@example.com", "Dhaka")
	require.NoError(t, err)

	riderRepo := new(MockApplicationRiderRepository)
	uow := new(MockApplicationUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Add", ctx, mock.AnythingOfType("*rider.Rider")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockApplicationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApplyAsRiderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	// Applications start pending and idle
	addCall := riderRepo.Calls[0]
	addedRider := addCall.Arguments[1].(*rider.Rider)
	assert.Equal(t, riderID, addedRider.ID())
	assert.Equal(t, rider.StatusPending, addedRider.Status())
	assert.Equal(t, rider.WorkStatusIdle, addedRider.WorkStatus())
}

func TestApplyAsRiderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ApplyAsRiderCommand{} // not constructed properly

	factory := new(MockApplicationUoWFactory)
	handler := commands.NewApplyAsRiderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrApplyAsRiderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestApplyAsRiderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewApplyAsRiderCommand(kernel.NewUUID(), "Jane Doe", "jane@example.com", "Dhaka")
	require.NoError(t, err)

	riderRepo := new(MockApplicationRiderRepository)
	uow := new(MockApplicationUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Add", ctx, mock.AnythingOfType("*rider.Rider")).
			Return(errors.New("database error")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockApplicationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApplyAsRiderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
	uow.AssertNotCalled(t, "Commit", ctx)
}
