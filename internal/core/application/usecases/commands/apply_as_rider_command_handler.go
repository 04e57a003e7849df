package commands

import (
	"context"

	"profast/internal/core/domain/model/rider"
)

// ApplyAsRiderCommandHandler handles rider application submission.
type ApplyAsRiderCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewApplyAsRiderCommandHandler creates a handler for rider applications.
func NewApplyAsRiderCommandHandler(uowFactory RiderUoWFactory) ApplyAsRiderCommandHandler {
	return ApplyAsRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rider application command. The application enters the
// registry in the pending status with an idle work status.
func (h ApplyAsRiderCommandHandler) Handle(ctx context.Context, cmd ApplyAsRiderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newRider, err := rider.NewRider(cmd.RiderID(), cmd.Name(), cmd.Email(), cmd.District())
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

	if err = uow.RiderRepository().Add(ctx, newRider); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
