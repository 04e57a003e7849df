package commands

import (
	"context"
	"time"
)

// AdvanceParcelStatusCommandHandler moves a parcel forward in the pipeline.
// Transitions outside the table are rejected by the aggregate, so a stale or
// repeated request fails with a domain error instead of silently rewinding
// the parcel. Timestamps are server-assigned.
type AdvanceParcelStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewAdvanceParcelStatusCommandHandler creates a handler for status advancement.
func NewAdvanceParcelStatusCommandHandler(uowFactory ParcelUoWFactory) AdvanceParcelStatusCommandHandler {
	return AdvanceParcelStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the advancement command.
func (h AdvanceParcelStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceParcelStatusCommand) error {
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

	parcelRepo := uow.ParcelRepository()
	parcelAggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = parcelAggregate.AdvanceTo(cmd.Status(), time.Now().UTC()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, parcelAggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
