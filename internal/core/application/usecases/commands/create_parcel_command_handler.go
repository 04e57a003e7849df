package commands

import (
	"context"
	"time"

	"profast/internal/core/domain/model/parcel"
)

// CreateParcelCommandHandler handles parcel creation. New parcels enter the
// pipeline in the pending delivery status with an unpaid settlement flag.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCreateParcelCommandHandler creates a handler for parcel creation.
func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel creation command.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newParcel, err := parcel.NewParcel(cmd.ParcelID(), cmd.CreatedBy(), cmd.Title(), time.Now().UTC())
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

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
