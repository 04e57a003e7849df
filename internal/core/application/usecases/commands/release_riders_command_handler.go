package commands

import (
	"context"
)

// ReleaseRidersCommandHandler returns riders to the idle pool once all of
// their assigned parcels have left the active statuses. Assignment marks a
// rider as in delivery; nothing in the delivery flow flips the flag back, so
// this periodic sweep is what closes the loop.
type ReleaseRidersCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewReleaseRidersCommandHandler creates a handler for rider reconciliation.
func NewReleaseRidersCommandHandler(uowFactory AssignmentUoWFactory) ReleaseRidersCommandHandler {
	return ReleaseRidersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle sweeps all in-delivery riders in one transaction. Riders that still
// have parcels in the rider-assigned or in-transit statuses are left alone.
func (h ReleaseRidersCommandHandler) Handle(ctx context.Context, cmd ReleaseRidersCommand) error {
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

	riderRepo := uow.RiderRepository()
	parcelRepo := uow.ParcelRepository()

	riders, err := riderRepo.GetAllInDelivery(ctx)
	if err != nil {
		return err
	}

	for _, riderAggregate := range riders {
		hasActive, err := parcelRepo.HasActiveForRider(ctx, riderAggregate.ID())
		if err != nil {
			return err
		}
		if hasActive {
			continue
		}

		riderAggregate.FinishDelivery()
		if err = riderRepo.Update(ctx, riderAggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
