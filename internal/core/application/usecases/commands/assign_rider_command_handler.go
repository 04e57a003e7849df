package commands

import (
	"context"
)

// AssignRiderCommandHandler attaches a rider to a pending parcel. The parcel
// records the rider's identity and moves to the rider-assigned status; the
// rider is marked as in delivery. Both writes share one transaction, so a
// failed rider update never leaves a parcel pointing at an idle rider.
type AssignRiderCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignRiderCommandHandler creates a handler for rider assignment.
func NewAssignRiderCommandHandler(uowFactory AssignmentUoWFactory) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command. A missing parcel or rider
// surfaces as a not-found error from the repository; a non-pending parcel or
// a non-active rider fails domain validation before anything is written.
func (h AssignRiderCommandHandler) Handle(ctx context.Context, cmd AssignRiderCommand) error {
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
	riderRepo := uow.RiderRepository()

	parcelAggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	riderAggregate, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	if err = riderAggregate.StartDelivery(); err != nil {
		return err
	}

	if err = parcelAggregate.AssignRider(
		riderAggregate.ID(),
		riderAggregate.Name(),
		riderAggregate.Email(),
	); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, parcelAggregate); err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, riderAggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
