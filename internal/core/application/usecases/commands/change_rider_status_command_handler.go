package commands

import (
	"context"
	"errors"

	"profast/internal/core/domain/model/rider"
	"profast/internal/pkg/errs"
)

// ChangeRiderStatusCommandHandler applies an admin decision to a rider
// application. Approval activates the application and, in the same
// transaction, promotes the matching user record to the rider role.
type ChangeRiderStatusCommandHandler struct {
	uowFactory ApprovalUoWFactory
}

// NewChangeRiderStatusCommandHandler creates a handler for rider decisions.
func NewChangeRiderStatusCommandHandler(uowFactory ApprovalUoWFactory) ChangeRiderStatusCommandHandler {
	return ChangeRiderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the decision command. Promotion is skipped when no user
// record exists for the rider's email: the application may predate the
// rider's first sign-in. Repeating an approval re-runs the promotion, which
// is a no-op on an already promoted record.
func (h ChangeRiderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeRiderStatusCommand) error {
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
	riderAggregate, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	switch cmd.Status() {
	case rider.StatusActive:
		if err = riderAggregate.Approve(); err != nil {
			return err
		}
	case rider.StatusRejected:
		if err = riderAggregate.Reject(); err != nil {
			return err
		}
	default:
		return errs.NewValueIsInvalidError("status")
	}

	if err = riderRepo.Update(ctx, riderAggregate); err != nil {
		return err
	}

	if cmd.Status() == rider.StatusActive {
		if err = h.promoteUser(ctx, uow, riderAggregate.Email()); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h ChangeRiderStatusCommandHandler) promoteUser(ctx context.Context, uow ApprovalUoW, email string) error {
	userRepo := uow.UserRepository()
	userAggregate, err := userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	userAggregate.PromoteToRider()
	return userRepo.Update(ctx, userAggregate)
}
