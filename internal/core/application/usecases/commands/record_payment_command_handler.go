package commands

import (
	"context"
	"errors"
	"time"

	"profast/internal/core/domain/model/payment"
)

// ErrParcelNotFoundOrAlreadyPaid reports that the settlement's conditional
// update matched no row: the parcel does not exist or its payment flag was
// already flipped by an earlier settlement. Either way nothing was written.
var ErrParcelNotFoundOrAlreadyPaid = errors.New("parcel not found or already paid")

// RecordPaymentCommandHandler settles a parcel exactly once. The parcel's
// payment flag is flipped by a conditional update that matches only the
// unpaid state, then the ledger entry is appended; both writes share one
// transaction. Under concurrent settlement attempts the database serializes
// the conditional updates, so exactly one attempt flips the flag and writes
// a ledger entry, and every other attempt observes zero affected rows.
type RecordPaymentCommandHandler struct {
	uowFactory SettlementUoWFactory
}

// NewRecordPaymentCommandHandler creates a handler for payment settlement.
func NewRecordPaymentCommandHandler(uowFactory SettlementUoWFactory) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the settlement command. Returns
// ErrParcelNotFoundOrAlreadyPaid when the flag was not flipped.
func (h RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newPayment, err := payment.NewPayment(
		cmd.PaymentID(),
		cmd.ParcelID(),
		cmd.Email(),
		cmd.Amount(),
		cmd.Method(),
		cmd.TransactionID(),
		time.Now().UTC(),
	)
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

	flipped, err := uow.ParcelRepository().MarkPaid(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}
	if !flipped {
		return ErrParcelNotFoundOrAlreadyPaid
	}

	if err = uow.PaymentRepository().Add(ctx, newPayment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
