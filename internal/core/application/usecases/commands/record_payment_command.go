package commands

import (
	"errors"
	"fmt"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/pkg/errs"
	"profast/internal/pkg/guard"
)

var (
	ErrRecordPaymentCommandIsNotConstructed = errors.New(
		"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
	)
)

// RecordPaymentCommand represents a settlement confirmation for a parcel:
// the gateway charge succeeded and the payment must be recorded.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID     kernel.UUID
	parcelID      kernel.UUID
	email         string
	amount        int64
	method        string
	transactionID string

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a settlement command. The amount is in the
// smallest currency unit and must be positive.
func NewRecordPaymentCommand(
	paymentID kernel.UUID,
	parcelID kernel.UUID,
	email string,
	amount int64,
	method string,
	transactionID string,
) (RecordPaymentCommand, error) {
	cmd := RecordPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setParcelID(parcelID),
		cmd.setEmail(email),
		cmd.setAmount(amount),
		cmd.setMethod(method),
		cmd.setTransactionID(transactionID),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// PaymentID returns the identifier for the ledger entry to create.
func (c RecordPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// ParcelID returns the parcel being settled.
func (c RecordPaymentCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Email returns the payer's email.
func (c RecordPaymentCommand) Email() string {
	return c.email
}

// Amount returns the charged amount in the smallest currency unit.
func (c RecordPaymentCommand) Amount() int64 {
	return c.amount
}

// Method returns the payment method identifier.
func (c RecordPaymentCommand) Method() string {
	return c.method
}

// TransactionID returns the gateway transaction reference.
func (c RecordPaymentCommand) TransactionID() string {
	return c.transactionID
}

func (c *RecordPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}
	c.paymentID = paymentID
	return nil
}

func (c *RecordPaymentCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *RecordPaymentCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *RecordPaymentCommand) setAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%d is not greater than 0", amount))
	}
	c.amount = amount
	return nil
}

func (c *RecordPaymentCommand) setMethod(method string) error {
	if method == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	c.method = method
	return nil
}

func (c *RecordPaymentCommand) setTransactionID(transactionID string) error {
	if transactionID == "" {
		return errs.NewValueIsRequiredError("transactionId")
	}
	c.transactionID = transactionID
	return nil
}
