package payment

import (
	"errors"
	"fmt"
	"time"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/pkg/errs"
	"profast/internal/pkg/guard"
)

// Domain errors for payment records.
var (
	// ErrPaymentIsNotConstructed is returned when using an improperly initialized Payment.
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment constructor")
	// ErrEmailIsRequired is returned when recording a payment without a payer email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrMethodIsRequired is returned when recording a payment without a payment method.
	ErrMethodIsRequired = errs.NewValueIsRequiredError("paymentMethod")
	// ErrTransactionIDIsRequired is returned when recording a payment without a gateway transaction id.
	ErrTransactionIDIsRequired = errs.NewValueIsRequiredError("transactionId")
)

// Payment is an append-only ledger entry for a settled parcel. A record is
// written exactly once per successful settlement, after the parcel's payment
// flag was flipped by the conditional update; the ledger itself never
// mutates or deletes entries.
type Payment struct {
	id            kernel.UUID
	parcelID      kernel.UUID
	email         string
	amount        int64
	method        string
	transactionID string
	paidAt        time.Time

	guard guard.ConstructorGuard
}

// NewPayment creates a ledger entry. The amount is in the smallest currency
// unit and must be positive; paidAt is server-assigned by the caller.
func NewPayment(
	id kernel.UUID,
	parcelID kernel.UUID,
	email string,
	amount int64,
	method string,
	transactionID string,
	paidAt time.Time,
) (*Payment, error) {
	p := &Payment{
		paidAt: paidAt,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setParcelID(parcelID),
		p.setEmail(email),
		p.setAmount(amount),
		p.setMethod(method),
		p.setTransactionID(transactionID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment reconstructs a ledger entry from persistent storage.
func RestorePayment(
	id kernel.UUID,
	parcelID kernel.UUID,
	email string,
	amount int64,
	method string,
	transactionID string,
	paidAt time.Time,
) (*Payment, error) {
	return NewPayment(id, parcelID, email, amount, method, transactionID, paidAt)
}

// Validate ensures the Payment was built through a constructor.
func (p *Payment) Validate() error {
	if p == nil || p.guard.Validate(ErrPaymentIsNotConstructed) != nil {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the ledger entry's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// ParcelID returns the settled parcel's identifier.
func (p *Payment) ParcelID() kernel.UUID {
	return p.parcelID
}

// Email returns the payer's email.
func (p *Payment) Email() string {
	return p.email
}

// Amount returns the charged amount in the smallest currency unit.
func (p *Payment) Amount() int64 {
	return p.amount
}

// Method returns the payment method identifier.
func (p *Payment) Method() string {
	return p.method
}

// TransactionID returns the gateway transaction reference.
func (p *Payment) TransactionID() string {
	return p.transactionID
}

// PaidAt returns the server-assigned settlement timestamp.
func (p *Payment) PaidAt() time.Time {
	return p.paidAt
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	p.parcelID = parcelID
	return nil
}

func (p *Payment) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	p.email = email
	return nil
}

func (p *Payment) setAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%d is not greater than 0", amount))
	}
	p.amount = amount
	return nil
}

func (p *Payment) setMethod(method string) error {
	if method == "" {
		return ErrMethodIsRequired
	}
	p.method = method
	return nil
}

func (p *Payment) setTransactionID(transactionID string) error {
	if transactionID == "" {
		return ErrTransactionIDIsRequired
	}
	p.transactionID = transactionID
	return nil
}
