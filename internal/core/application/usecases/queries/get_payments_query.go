package queries

import (
	"errors"
	"time"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/pkg/guard"
)

var (
	ErrGetPaymentsQueryIsNotConstructed = errors.New(
		"GetPaymentsQuery must be created via NewGetPaymentsQuery constructor",
	)
)

// GetPaymentsQuery retrieves ledger entries, optionally narrowed to one
// payer. Admins see the full ledger; users see their own history.
type GetPaymentsQuery struct { //nolint:recvcheck //using for validation
	email string

	guard guard.ConstructorGuard
}

// NewGetPaymentsQuery creates a payment history query. An empty email means
// no filter.
func NewGetPaymentsQuery(email string) (GetPaymentsQuery, error) {
	return GetPaymentsQuery{
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentsQueryIsNotConstructed)
}

// Email returns the payer filter, or empty when off.
func (q GetPaymentsQuery) Email() string {
	return q.email
}

// PaymentResponse is the read model for a ledger entry.
type PaymentResponse struct {
	ID            kernel.UUID
	ParcelID      kernel.UUID
	Email         string
	Amount        int64
	Method        string
	TransactionID string
	PaidAt        time.Time
}
