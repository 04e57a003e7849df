package ports

import (
	"context"

	"profast/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for the payment ledger.
// The ledger is append-only: there is no update or delete.
type PaymentRepository interface {
	// Add appends a payment record to the ledger.
	Add(ctx context.Context, aggregate *payment.Payment) error
}
