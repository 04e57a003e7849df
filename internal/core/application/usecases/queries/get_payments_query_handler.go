package queries

import (
	"context"

	"profast/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPaymentsQueryHandler retrieves payment ledger read models.
type GetPaymentsQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentsQueryHandler creates a handler for payment history queries.
func NewGetPaymentsQueryHandler(db *gorm.DB) GetPaymentsQueryHandler {
	return GetPaymentsQueryHandler{db: db}
}

// Handle executes the query. Entries come back newest first.
func (h GetPaymentsQueryHandler) Handle(ctx context.Context, query GetPaymentsQuery) ([]PaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			parcel_id,
			email,
			amount,
			method,
			transaction_id,
			paid_at
		FROM payments
	`
	args := make([]any, 0, 1)

	if query.Email() != "" {
		sqlQuery += " WHERE email = ?"
		args = append(args, query.Email())
	}

	sqlQuery += " ORDER BY paid_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]PaymentResponse, 0)
	for rows.Next() {
		var resp PaymentResponse
		var id, parcelID uuid.UUID

		if err = rows.Scan(
			&id,
			&parcelID,
			&resp.Email,
			&resp.Amount,
			&resp.Method,
			&resp.TransactionID,
			&resp.PaidAt,
		); err != nil {
			return nil, err
		}

		paymentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = paymentID

		pid, pidErr := kernel.UUIDFromBytes(parcelID[:])
		if pidErr != nil {
			return nil, pidErr
		}
		resp.ParcelID = pid

		payments = append(payments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
