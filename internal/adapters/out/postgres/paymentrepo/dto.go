// Package paymentrepo persists the payment ledger. The ledger is
// append-only: the repository exposes no update or delete.
package paymentrepo

import (
	"time"

	"profast/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for ledger entries.
type PaymentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Email         string    `gorm:"type:varchar(255);not null;index"`
	Amount        int64     `gorm:"not null"`
	Method        string    `gorm:"type:varchar(64);not null"`
	TransactionID string    `gorm:"type:varchar(255);not null"`
	PaidAt        time.Time `gorm:"not null;index"`
}

// TableName overrides GORM's default naming to use "payments".
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:            aggregate.ID().Bytes(),
		ParcelID:      aggregate.ParcelID().Bytes(),
		Email:         aggregate.Email(),
		Amount:        aggregate.Amount(),
		Method:        aggregate.Method(),
		TransactionID: aggregate.TransactionID(),
		PaidAt:        aggregate.PaidAt(),
	}
}
