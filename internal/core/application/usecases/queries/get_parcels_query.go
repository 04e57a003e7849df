// Package queries contains read operations for the delivery service.
// Implements the Query side of the CQRS architecture: read models are
// built with raw SQL directly against the database, bypassing the
// aggregates and their invariants.
package queries

import (
	"errors"
	"time"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/parcel"
	"profast/internal/pkg/guard"
)

var (
	ErrGetParcelsQueryIsNotConstructed = errors.New(
		"GetParcelsQuery must be created via NewGetParcelsQuery constructor",
	)
)

// GetParcelsQuery retrieves parcels, optionally narrowed by sender email,
// delivery status, and payment status. All supplied filters apply together.
//
// Example:
//
//	query, err := NewGetParcelsQuery("sender@x.com", parcel.DeliveryStatusPending, 0)
//	if err != nil {
//	    return fmt.Errorf("invalid filters: %w", err)
//	}
//
//	handler := NewGetParcelsQueryHandler(db)
//	parcels, err := handler.Handle(ctx, query)
type GetParcelsQuery struct { //nolint:recvcheck //using for validation
	createdBy     string
	status        parcel.DeliveryStatus
	paymentStatus parcel.PaymentStatus

	guard guard.ConstructorGuard
}

// NewGetParcelsQuery creates a parcel listing query. An empty email or a
// zero-valued status means the corresponding filter is off.
func NewGetParcelsQuery(
	createdBy string,
	status parcel.DeliveryStatus,
	paymentStatus parcel.PaymentStatus,
) (GetParcelsQuery, error) {
	q := GetParcelsQuery{
		createdBy: createdBy,
		guard:     guard.NewConstructorGuard(),
	}

	if status != parcel.DeliveryStatusUnknown {
		if err := status.Validate(); err != nil {
			return GetParcelsQuery{}, err
		}
		q.status = status
	}
	if paymentStatus != parcel.PaymentStatusUnknown {
		if err := paymentStatus.Validate(); err != nil {
			return GetParcelsQuery{}, err
		}
		q.paymentStatus = paymentStatus
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelsQueryIsNotConstructed)
}

// CreatedBy returns the sender email filter, or empty when off.
func (q GetParcelsQuery) CreatedBy() string {
	return q.createdBy
}

// Status returns the delivery status filter, or the zero value when off.
func (q GetParcelsQuery) Status() parcel.DeliveryStatus {
	return q.status
}

// PaymentStatus returns the payment status filter, or the zero value when off.
func (q GetParcelsQuery) PaymentStatus() parcel.PaymentStatus {
	return q.paymentStatus
}

// ParcelResponse is the read model for a parcel. Statuses and the optional
// rider identity are plain strings, ready for transport serialization.
type ParcelResponse struct {
	ID            kernel.UUID
	CreatedBy     string
	Title         string
	PaymentStatus string
	Status        string
	RiderID       *kernel.UUID
	RiderName     string
	RiderEmail    string
	PickedAt      *time.Time
	DeliveredAt   *time.Time
	CreatedAt     time.Time
}
