// Package parcelrepo persists parcel aggregates. It implements the
// repository pattern for the parcel aggregate, converting between domain
// entities and their database representation.
package parcelrepo

import (
	"time"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcels.
// Statuses are stored as their string names. The rider columns stay NULL
// until assignment; rider_email is indexed for the rider task list and the
// reconciliation sweep.
type ParcelDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CreatedBy     string     `gorm:"type:varchar(255);not null;index"`
	Title         string     `gorm:"type:varchar(255)"`
	PaymentStatus string     `gorm:"type:varchar(32);not null;index"`
	Status        string     `gorm:"type:varchar(32);not null;index"`
	RiderID       *uuid.UUID `gorm:"type:uuid;index"`
	RiderName     *string    `gorm:"type:varchar(255)"`
	RiderEmail    *string    `gorm:"type:varchar(255);index"`
	PickedAt      *time.Time
	DeliveredAt   *time.Time
	CreatedAt     time.Time `gorm:"not null;index"`
}

// TableName overrides GORM's default naming to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	dto := ParcelDTO{
		ID:            aggregate.ID().Bytes(),
		CreatedBy:     aggregate.CreatedBy(),
		Title:         aggregate.Title(),
		PaymentStatus: aggregate.PaymentStatus().String(),
		Status:        aggregate.Status().String(),
		PickedAt:      aggregate.PickedAt(),
		DeliveredAt:   aggregate.DeliveredAt(),
		CreatedAt:     aggregate.CreatedAt(),
	}

	if aggregate.Rider() != nil {
		riderID := aggregate.Rider().Bytes()
		riderName := aggregate.RiderName()
		riderEmail := aggregate.RiderEmail()
		dto.RiderID = &riderID
		dto.RiderName = &riderName
		dto.RiderEmail = &riderEmail
	}

	return dto
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	paymentStatus, err := parcel.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	status, err := parcel.DeliveryStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	var riderName, riderEmail string
	if dto.RiderID != nil {
		rid, ridErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if ridErr != nil {
			return nil, ridErr
		}
		riderID = &rid
	}
	if dto.RiderName != nil {
		riderName = *dto.RiderName
	}
	if dto.RiderEmail != nil {
		riderEmail = *dto.RiderEmail
	}

	return parcel.RestoreParcel(
		id,
		dto.CreatedBy, dto.Title,
		paymentStatus,
		status,
		riderID,
		riderName, riderEmail,
		dto.PickedAt, dto.DeliveredAt,
		dto.CreatedAt,
	)
}
