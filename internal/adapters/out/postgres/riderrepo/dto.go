// Package riderrepo persists rider applications. It implements the
// repository pattern for the rider aggregate, converting between domain
// entities and their database representation.
package riderrepo

import (
	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// RiderDTO represents the database structure for persisting rider
// applications. Status and work status are stored as their string names;
// both carry indexes for the approval screens and the reconciliation sweep.
type RiderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Email      string    `gorm:"type:varchar(255);not null;index"`
	District   string    `gorm:"type:varchar(255);not null;index"`
	Status     string    `gorm:"type:varchar(32);not null;index"`
	WorkStatus string    `gorm:"type:varchar(32);not null;index"`
}

// TableName overrides GORM's default naming to use "riders".
func (RiderDTO) TableName() string {
	return "riders"
}

func fromDomain(aggregate *rider.Rider) RiderDTO {
	return RiderDTO{
		ID:         aggregate.ID().Bytes(),
		Name:       aggregate.Name(),
		Email:      aggregate.Email(),
		District:   aggregate.District(),
		Status:     aggregate.Status().String(),
		WorkStatus: aggregate.WorkStatus().String(),
	}
}

func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := rider.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	workStatus, err := rider.WorkStatusFromString(dto.WorkStatus)
	if err != nil {
		return nil, err
	}

	return rider.RestoreRider(id, dto.Name, dto.Email, dto.District, status, workStatus)
}
