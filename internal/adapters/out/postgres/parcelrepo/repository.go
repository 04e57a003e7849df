package parcelrepo

import (
	"context"
	"errors"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/parcel"
	"profast/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db *gorm.DB
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB) *GormParcelRepository {
	return &GormParcelRepository{db: db}
}

// Add saves a new parcel.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing parcel.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves a parcel by ID.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// MarkPaid flips the payment flag from unpaid to paid with a single
// conditional UPDATE. The WHERE clause matches only the unpaid state, so of
// any number of concurrent settlement attempts exactly one sees an affected
// row; the rest observe zero and report no flip. A missing parcel is
// indistinguishable from an already-paid one here, deliberately.
func (r *GormParcelRepository) MarkPaid(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("id = ? AND payment_status = ?", id.Bytes(), parcel.PaymentStatusUnpaid.String()).
		Update("payment_status", parcel.PaymentStatusPaid.String())
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// HasActiveForRider reports whether the rider still has parcels in progress.
func (r *GormParcelRepository) HasActiveForRider(ctx context.Context, riderID kernel.UUID) (bool, error) {
	if err := riderID.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("rider_id = ? AND status IN ?", riderID.Bytes(), []string{
			parcel.DeliveryStatusRiderAssigned.String(),
			parcel.DeliveryStatusInTransit.String(),
		}).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
