package queries

import (
	"context"

	"profast/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetParcelByIDQueryHandler retrieves a single parcel read model.
type GetParcelByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelByIDQueryHandler creates a handler for single-parcel lookups.
func NewGetParcelByIDQueryHandler(db *gorm.DB) GetParcelByIDQueryHandler {
	return GetParcelByIDQueryHandler{db: db}
}

// Handle executes the lookup. A missing parcel returns an ObjectNotFoundError.
func (h GetParcelByIDQueryHandler) Handle(ctx context.Context, query GetParcelByIDQuery) (ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return ParcelResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			created_by,
			title,
			payment_status,
			status,
			rider_id,
			rider_name,
			rider_email,
			picked_at,
			delivered_at,
			created_at
		FROM parcels
		WHERE id = ?
	`, query.ParcelID().String()).Rows()
	if err != nil {
		return ParcelResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ParcelResponse{}, err
		}
		return ParcelResponse{}, errs.NewObjectNotFoundError("parcelID", query.ParcelID())
	}

	resp, err := scanParcelRow(rows)
	if err != nil {
		return ParcelResponse{}, err
	}

	return resp, rows.Err()
}
