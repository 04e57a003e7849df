package queries

import (
	"context"

	"profast/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GetRiderParcelsQueryHandler retrieves the parcels assigned to a rider.
type GetRiderParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetRiderParcelsQueryHandler creates a handler for rider task lists.
func NewGetRiderParcelsQueryHandler(db *gorm.DB) GetRiderParcelsQueryHandler {
	return GetRiderParcelsQueryHandler{db: db}
}

// Handle executes the query. Active tasks are oldest first so riders work
// the backlog in order; the history is newest first.
func (h GetRiderParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetRiderParcelsQuery,
) ([]ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := []string{
		parcel.DeliveryStatusRiderAssigned.String(),
		parcel.DeliveryStatusInTransit.String(),
	}
	order := "created_at ASC"
	if query.Completed() {
		statuses = []string{
			parcel.DeliveryStatusDelivered.String(),
			parcel.DeliveryStatusServiceCenterDelivered.String(),
		}
		order = "delivered_at DESC NULLS LAST"
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
		WHERE rider_email = ?
		  AND status IN ?
		ORDER BY `+order,
		query.RiderEmail(), statuses).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parcels := make([]ParcelResponse, 0)
	for rows.Next() {
		resp, scanErr := scanParcelRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		parcels = append(parcels, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
