package queries

import (
	"context"

	"profast/internal/core/domain/model/rider"

	"gorm.io/gorm"
)

// GetAvailableRidersQueryHandler retrieves riders eligible for a new
// assignment: active applications with no delivery in progress, matched by
// district.
type GetAvailableRidersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableRidersQueryHandler creates a handler for availability queries.
func NewGetAvailableRidersQueryHandler(db *gorm.DB) GetAvailableRidersQueryHandler {
	return GetAvailableRidersQueryHandler{db: db}
}

// Handle executes the availability query.
func (h GetAvailableRidersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableRidersQuery,
) ([]RiderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			district,
			status,
			work_status
		FROM riders
		WHERE district = ?
		  AND status = ?
		  AND work_status = ?
		ORDER BY name
	`, query.District(), rider.StatusActive.String(), rider.WorkStatusIdle.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	riders := make([]RiderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanRiderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		riders = append(riders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return riders, nil
}
