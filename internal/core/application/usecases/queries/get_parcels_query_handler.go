package queries

import (
	"context"
	"database/sql"

	"profast/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelsQueryHandler retrieves parcel read models from the database.
// Filters are applied conjunctively; results are newest first.
type GetParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelsQueryHandler creates a handler for parcel listing queries.
func NewGetParcelsQueryHandler(db *gorm.DB) GetParcelsQueryHandler {
	return GetParcelsQueryHandler{db: db}
}

// Handle executes the query and returns matching parcels sorted by creation
// time, newest first.
func (h GetParcelsQueryHandler) Handle(ctx context.Context, query GetParcelsQuery) ([]ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
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
		WHERE 1=1
	`
	args := make([]any, 0, 3)

	if query.CreatedBy() != "" {
		sqlQuery += " AND created_by = ?"
		args = append(args, query.CreatedBy())
	}
	if query.Status() != 0 {
		sqlQuery += " AND status = ?"
		args = append(args, query.Status().String())
	}
	if query.PaymentStatus() != 0 {
		sqlQuery += " AND payment_status = ?"
		args = append(args, query.PaymentStatus().String())
	}

	sqlQuery += " ORDER BY created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
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

func scanParcelRow(rows *sql.Rows) (ParcelResponse, error) {
	var resp ParcelResponse
	var id uuid.UUID
	var riderID uuid.NullUUID
	var riderName, riderEmail sql.NullString
	var pickedAt, deliveredAt sql.NullTime

	if err := rows.Scan(
		&id,
		&resp.CreatedBy,
		&resp.Title,
		&resp.PaymentStatus,
		&resp.Status,
		&riderID,
		&riderName,
		&riderEmail,
		&pickedAt,
		&deliveredAt,
		&resp.CreatedAt,
	); err != nil {
		return ParcelResponse{}, err
	}

	parcelID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ParcelResponse{}, err
	}
	resp.ID = parcelID

	if riderID.Valid {
		rid, ridErr := kernel.UUIDFromBytes(riderID.UUID[:])
		if ridErr != nil {
			return ParcelResponse{}, ridErr
		}
		resp.RiderID = &rid
	}
	resp.RiderName = riderName.String
	resp.RiderEmail = riderEmail.String
	if pickedAt.Valid {
		resp.PickedAt = &pickedAt.Time
	}
	if deliveredAt.Valid {
		resp.DeliveredAt = &deliveredAt.Time
	}

	return resp, nil
}
