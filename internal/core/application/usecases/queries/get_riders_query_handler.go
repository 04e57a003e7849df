package queries

import (
	"context"
	"database/sql"

	"profast/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRidersQueryHandler retrieves rider application read models.
type GetRidersQueryHandler struct {
	db *gorm.DB
}

// NewGetRidersQueryHandler creates a handler for rider listing queries.
func NewGetRidersQueryHandler(db *gorm.DB) GetRidersQueryHandler {
	return GetRidersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by name for stable output.
func (h GetRidersQueryHandler) Handle(ctx context.Context, query GetRidersQuery) ([]RiderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			name,
			email,
			district,
			status,
			work_status
		FROM riders
	`
	args := make([]any, 0, 1)

	if query.Status() != 0 {
		sqlQuery += " WHERE status = ?"
		args = append(args, query.Status().String())
	}

	sqlQuery += " ORDER BY name"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
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

func scanRiderRow(rows *sql.Rows) (RiderResponse, error) {
	var resp RiderResponse
	var id uuid.UUID

	if err := rows.Scan(
		&id,
		&resp.Name,
		&resp.Email,
		&resp.District,
		&resp.Status,
		&resp.WorkStatus,
	); err != nil {
		return RiderResponse{}, err
	}

	riderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return RiderResponse{}, err
	}
	resp.ID = riderID

	return resp, nil
}
