package queries

import (
	"context"

	"profast/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// searchUsersLimit caps result size; the management screen pages by
// refining the search term rather than by offset.
const searchUsersLimit = 10

// SearchUsersQueryHandler finds user records by email or name substring.
type SearchUsersQueryHandler struct {
	db *gorm.DB
}

// NewSearchUsersQueryHandler creates a handler for user searches.
func NewSearchUsersQueryHandler(db *gorm.DB) SearchUsersQueryHandler {
	return SearchUsersQueryHandler{db: db}
}

// Handle executes the search, case-insensitively, capped at ten matches.
func (h SearchUsersQueryHandler) Handle(ctx context.Context, query SearchUsersQuery) ([]UserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pattern := "%" + query.Term() + "%"

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			email,
			name,
			role,
			created_at
		FROM users
		WHERE email ILIKE ? OR name ILIKE ?
		ORDER BY email
		LIMIT ?
	`, pattern, pattern, searchUsersLimit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]UserResponse, 0)
	for rows.Next() {
		var resp UserResponse
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&resp.Email,
			&resp.Name,
			&resp.Role,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}

		userID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = userID
		users = append(users, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
