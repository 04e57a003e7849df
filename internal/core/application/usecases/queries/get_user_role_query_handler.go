package queries

import (
	"context"

	"profast/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetUserRoleQueryHandler resolves a user's role from the directory.
type GetUserRoleQueryHandler struct {
	db *gorm.DB
}

// NewGetUserRoleQueryHandler creates a handler for role lookups.
func NewGetUserRoleQueryHandler(db *gorm.DB) GetUserRoleQueryHandler {
	return GetUserRoleQueryHandler{db: db}
}

// Handle executes the lookup. An unregistered email returns an
// ObjectNotFoundError; callers treat that as the default user role or as a
// forbidden access attempt, depending on the route.
func (h GetUserRoleQueryHandler) Handle(ctx context.Context, query GetUserRoleQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT role
		FROM users
		WHERE email = ?
	`, query.Email()).Rows()
	if err != nil {
		return "", err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return "", err
		}
		return "", errs.NewObjectNotFoundError("email", query.Email())
	}

	var role string
	if err = rows.Scan(&role); err != nil {
		return "", err
	}

	return role, rows.Err()
}
