package queries

import (
	"errors"

	"profast/internal/pkg/errs"
	"profast/internal/pkg/guard"
)

var (
	ErrGetUserRoleQueryIsNotConstructed = errors.New(
		"GetUserRoleQuery must be created via NewGetUserRoleQuery constructor",
	)
)

// GetUserRoleQuery resolves a user's role by email. The directory, not the
// identity token, is the authority on roles; every authorization decision
// goes through this lookup.
type GetUserRoleQuery struct { //nolint:recvcheck //using for validation
	email string

	guard guard.ConstructorGuard
}

// NewGetUserRoleQuery creates a role lookup query.
func NewGetUserRoleQuery(email string) (GetUserRoleQuery, error) {
	if email == "" {
		return GetUserRoleQuery{}, errs.NewValueIsRequiredError("email")
	}

	return GetUserRoleQuery{
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserRoleQuery) Validate() error {
	return q.guard.Validate(ErrGetUserRoleQueryIsNotConstructed)
}

// Email returns the email being looked up.
func (q GetUserRoleQuery) Email() string {
	return q.email
}
