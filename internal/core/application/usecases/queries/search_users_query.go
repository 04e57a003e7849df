package queries

import (
	"errors"
	"time"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/pkg/errs"
	"profast/internal/pkg/guard"
)

var (
	ErrSearchUsersQueryIsNotConstructed = errors.New(
		"SearchUsersQuery must be created via NewSearchUsersQuery constructor",
	)
)

// SearchUsersQuery finds user records whose email or name matches a
// case-insensitive substring. Backs the admin's user management screen.
type SearchUsersQuery struct { //nolint:recvcheck //using for validation
	term string

	guard guard.ConstructorGuard
}

// NewSearchUsersQuery creates a user search query. The term is required.
func NewSearchUsersQuery(term string) (SearchUsersQuery, error) {
	if term == "" {
		return SearchUsersQuery{}, errs.NewValueIsRequiredError("search term")
	}

	return SearchUsersQuery{
		term:  term,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchUsersQuery) Validate() error {
	return q.guard.Validate(ErrSearchUsersQueryIsNotConstructed)
}

// Term returns the substring being searched for.
func (q SearchUsersQuery) Term() string {
	return q.term
}

// UserResponse is the read model for a user directory record.
type UserResponse struct {
	ID        kernel.UUID
	Email     string
	Name      string
	Role      string
	CreatedAt time.Time
}
