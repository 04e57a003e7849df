package queries

import (
	"errors"

	"profast/internal/pkg/errs"
	"profast/internal/pkg/guard"
)

var (
	ErrGetAvailableRidersQueryIsNotConstructed = errors.New(
		"GetAvailableRidersQuery must be created via NewGetAvailableRidersQuery constructor",
	)
)

// GetAvailableRidersQuery retrieves active, idle riders in a district.
// Backs the admin's rider picker on the assignment screen.
type GetAvailableRidersQuery struct { //nolint:recvcheck //using for validation
	district string

	guard guard.ConstructorGuard
}

// NewGetAvailableRidersQuery creates an availability query for a district.
func NewGetAvailableRidersQuery(district string) (GetAvailableRidersQuery, error) {
	if district == "" {
		return GetAvailableRidersQuery{}, errs.NewValueIsRequiredError("district")
	}

	return GetAvailableRidersQuery{
		district: district,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableRidersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableRidersQueryIsNotConstructed)
}

// District returns the district being searched.
func (q GetAvailableRidersQuery) District() string {
	return q.district
}
