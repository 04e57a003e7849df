package queries

import (
	"errors"

	"profast/internal/pkg/errs"
	"profast/internal/pkg/guard"
)

var (
	ErrGetRiderParcelsQueryIsNotConstructed = errors.New(
		"GetRiderParcelsQuery must be created via NewGetRiderParcelsQuery constructor",
	)
)

// GetRiderParcelsQuery retrieves the parcels assigned to a rider, split into
// the active task list and the completed history.
type GetRiderParcelsQuery struct { //nolint:recvcheck //using for validation
	riderEmail string
	completed  bool

	guard guard.ConstructorGuard
}

// NewGetRiderParcelsQuery creates a rider task list query. The rider is
// identified by email, the directory's unique key, so the list works from
// the verified caller identity alone.
func NewGetRiderParcelsQuery(riderEmail string, completed bool) (GetRiderParcelsQuery, error) {
	if riderEmail == "" {
		return GetRiderParcelsQuery{}, errs.NewValueIsRequiredError("riderEmail")
	}

	return GetRiderParcelsQuery{
		riderEmail: riderEmail,
		completed:  completed,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRiderParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderParcelsQueryIsNotConstructed)
}

// RiderEmail returns the rider's email.
func (q GetRiderParcelsQuery) RiderEmail() string {
	return q.riderEmail
}

// Completed reports whether the query targets the delivery history instead
// of the active task list.
func (q GetRiderParcelsQuery) Completed() bool {
	return q.completed
}
