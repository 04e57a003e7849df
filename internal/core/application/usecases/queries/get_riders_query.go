package queries

import (
	"errors"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/rider"
	"profast/internal/pkg/guard"
)

var (
	ErrGetRidersQueryIsNotConstructed = errors.New(
		"GetRidersQuery must be created via NewGetRidersQuery constructor",
	)
)

// GetRidersQuery retrieves rider applications, optionally narrowed by
// approval status. Used by the back office to review pending and active
// riders.
type GetRidersQuery struct { //nolint:recvcheck //using for validation
	status rider.Status

	guard guard.ConstructorGuard
}

// NewGetRidersQuery creates a rider listing query. A zero-valued status
// means no filter.
func NewGetRidersQuery(status rider.Status) (GetRidersQuery, error) {
	q := GetRidersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if status != rider.StatusUnknown {
		if err := status.Validate(); err != nil {
			return GetRidersQuery{}, err
		}
		q.status = status
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRidersQuery) Validate() error {
	return q.guard.Validate(ErrGetRidersQueryIsNotConstructed)
}

// Status returns the approval status filter, or the zero value when off.
func (q GetRidersQuery) Status() rider.Status {
	return q.status
}

// RiderResponse is the read model for a rider application.
type RiderResponse struct {
	ID         kernel.UUID
	Name       string
	Email      string
	District   string
	Status     string
	WorkStatus string
}
