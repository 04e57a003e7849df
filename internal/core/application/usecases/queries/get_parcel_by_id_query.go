package queries

import (
	"errors"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/pkg/guard"
)

var (
	ErrGetParcelByIDQueryIsNotConstructed = errors.New(
		"GetParcelByIDQuery must be created via NewGetParcelByIDQuery constructor",
	)
)

// GetParcelByIDQuery retrieves a single parcel by its identifier.
type GetParcelByIDQuery struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetParcelByIDQuery creates a single-parcel lookup query.
func NewGetParcelByIDQuery(parcelID kernel.UUID) (GetParcelByIDQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return GetParcelByIDQuery{}, err
	}

	return GetParcelByIDQuery{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelByIDQueryIsNotConstructed)
}

// ParcelID returns the identifier being looked up.
func (q GetParcelByIDQuery) ParcelID() kernel.UUID {
	return q.parcelID
}
