package ports

import (
	"context"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// MarkPaid atomically flips the parcel's payment status from unpaid to
	// paid. The update applies only while the current value is unpaid, so
	// concurrent settlement attempts yield exactly one success. Returns true
	// when the flag was flipped, false when the parcel is missing or was
	// already paid.
	MarkPaid(ctx context.Context, id kernel.UUID) (bool, error)

	// HasActiveForRider reports whether the rider still has parcels in the
	// rider_assigned or in_transit statuses.
	HasActiveForRider(ctx context.Context, riderID kernel.UUID) (bool, error)
}
