package ports

import (
	"context"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/rider"
)

// RiderRepository defines the persistence contract for rider applications.
type RiderRepository interface {
	// Add persists a new rider application.
	Add(ctx context.Context, aggregate *rider.Rider) error

	// Update persists changes to an existing rider aggregate.
	Update(ctx context.Context, aggregate *rider.Rider) error

	// Get retrieves a rider application by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)

	// GetAllInDelivery retrieves all riders currently marked as carrying a
	// parcel. Used by the work-status reconciliation job.
	GetAllInDelivery(ctx context.Context) ([]*rider.Rider, error)
}
