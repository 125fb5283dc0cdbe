package ports

import (
	"context"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/core/domain/model/rider"
)

// RiderRepository defines the persistence contract for the rider directory.
type RiderRepository interface {
	// Add persists a new rider and assigns its identity from the directory
	// sequence.
	Add(ctx context.Context, aggregate *rider.Rider) error

	// Update persists changes to an existing rider (credit adjustments).
	Update(ctx context.Context, aggregate *rider.Rider) error

	// Get retrieves a rider by its identity.
	Get(ctx context.Context, id kernel.ID) (*rider.Rider, error)

	// GetForUpdate retrieves a rider and takes an exclusive row lock for
	// the rest of the transaction. Credit adjustments load through this
	// method so the read-add-write is atomic.
	GetForUpdate(ctx context.Context, id kernel.ID) (*rider.Rider, error)

	// GetByUsername retrieves a rider by login name.
	GetByUsername(ctx context.Context, username string) (*rider.Rider, error)
}
