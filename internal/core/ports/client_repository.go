package ports

import (
	"context"

	"kabalen/internal/core/domain/model/client"
	"kabalen/internal/core/domain/model/kernel"
)

// ClientRepository defines the persistence contract for client records.
// Clients are immutable after registration, so there is no update method.
type ClientRepository interface {
	// Add persists a new client and assigns its identity.
	Add(ctx context.Context, aggregate *client.Client) error

	// Get retrieves a client by its identity.
	Get(ctx context.Context, id kernel.ID) (*client.Client, error)

	// GetByUsername retrieves a client by login name.
	GetByUsername(ctx context.Context, username string) (*client.Client, error)

	// ExistsWithUsername reports whether a client already uses the given
	// username. Called inside the registration transaction to keep
	// usernames unique.
	ExistsWithUsername(ctx context.Context, username string) (bool, error)
}
