package ports

import (
	"context"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for the order ledger.
type OrderRepository interface {
	// Add persists a new order and assigns its identity from the ledger
	// sequence. Sequence allocation and row insertion are one atomic step.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identity.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetForUpdate retrieves an order and takes an exclusive row lock for
	// the rest of the transaction. Every guarded transition (claim,
	// complete, admin assignment, proof upload) loads through this method
	// so its check-and-set is atomic with respect to concurrent mutations.
	GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error)
}
