package queries

import (
	"errors"
	"time"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/pkg/errs"
	"kabalen/internal/pkg/guard"
)

var (
	ErrGetStalePendingOrdersQueryIsNotConstructed = errors.New(
		"GetStalePendingOrdersQuery must be created via NewGetStalePendingOrdersQuery constructor",
	)
)

// GetStalePendingOrdersQuery retrieves orders that have sat unclaimed longer
// than a threshold. Used by the monitoring job; the system never mutates
// stale orders on its own, it only reports them.
type GetStalePendingOrdersQuery struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewGetStalePendingOrdersQuery creates a staleness query.
// The threshold must be positive.
func NewGetStalePendingOrdersQuery(olderThan time.Duration) (GetStalePendingOrdersQuery, error) {
	if olderThan <= 0 {
		return GetStalePendingOrdersQuery{}, errs.NewValueIsOutOfRangeError(
			"older than", olderThan, time.Nanosecond, time.Duration(1<<63-1),
		)
	}

	return GetStalePendingOrdersQuery{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStalePendingOrdersQueryIsNotConstructed if validation fails.
func (q GetStalePendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStalePendingOrdersQueryIsNotConstructed)
}

// OlderThan returns the staleness threshold.
func (q GetStalePendingOrdersQuery) OlderThan() time.Duration {
	return q.olderThan
}

// GetStalePendingOrdersQueryResponse is one unclaimed order past the threshold.
type GetStalePendingOrdersQueryResponse struct {
	ID        kernel.ID
	Pickup    string
	Dropoff   string
	CreatedAt time.Time
}
