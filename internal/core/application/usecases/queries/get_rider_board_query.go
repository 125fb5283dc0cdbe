package queries

import (
	"errors"
	"time"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/pkg/guard"
)

var (
	ErrGetRiderBoardQueryIsNotConstructed = errors.New(
		"GetRiderBoardQuery must be created via NewGetRiderBoardQuery constructor",
	)
)

// GetRiderBoardQuery retrieves the order board as one rider sees it: every
// unclaimed pending order plus the orders currently assigned to that rider.
// Orders held by other riders and completed orders are excluded.
type GetRiderBoardQuery struct { //nolint:recvcheck //using for validation
	riderID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetRiderBoardQuery creates a board query for one rider.
func NewGetRiderBoardQuery(riderID kernel.ID) (GetRiderBoardQuery, error) {
	if err := riderID.Validate(); err != nil {
		return GetRiderBoardQuery{}, err
	}

	return GetRiderBoardQuery{
		riderID: riderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRiderBoardQueryIsNotConstructed if validation fails.
func (q GetRiderBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderBoardQueryIsNotConstructed)
}

// RiderID returns the rider viewing the board.
func (q GetRiderBoardQuery) RiderID() kernel.ID {
	return q.riderID
}

// GetRiderBoardQueryResponse is one order on the rider's board.
//
// CustomerName and CustomerPhone resolve to the registered client's data for
// client orders and to the free-text fields for manual orders; either falls
// back to "-" when nothing is recorded. Mine is true for orders the viewing
// rider already holds.
type GetRiderBoardQueryResponse struct {
	ID            kernel.ID
	Pickup        string
	Dropoff       string
	Distance      float64
	Fee           float64
	Category      string
	Notes         string
	Status        string
	CustomerName  string
	CustomerPhone string
	Mine          bool
	HasDropoff    bool
	CreatedAt     time.Time
}
