package queries

import (
	"errors"
	"time"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery retrieves every order in the ledger for the admin
// dashboard. This is a parameterless query.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query for the full ledger.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// GetAllOrdersQueryResponse is one order row on the admin dashboard.
// Customer fields resolve the same way as on the rider board; RiderID and
// RiderName are nil and "-" for unassigned orders.
type GetAllOrdersQueryResponse struct {
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
	RiderID       *kernel.ID
	RiderName     string
	PickupProof   string
	DropoffProof  string
	CreatedAt     time.Time
}
