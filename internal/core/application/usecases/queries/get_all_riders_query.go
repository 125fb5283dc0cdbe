package queries

import (
	"errors"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/pkg/guard"
)

var (
	ErrGetAllRidersQueryIsNotConstructed = errors.New(
		"GetAllRidersQuery must be created via NewGetAllRidersQuery constructor",
	)
)

// GetAllRidersQuery retrieves the rider directory for the admin dashboard.
// This is a parameterless query.
//
// Example:
//
//	query := NewGetAllRidersQuery()
//	handler := NewGetAllRidersQueryHandler(db)
//
//	riders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list riders: %w", err)
//	}
//	fmt.Printf("%d riders registered\n", len(riders))
type GetAllRidersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllRidersQuery creates a query for the rider directory.
func NewGetAllRidersQuery() GetAllRidersQuery {
	return GetAllRidersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllRidersQueryIsNotConstructed if validation fails.
func (q GetAllRidersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllRidersQueryIsNotConstructed)
}

// GetAllRidersQueryResponse is one rider row with current workload and credit.
type GetAllRidersQueryResponse struct {
	ID           kernel.ID
	Name         string
	Phone        string
	Username     string
	Credit       float64
	ActiveOrders int64
}
