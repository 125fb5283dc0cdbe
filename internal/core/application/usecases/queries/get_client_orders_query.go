// Package queries contains read-only operations over the database.
// Implements the Query side of the CQRS architecture: handlers read with raw
// SQL straight into response models, bypassing the aggregates entirely.
package queries

import (
	"errors"
	"time"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/pkg/guard"
)

var (
	ErrGetClientOrdersQueryIsNotConstructed = errors.New(
		"GetClientOrdersQuery must be created via NewGetClientOrdersQuery constructor",
	)
)

// GetClientOrdersQuery retrieves the order history of one client.
//
// Example:
//
//	query, err := NewGetClientOrdersQuery(clientID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetClientOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type GetClientOrdersQuery struct { //nolint:recvcheck //using for validation
	clientID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetClientOrdersQuery creates a query for one client's orders.
func NewGetClientOrdersQuery(clientID kernel.ID) (GetClientOrdersQuery, error) {
	if err := clientID.Validate(); err != nil {
		return GetClientOrdersQuery{}, err
	}

	return GetClientOrdersQuery{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetClientOrdersQueryIsNotConstructed if validation fails.
func (q GetClientOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetClientOrdersQueryIsNotConstructed)
}

// ClientID returns the client whose orders are requested.
func (q GetClientOrdersQuery) ClientID() kernel.ID {
	return q.clientID
}

// GetClientOrdersQueryResponse is one order in a client's history.
// RiderName is "-" while the order is unassigned.
type GetClientOrdersQueryResponse struct {
	ID        kernel.ID
	Pickup    string
	Dropoff   string
	Distance  float64
	Fee       float64
	Category  string
	Notes     string
	Status    string
	RiderName string
	CreatedAt time.Time
}
