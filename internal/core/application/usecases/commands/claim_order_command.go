package commands

import (
	"errors"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/pkg/guard"
)

var (
	ErrClaimOrderCommandIsNotConstructed = errors.New(
		"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
	)
)

// ClaimOrderCommand represents a rider's attempt to take ownership of a
// pending order from the shared board.
//
// Example:
//
//	cmd, err := NewClaimOrderCommand(orderID, riderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewClaimOrderCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    // another rider won the race
//	}
type ClaimOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	riderID kernel.ID

	guard guard.ConstructorGuard
}

// NewClaimOrderCommand creates a command for a rider to claim an order.
// Both identifiers must be valid.
func NewClaimOrderCommand(orderID, riderID kernel.ID) (ClaimOrderCommand, error) {
	cmd := ClaimOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRiderID(riderID),
	); err != nil {
		return ClaimOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrClaimOrderCommandIsNotConstructed if validation fails.
func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

// OrderID returns the order being claimed.
func (c ClaimOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// RiderID returns the claiming rider.
func (c ClaimOrderCommand) RiderID() kernel.ID {
	return c.riderID
}

func (c *ClaimOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ClaimOrderCommand) setRiderID(riderID kernel.ID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}
