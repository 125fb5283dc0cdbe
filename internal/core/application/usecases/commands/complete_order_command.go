package commands

import (
	"errors"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/pkg/guard"
)

var (
	ErrCompleteOrderCommandIsNotConstructed = errors.New(
		"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
	)
)

// CompleteOrderCommand represents a rider marking an assigned order as
// delivered. Completion is guarded: the rider must own the order and a
// dropoff proof must already be attached.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	riderID kernel.ID

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command for a rider to complete an order.
// Both identifiers must be valid.
func NewCompleteOrderCommand(orderID, riderID kernel.ID) (CompleteOrderCommand, error) {
	cmd := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRiderID(riderID),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteOrderCommandIsNotConstructed if validation fails.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the order being completed.
func (c CompleteOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// RiderID returns the rider reporting the delivery.
func (c CompleteOrderCommand) RiderID() kernel.ID {
	return c.riderID
}

func (c *CompleteOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteOrderCommand) setRiderID(riderID kernel.ID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}
