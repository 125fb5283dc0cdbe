package commands

import (
	"errors"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/pkg/guard"
)

var (
	ErrAssignRiderCommandIsNotConstructed = errors.New(
		"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
	)
)

// AssignRiderCommand represents an admin override of an order's assignment.
// A nil rider id removes the current assignment and returns the order to the
// shared board; a non-nil id hands the order to that rider regardless of any
// previous assignment.
type AssignRiderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	riderID *kernel.ID

	guard guard.ConstructorGuard
}

// NewAssignRiderCommand creates a command to assign or unassign an order.
func NewAssignRiderCommand(orderID kernel.ID, riderID *kernel.ID) (AssignRiderCommand, error) {
	cmd := AssignRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRiderID(riderID),
	); err != nil {
		return AssignRiderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignRiderCommandIsNotConstructed if validation fails.
func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

// OrderID returns the order whose assignment changes.
func (c AssignRiderCommand) OrderID() kernel.ID {
	return c.orderID
}

// RiderID returns the rider to assign, or nil to unassign.
func (c AssignRiderCommand) RiderID() *kernel.ID {
	return c.riderID
}

func (c *AssignRiderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignRiderCommand) setRiderID(riderID *kernel.ID) error {
	if riderID == nil {
		return nil
	}
	if err := riderID.Validate(); err != nil {
		return err
	}

	rid := *riderID
	c.riderID = &rid
	return nil
}
