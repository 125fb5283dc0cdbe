package commands

import (
	"errors"
	"math"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/pkg/errs"
	"kabalen/internal/pkg/guard"
)

var (
	ErrCreateClientOrderCommandIsNotConstructed = errors.New(
		"CreateClientOrderCommand must be created via NewCreateClientOrderCommand constructor",
	)
)

// CreateClientOrderCommand represents a request by a registered client to
// place a delivery order. Distance and fee are quoted by the caller; the
// system stores them as-is and never recomputes them.
//
// Example:
//
//	pickup, _ := kernel.NewAddress("Mercado Central, stall 4")
//	dropoff, _ := kernel.NewAddress("88 Rizal Ave")
//	cmd, err := NewCreateClientOrderCommand(clientID, pickup, dropoff, 3.2, 79, "food", "leave at gate")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewCreateClientOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
type CreateClientOrderCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.ID
	pickup   kernel.Address
	dropoff  kernel.Address
	distance float64
	fee      float64
	category string
	notes    string

	guard guard.ConstructorGuard
}

// NewCreateClientOrderCommand creates a command to place a client order.
// Category and notes are optional; everything else is validated here.
func NewCreateClientOrderCommand(
	clientID kernel.ID,
	pickup kernel.Address,
	dropoff kernel.Address,
	distance float64,
	fee float64,
	category string,
	notes string,
) (CreateClientOrderCommand, error) {
	cmd := CreateClientOrderCommand{
		category: category,
		notes:    notes,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClientID(clientID),
		cmd.setPickup(pickup),
		cmd.setDropoff(dropoff),
		cmd.setDistance(distance),
		cmd.setFee(fee),
	); err != nil {
		return CreateClientOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateClientOrderCommandIsNotConstructed if validation fails.
func (c CreateClientOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientOrderCommandIsNotConstructed)
}

// ClientID returns the id of the client placing the order.
func (c CreateClientOrderCommand) ClientID() kernel.ID {
	return c.clientID
}

// Pickup returns the pickup address.
func (c CreateClientOrderCommand) Pickup() kernel.Address {
	return c.pickup
}

// Dropoff returns the dropoff address.
func (c CreateClientOrderCommand) Dropoff() kernel.Address {
	return c.dropoff
}

// Distance returns the quoted delivery distance.
func (c CreateClientOrderCommand) Distance() float64 {
	return c.distance
}

// Fee returns the quoted delivery fee.
func (c CreateClientOrderCommand) Fee() float64 {
	return c.fee
}

// Category returns the order category, possibly empty.
func (c CreateClientOrderCommand) Category() string {
	return c.category
}

// Notes returns the free-text notes, possibly empty.
func (c CreateClientOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateClientOrderCommand) setClientID(clientID kernel.ID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateClientOrderCommand) setPickup(pickup kernel.Address) error {
	if err := pickup.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickup", err)
	}

	c.pickup = pickup
	return nil
}

func (c *CreateClientOrderCommand) setDropoff(dropoff kernel.Address) error {
	if err := dropoff.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("dropoff", err)
	}

	c.dropoff = dropoff
	return nil
}

func (c *CreateClientOrderCommand) setDistance(distance float64) error {
	if math.IsNaN(distance) || math.IsInf(distance, 0) || distance < 0 {
		return errs.NewValueIsOutOfRangeError("distance", distance, 0, math.MaxFloat64)
	}

	c.distance = distance
	return nil
}

func (c *CreateClientOrderCommand) setFee(fee float64) error {
	if math.IsNaN(fee) || math.IsInf(fee, 0) || fee < 0 {
		return errs.NewValueIsOutOfRangeError("fee", fee, 0, math.MaxFloat64)
	}

	c.fee = fee
	return nil
}
