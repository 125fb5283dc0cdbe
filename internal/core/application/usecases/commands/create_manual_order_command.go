package commands

import (
	"errors"
	"math"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/pkg/errs"
	"kabalen/internal/pkg/guard"
)

var (
	ErrCreateManualOrderCommandIsNotConstructed = errors.New(
		"CreateManualOrderCommand must be created via NewCreateManualOrderCommand constructor",
	)
)

// CreateManualOrderCommand represents an order entered by the admin on behalf
// of a walk-in customer. The customer is recorded as free text rather than a
// client account, and the order may optionally be pre-assigned to a rider.
type CreateManualOrderCommand struct { //nolint:recvcheck //using for validation
	customerName  string
	customerPhone string
	pickup        kernel.Address
	dropoff       kernel.Address
	distance      float64
	fee           float64
	category      string
	notes         string
	riderID       *kernel.ID

	guard guard.ConstructorGuard
}

// NewCreateManualOrderCommand creates a command to record a manual order.
// The customer name is required; phone, category, and notes are optional.
// A non-nil riderID pre-assigns the order on creation.
func NewCreateManualOrderCommand(
	customerName string,
	customerPhone string,
	pickup kernel.Address,
	dropoff kernel.Address,
	distance float64,
	fee float64,
	category string,
	notes string,
	riderID *kernel.ID,
) (CreateManualOrderCommand, error) {
	cmd := CreateManualOrderCommand{
		customerPhone: customerPhone,
		category:      category,
		notes:         notes,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerName(customerName),
		cmd.setPickup(pickup),
		cmd.setDropoff(dropoff),
		cmd.setDistance(distance),
		cmd.setFee(fee),
		cmd.setRiderID(riderID),
	); err != nil {
		return CreateManualOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateManualOrderCommandIsNotConstructed if validation fails.
func (c CreateManualOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateManualOrderCommandIsNotConstructed)
}

// CustomerName returns the walk-in customer's name.
func (c CreateManualOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the walk-in customer's phone, possibly empty.
func (c CreateManualOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// Pickup returns the pickup address.
func (c CreateManualOrderCommand) Pickup() kernel.Address {
	return c.pickup
}

// Dropoff returns the dropoff address.
func (c CreateManualOrderCommand) Dropoff() kernel.Address {
	return c.dropoff
}

// Distance returns the quoted delivery distance.
func (c CreateManualOrderCommand) Distance() float64 {
	return c.distance
}

// Fee returns the quoted delivery fee.
func (c CreateManualOrderCommand) Fee() float64 {
	return c.fee
}

// Category returns the order category, possibly empty.
func (c CreateManualOrderCommand) Category() string {
	return c.category
}

// Notes returns the free-text notes, possibly empty.
func (c CreateManualOrderCommand) Notes() string {
	return c.notes
}

// RiderID returns the rider to pre-assign, or nil for an unassigned order.
func (c CreateManualOrderCommand) RiderID() *kernel.ID {
	return c.riderID
}

func (c *CreateManualOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customer name")
	}

	c.customerName = customerName
	return nil
}

func (c *CreateManualOrderCommand) setPickup(pickup kernel.Address) error {
	if err := pickup.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickup", err)
	}

	c.pickup = pickup
	return nil
}

func (c *CreateManualOrderCommand) setDropoff(dropoff kernel.Address) error {
	if err := dropoff.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("dropoff", err)
	}

	c.dropoff = dropoff
	return nil
}

func (c *CreateManualOrderCommand) setDistance(distance float64) error {
	if math.IsNaN(distance) || math.IsInf(distance, 0) || distance < 0 {
		return errs.NewValueIsOutOfRangeError("distance", distance, 0, math.MaxFloat64)
	}

	c.distance = distance
	return nil
}

func (c *CreateManualOrderCommand) setFee(fee float64) error {
	if math.IsNaN(fee) || math.IsInf(fee, 0) || fee < 0 {
		return errs.NewValueIsOutOfRangeError("fee", fee, 0, math.MaxFloat64)
	}

	c.fee = fee
	return nil
}

func (c *CreateManualOrderCommand) setRiderID(riderID *kernel.ID) error {
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
