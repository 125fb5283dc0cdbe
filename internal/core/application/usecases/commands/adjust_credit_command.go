package commands

import (
	"errors"
	"math"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/pkg/errs"
	"kabalen/internal/pkg/guard"
)

var (
	ErrAdjustCreditCommandIsNotConstructed = errors.New(
		"AdjustCreditCommand must be created via NewAdjustCreditCommand constructor",
	)
)

// AdjustCreditCommand represents the admin topping up a rider's credit.
// Only positive deltas exist; there is no debit operation, so the balance is
// a monotonically increasing accumulator.
//
// Example:
//
//	cmd, err := NewAdjustCreditCommand(riderID, 150)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewAdjustCreditCommandHandler(uowFactory)
//	balance, err := handler.Handle(ctx, cmd)
type AdjustCreditCommand struct { //nolint:recvcheck //using for validation
	riderID kernel.ID
	delta   float64

	guard guard.ConstructorGuard
}

// NewAdjustCreditCommand creates a command to credit a rider.
// The delta must be a positive finite number.
func NewAdjustCreditCommand(riderID kernel.ID, delta float64) (AdjustCreditCommand, error) {
	cmd := AdjustCreditCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRiderID(riderID),
		cmd.setDelta(delta),
	); err != nil {
		return AdjustCreditCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdjustCreditCommandIsNotConstructed if validation fails.
func (c AdjustCreditCommand) Validate() error {
	return c.guard.Validate(ErrAdjustCreditCommandIsNotConstructed)
}

// RiderID returns the rider being credited.
func (c AdjustCreditCommand) RiderID() kernel.ID {
	return c.riderID
}

// Delta returns the amount to add.
func (c AdjustCreditCommand) Delta() float64 {
	return c.delta
}

func (c *AdjustCreditCommand) setRiderID(riderID kernel.ID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *AdjustCreditCommand) setDelta(delta float64) error {
	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta <= 0 {
		return errs.NewValueIsOutOfRangeError("delta", delta, 0, math.MaxFloat64)
	}

	c.delta = delta
	return nil
}
