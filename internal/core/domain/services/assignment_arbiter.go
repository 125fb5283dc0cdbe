package services

import (
	"kabalen/internal/core/domain/model/order"
	"kabalen/internal/core/domain/model/rider"
)

// AssignmentArbiter is a domain service that resolves ownership of orders
// between riders. It is the single place where a rider and an order meet:
// claims, admin assignments, and completions all pass through it so the
// rider's existence is always established before the order mutates.
//
// The arbiter itself holds no state and performs no locking; atomicity of
// check-and-set comes from the caller holding an exclusive lock on the
// order row for the duration of the operation (see the unit of work).
//
// Example usage:
//
//	arbiter := services.NewAssignmentArbiter()
//	if err := arbiter.Claim(order, rider); err != nil {
//	    // ErrAlreadyClaimed: another rider won the race
//	    return err
//	}
type AssignmentArbiter struct{}

// NewAssignmentArbiter creates a new AssignmentArbiter instance.
func NewAssignmentArbiter() AssignmentArbiter {
	return AssignmentArbiter{}
}

// Claim attempts to give the rider ownership of the order.
//
// Exactly one of two riders racing for the same Pending order wins; the
// loser receives order.ErrAlreadyClaimed and the order is untouched.
// A re-claim by the current owner succeeds idempotently.
func (a AssignmentArbiter) Claim(o *order.Order, r *rider.Rider) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return err
	}

	return o.Claim(r.ID())
}

// Assign gives the rider ownership of the order unconditionally (admin
// override). Any previous assignment is replaced; only the terminal-state
// guard applies.
func (a AssignmentArbiter) Assign(o *order.Order, r *rider.Rider) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return err
	}

	return o.AssignTo(r.ID())
}

// Complete marks the order delivered on behalf of the rider. The order must
// be owned by this rider and carry a dropoff proof; see order.Complete for
// the guard ordering.
func (a AssignmentArbiter) Complete(o *order.Order, r *rider.Rider) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return err
	}

	return o.Complete(r.ID())
}
