package order

import (
	"errors"
	"math"
	"strings"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/pkg/errs"
	"kabalen/internal/pkg/guard"
)

// DefaultCategory is used when an order is created without a category.
const DefaultCategory = "general"

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
	// ErrIDAlreadyAssigned is returned when AssignID is called on an order
	// that already has an identity.
	ErrIDAlreadyAssigned = errors.New("order id is already assigned")
	// ErrAlreadyClaimed is returned when a rider tries to claim an order
	// owned by a different rider. The loser of a claim race sees this.
	ErrAlreadyClaimed = errs.NewConflictErrorWithCause("order", errors.New("already assigned to another rider"))
	// ErrNotOwner is returned when a rider operates on an order assigned to
	// someone else (or to nobody).
	ErrNotOwner = errs.NewConflictErrorWithCause("order", errors.New("order is not assigned to this rider"))
	// ErrDropoffProofRequired is returned when completing an order that has
	// no dropoff proof attached.
	ErrDropoffProofRequired = errs.NewValueIsRequiredError("dropoff proof")
)

// Order is the aggregate root of the ledger. It owns the order lifecycle
// from creation through claim or assignment to completion, and enforces
// every transition guard in one place.
//
// Invariants:
//   - Pickup and dropoff addresses are always set
//   - Origin holds exactly one variant (client id or manual customer data)
//   - Distance and fee are finite and non-negative
//   - A rider is assigned exactly when status is Accepted or Completed
//   - Dropoff proof is present before the order may become Completed
//   - Completed is terminal
//
// The identity is allocated by the ledger on insert; a freshly constructed
// order has no id until the repository persists it.
type Order struct {
	id     kernel.ID
	origin Origin

	pickup  kernel.Address
	dropoff kernel.Address

	distance float64
	fee      float64
	category string
	notes    string

	status  Status
	riderID *kernel.ID

	pickupProof  *ProofRef
	dropoffProof *ProofRef

	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order with no rider assigned. This is the only
// way to bring a new order into the ledger; all invariants are validated
// here.
//
// A blank category defaults to DefaultCategory. Distance and fee default to
// zero and must be finite and non-negative.
func NewOrder(
	origin Origin,
	pickup kernel.Address,
	dropoff kernel.Address,
	distance float64,
	fee float64,
	category string,
	notes string,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setOrigin(origin),
		o.setPickup(pickup),
		o.setDropoff(dropoff),
		o.setDistance(distance),
		o.setFee(fee),
	); err != nil {
		return nil, err
	}

	o.setCategory(category)
	o.notes = strings.TrimSpace(notes)

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts any lifecycle state, but it still validates every invariant,
// including the status/rider consistency rule, so corrupted rows cannot
// produce an impossible aggregate.
func RestoreOrder(
	id kernel.ID,
	origin Origin,
	pickup kernel.Address,
	dropoff kernel.Address,
	distance float64,
	fee float64,
	category string,
	notes string,
	status Status,
	riderID *kernel.ID,
	pickupProof *ProofRef,
	dropoffProof *ProofRef,
) (*Order, error) {
	o, err := NewOrder(origin, pickup, dropoff, distance, fee, category, notes)
	if err != nil {
		return nil, err
	}

	if err = id.Validate(); err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = status.ValidateCanHaveRider(riderID != nil); err != nil {
		return nil, err
	}
	if riderID != nil {
		if err = riderID.Validate(); err != nil {
			return nil, err
		}
		rid := *riderID
		o.riderID = &rid
	}
	if pickupProof != nil {
		if err = pickupProof.Validate(); err != nil {
			return nil, err
		}
		ref := *pickupProof
		o.pickupProof = &ref
	}
	if dropoffProof != nil {
		if err = dropoffProof.Validate(); err != nil {
			return nil, err
		}
		ref := *dropoffProof
		o.dropoffProof = &ref
	}

	o.id = id
	o.status = status
	return o, nil
}

// Validate ensures the Order was constructed through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identity. The zero ID means the order has not been
// persisted yet.
func (o *Order) ID() kernel.ID {
	return o.id
}

// AssignID sets the identity allocated by the ledger on insert.
// It may be called exactly once; repositories call it after the row is
// created and the sequence value is known.
func (o *Order) AssignID(id kernel.ID) error {
	if o.id.Validate() == nil {
		return ErrIDAlreadyAssigned
	}
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// Origin returns where the order came from.
func (o *Order) Origin() Origin {
	return o.origin
}

// Pickup returns the pickup address.
func (o *Order) Pickup() kernel.Address {
	return o.pickup
}

// Dropoff returns the dropoff address.
func (o *Order) Dropoff() kernel.Address {
	return o.dropoff
}

// Distance returns the delivery distance. A pass-through value; the core
// never computes it.
func (o *Order) Distance() float64 {
	return o.distance
}

// Fee returns the delivery fee. A pass-through value; the core never
// computes it.
func (o *Order) Fee() float64 {
	return o.fee
}

// Category returns the order category.
func (o *Order) Category() string {
	return o.category
}

// Notes returns the free-text notes.
func (o *Order) Notes() string {
	return o.notes
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Rider returns the assigned rider's id, or nil if unassigned.
func (o *Order) Rider() *kernel.ID {
	return o.riderID
}

// PickupProof returns the pickup proof reference, or nil if none was attached.
func (o *Order) PickupProof() *ProofRef {
	return o.pickupProof
}

// DropoffProof returns the dropoff proof reference, or nil if none was attached.
func (o *Order) DropoffProof() *ProofRef {
	return o.dropoffProof
}

// Claim attempts to take ownership of the order for the given rider.
//
// The guard is the heart of claim arbitration: the claim succeeds only if
// the order is unassigned, or already assigned to this same rider
// (idempotent re-claim). A claim on an order owned by a different rider
// fails with ErrAlreadyClaimed without mutating state; a claim on a
// Completed order fails on the terminal-state guard.
//
// Callers must hold exclusive access to the order row for the duration of
// check-and-set; the repository's locked read provides that.
func (o *Order) Claim(riderID kernel.ID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	if o.riderID != nil && !o.riderID.IsEqual(riderID) {
		return ErrAlreadyClaimed
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.riderID = &riderID
	return nil
}

// AssignTo sets the rider unconditionally (admin override) and moves the
// order to Accepted. Any existing assignment is overwritten. Only the
// terminal-state guard applies.
func (o *Order) AssignTo(riderID kernel.ID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.riderID = &riderID
	return nil
}

// Unassign removes the rider (admin override) and returns the order to
// Pending. Unassigning an already unassigned order is a no-op; unassigning
// a Completed order fails on the terminal-state guard.
func (o *Order) Unassign() error {
	newStatus, err := o.status.Release()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.riderID = nil
	return nil
}

// AttachProof stores an artifact reference for the given proof kind,
// replacing any previous reference of that kind.
func (o *Order) AttachProof(kind ProofKind, ref ProofRef) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	if err := ref.Validate(); err != nil {
		return err
	}

	switch kind {
	case ProofPickup:
		o.pickupProof = &ref
	case ProofDropoff:
		o.dropoffProof = &ref
	}
	return nil
}

// Complete marks the order delivered on behalf of the given rider.
//
// Guards, in checking order:
//  1. ownership: the order must be assigned to this rider (ErrNotOwner);
//     an unassigned order belongs to nobody, so a Pending order always
//     fails here;
//  2. proof: a dropoff proof must be attached (ErrDropoffProofRequired);
//  3. transition: only Accepted -> Completed is legal; Completed is terminal.
func (o *Order) Complete(riderID kernel.ID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	if o.riderID == nil || !o.riderID.IsEqual(riderID) {
		return ErrNotOwner
	}

	if o.dropoffProof == nil {
		return ErrDropoffProofRequired
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setOrigin(origin Origin) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	o.origin = origin
	return nil
}

func (o *Order) setPickup(pickup kernel.Address) error {
	if err := pickup.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickup", err)
	}
	o.pickup = pickup
	return nil
}

func (o *Order) setDropoff(dropoff kernel.Address) error {
	if err := dropoff.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("dropoff", err)
	}
	o.dropoff = dropoff
	return nil
}

func (o *Order) setDistance(distance float64) error {
	if math.IsNaN(distance) || math.IsInf(distance, 0) || distance < 0 {
		return errs.NewValueIsOutOfRangeError("distance", distance, 0, math.MaxFloat64)
	}
	o.distance = distance
	return nil
}

func (o *Order) setFee(fee float64) error {
	if math.IsNaN(fee) || math.IsInf(fee, 0) || fee < 0 {
		return errs.NewValueIsOutOfRangeError("fee", fee, 0, math.MaxFloat64)
	}
	o.fee = fee
	return nil
}

func (o *Order) setCategory(category string) {
	trimmed := strings.TrimSpace(category)
	if trimmed == "" {
		trimmed = DefaultCategory
	}
	o.category = trimmed
}
