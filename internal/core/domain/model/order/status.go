package order

import (
	"fmt"

	"kabalen/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow
// the marketplace workflow.
//
// State transitions:
//
//	Pending ──┬──> Accepted ──> Completed
//	    ^     │        │
//	    │     └────────┘
//	    │  (re-claim / admin reassignment)
//	    │              │
//	    └──────────────┘
//	      (admin unassign)
//
// Completed is terminal: no transition leaves it.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order is on the board, waiting to
	// be claimed by a rider or assigned by the admin.
	Pending

	// Accepted indicates a rider owns the order. Orders can be re-claimed by
	// the same rider or reassigned by the admin while in this status.
	Accepted

	// Completed indicates the order has been delivered. Terminal.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Accepted:  "Accepted",
		Completed: "Completed",
	}
}

// getValidStatusStrings returns only the statuses an order may legally hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Accepted:  "Accepted",
		Completed: "Completed",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, Accepted, Completed; Unknown and any other
// values are rejected. Used when reconstructing orders from persistence.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateAccept checks whether the status allows taking (or re-taking) a
// rider without performing the transition.
//
// Valid: Pending (initial claim or assignment), Accepted (idempotent
// re-claim, admin reassignment). Invalid: Completed (terminal), Unknown.
func (s Status) ValidateAccept() error {
	if s != Pending && s != Accepted {
		return errs.NewConflictErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to accept", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveRider validates consistency between order status and rider
// assignment: a rider is present exactly when the order is Accepted or
// Completed.
func (s Status) ValidateCanHaveRider(rider bool) error {
	if rider && s != Accepted && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a rider", s.String()),
		)
	}

	if !rider && (s == Accepted || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no rider", s.String()),
		)
	}

	return nil
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Pending -> Accepted (claim or admin assignment)
//   - Accepted -> Accepted (idempotent re-claim, admin reassignment)
//
// Returns a ConflictError for Completed (terminal) or Unknown.
func (s Status) Accept() (Status, error) {
	if err := s.ValidateAccept(); err != nil {
		return 0, err
	}

	return Accepted, nil
}

// Release transitions the status back to Pending (admin unassignment).
//
// Valid transitions:
//   - Accepted -> Pending (rider removed, order back on the board)
//   - Pending -> Pending (unassigning an unassigned order is a no-op)
//
// Returns a ConflictError for Completed (terminal) or Unknown.
func (s Status) Release() (Status, error) {
	if s != Pending && s != Accepted {
		return 0, errs.NewConflictErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to release", s.String()),
		)
	}

	return Pending, nil
}

// Complete transitions the status to Completed.
//
// The only valid transition is Accepted -> Completed; everything else,
// including Completed -> Completed, is rejected. Completed is the final
// state in the order lifecycle.
func (s Status) Complete() (Status, error) {
	if s != Accepted {
		return 0, errs.NewConflictErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}
