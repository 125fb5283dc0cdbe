package commands

import (
	"errors"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/core/domain/model/order"
	"kabalen/internal/pkg/guard"
)

var (
	ErrUploadProofCommandIsNotConstructed = errors.New(
		"UploadProofCommand must be created via NewUploadProofCommand constructor",
	)
)

// UploadProofCommand represents attaching a proof-of-delivery artifact to an
// order. The artifact itself is already stored; the command carries only its
// reference. The acting principal is recorded so the handler can check that
// only the assigned rider or the admin attaches proofs.
type UploadProofCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.ID
	kind      order.ProofKind
	ref       order.ProofRef
	principal kernel.Principal

	guard guard.ConstructorGuard
}

// NewUploadProofCommand creates a command to attach a proof artifact.
// The kind must be pickup or dropoff and the reference must be non-empty.
func NewUploadProofCommand(
	orderID kernel.ID,
	kind order.ProofKind,
	ref order.ProofRef,
	principal kernel.Principal,
) (UploadProofCommand, error) {
	cmd := UploadProofCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setKind(kind),
		cmd.setRef(ref),
		cmd.setPrincipal(principal),
	); err != nil {
		return UploadProofCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUploadProofCommandIsNotConstructed if validation fails.
func (c UploadProofCommand) Validate() error {
	return c.guard.Validate(ErrUploadProofCommandIsNotConstructed)
}

// OrderID returns the order receiving the proof.
func (c UploadProofCommand) OrderID() kernel.ID {
	return c.orderID
}

// Kind returns which proof slot the artifact fills.
func (c UploadProofCommand) Kind() order.ProofKind {
	return c.kind
}

// Ref returns the artifact reference.
func (c UploadProofCommand) Ref() order.ProofRef {
	return c.ref
}

// Principal returns the authenticated actor attaching the proof.
func (c UploadProofCommand) Principal() kernel.Principal {
	return c.principal
}

func (c *UploadProofCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UploadProofCommand) setKind(kind order.ProofKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *UploadProofCommand) setRef(ref order.ProofRef) error {
	if err := ref.Validate(); err != nil {
		return err
	}

	c.ref = ref
	return nil
}

func (c *UploadProofCommand) setPrincipal(principal kernel.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}
