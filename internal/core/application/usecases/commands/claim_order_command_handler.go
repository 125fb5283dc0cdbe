package commands

import (
	"context"

	"kabalen/internal/core/domain/services"
)

// ClaimOrderCommandHandler arbitrates claim races on the shared order board.
// The order row is read with an exclusive lock, so when two riders claim the
// same order concurrently one transaction waits for the other and then sees
// the already-assigned order. Exactly one claim wins.
//
// Example:
//
//	handler := NewClaimOrderCommandHandler(uowFactory)
//	cmd, _ := NewClaimOrderCommand(orderID, riderID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrConflict):
//	    log.Println("order was taken by another rider")
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("no such order or rider")
//	case err != nil:
//	    log.Printf("claim failed: %v", err)
//	}
type ClaimOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewClaimOrderCommandHandler creates a handler for claim operations.
// Requires a UoWFactory for coordinating the rider lookup and the locked
// order update in one transaction.
func NewClaimOrderCommandHandler(uowFactory UoWFactory) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim command.
// Resolves the rider, locks the order row, and lets the assignment arbiter
// decide ownership. A re-claim by the current owner succeeds without change.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	riderRepo := uow.RiderRepository()
	orderRepo := uow.OrderRepository()

	claimant, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = services.NewAssignmentArbiter().Claim(aggregate, claimant); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
