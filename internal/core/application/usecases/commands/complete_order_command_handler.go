package commands

import (
	"context"

	"kabalen/internal/core/domain/services"
)

// CompleteOrderCommandHandler handles delivery completion.
// Locks the order row for the ownership and proof checks, so a concurrent
// admin reassignment cannot slip between the check and the status write.
type CompleteOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for completion operations.
// Requires a UoWFactory for coordinating the rider lookup and the locked
// order update in one transaction.
func NewCompleteOrderCommandHandler(uowFactory UoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
// Surfaces order.ErrNotOwner when the order belongs to another rider,
// order.ErrDropoffProofRequired when no dropoff proof was uploaded, and a
// conflict when the order is already completed. Rider credit is untouched;
// completion never mutates the rider record.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	owner, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = services.NewAssignmentArbiter().Complete(aggregate, owner); err != nil {
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
