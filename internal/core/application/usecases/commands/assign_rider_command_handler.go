package commands

import (
	"context"

	"kabalen/internal/core/domain/services"
)

// AssignRiderCommandHandler handles admin assignment overrides.
// Assignment replaces whatever rider currently holds the order; unassignment
// releases it back to Pending. The only transition it cannot perform is
// touching a completed order.
type AssignRiderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignRiderCommandHandler creates a handler for assignment overrides.
// Requires a UoWFactory for coordinating the rider lookup and the locked
// order update in one transaction.
func NewAssignRiderCommandHandler(uowFactory UoWFactory) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment override.
// Returns errs.ErrObjectNotFound when the order or the named rider does not
// exist, and a conflict when the order is already completed.
func (h AssignRiderCommandHandler) Handle(ctx context.Context, cmd AssignRiderCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if cmd.RiderID() == nil {
		err = aggregate.Unassign()
	} else {
		riderRepo := uow.RiderRepository()

		assignee, getErr := riderRepo.Get(ctx, *cmd.RiderID())
		if getErr != nil {
			return getErr
		}

		err = services.NewAssignmentArbiter().Assign(aggregate, assignee)
	}
	if err != nil {
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
