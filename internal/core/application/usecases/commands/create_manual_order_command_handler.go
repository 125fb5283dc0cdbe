package commands

import (
	"context"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/core/domain/model/order"
	"kabalen/internal/core/domain/services"
)

// CreateManualOrderCommandHandler handles admin-entered orders.
// Builds a manual-origin order and, when a rider was named, resolves the
// rider and assigns the order before it is persisted, so a pre-assigned
// order enters the ledger already in Accepted status.
//
// Example:
//
//	handler := NewCreateManualOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateManualOrderCommand(
//	    "walk-in Pedro", "", pickup, dropoff, 1.5, 49, "", "", &riderID,
//	)
//	orderID, err := handler.Handle(ctx, cmd)
type CreateManualOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateManualOrderCommandHandler creates a handler for manual order entry.
// Requires a UoWFactory because the optional rider lookup and the order
// insert share one transaction.
func NewCreateManualOrderCommandHandler(uowFactory UoWFactory) CreateManualOrderCommandHandler {
	return CreateManualOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the manual order command and returns the allocated order id.
// Returns errs.ErrObjectNotFound when the named rider does not exist; in that
// case nothing is persisted.
func (h CreateManualOrderCommandHandler) Handle(ctx context.Context, cmd CreateManualOrderCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.ID{}, err
	}

	origin, err := order.NewManualOrigin(cmd.CustomerName(), cmd.CustomerPhone())
	if err != nil {
		return kernel.ID{}, err
	}

	aggregate, err := order.NewOrder(
		origin,
		cmd.Pickup(),
		cmd.Dropoff(),
		cmd.Distance(),
		cmd.Fee(),
		cmd.Category(),
		cmd.Notes(),
	)
	if err != nil {
		return kernel.ID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.ID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	if cmd.RiderID() != nil {
		riderRepo := uow.RiderRepository()

		assignee, getErr := riderRepo.Get(ctx, *cmd.RiderID())
		if getErr != nil {
			return kernel.ID{}, getErr
		}

		if err = services.NewAssignmentArbiter().Assign(aggregate, assignee); err != nil {
			return kernel.ID{}, err
		}
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return kernel.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	return aggregate.ID(), nil
}
