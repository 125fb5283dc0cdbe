package commands

import (
	"context"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/core/domain/model/order"
)

// CreateClientOrderCommandHandler handles order placement by registered clients.
// Verifies the client exists, then appends a Pending order to the ledger with
// a client origin pointing back at the placing account.
type CreateClientOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateClientOrderCommandHandler creates a handler for client order placement.
// Requires a UoWFactory because the client lookup and the order insert share
// one transaction.
func NewCreateClientOrderCommandHandler(uowFactory UoWFactory) CreateClientOrderCommandHandler {
	return CreateClientOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command and returns the id the ledger
// allocated for the new order.
// Returns errs.ErrObjectNotFound when the client id does not resolve.
func (h CreateClientOrderCommandHandler) Handle(ctx context.Context, cmd CreateClientOrderCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.ID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.ID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	clientRepo := uow.ClientRepository()
	orderRepo := uow.OrderRepository()

	placer, err := clientRepo.Get(ctx, cmd.ClientID())
	if err != nil {
		return kernel.ID{}, err
	}

	origin, err := order.NewClientOrigin(placer.ID())
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

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return kernel.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	return aggregate.ID(), nil
}
