package commands

import (
	"context"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/core/domain/model/order"
)

// UploadProofCommandHandler attaches proof artifacts to orders.
// Only the admin or the rider currently assigned to the order may attach a
// proof; an unrelated rider or a client gets order.ErrNotOwner. Attaching a
// second proof of the same kind replaces the first.
type UploadProofCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUploadProofCommandHandler creates a handler for proof attachment.
// Requires an OrderUoWFactory; only the order aggregate is touched.
func NewUploadProofCommandHandler(uowFactory OrderUoWFactory) UploadProofCommandHandler {
	return UploadProofCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the proof attachment command.
// The order row is locked so the ownership check and the write are atomic
// with respect to concurrent reassignment.
func (h UploadProofCommandHandler) Handle(ctx context.Context, cmd UploadProofCommand) error {
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

	if err = h.authorize(cmd.Principal(), aggregate); err != nil {
		return err
	}

	if err = aggregate.AttachProof(cmd.Kind(), cmd.Ref()); err != nil {
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

// authorize admits the admin and the assigned rider, nobody else.
func (h UploadProofCommandHandler) authorize(principal kernel.Principal, aggregate *order.Order) error {
	if principal.IsAdmin() {
		return nil
	}

	if principal.Kind() == kernel.PrincipalRider {
		assigned := aggregate.Rider()
		if assigned != nil && assigned.IsEqual(principal.EntityID()) {
			return nil
		}
	}

	return order.ErrNotOwner
}
