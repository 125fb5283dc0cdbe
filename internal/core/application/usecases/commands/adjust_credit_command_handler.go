package commands

import (
	"context"
)

// AdjustCreditCommandHandler handles credit top-ups.
// The rider row is read with an exclusive lock, so concurrent top-ups
// serialize and every delta lands exactly once regardless of interleaving.
type AdjustCreditCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewAdjustCreditCommandHandler creates a handler for credit adjustments.
// Requires a RiderUoWFactory for transactional persistence.
func NewAdjustCreditCommandHandler(uowFactory RiderUoWFactory) AdjustCreditCommandHandler {
	return AdjustCreditCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the credit adjustment and returns the balance after it.
// Returns errs.ErrObjectNotFound when the rider does not exist.
func (h AdjustCreditCommandHandler) Handle(ctx context.Context, cmd AdjustCreditCommand) (float64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	riderRepo := uow.RiderRepository()

	aggregate, err := riderRepo.GetForUpdate(ctx, cmd.RiderID())
	if err != nil {
		return 0, err
	}

	balance, err := aggregate.AddCredit(cmd.Delta())
	if err != nil {
		return 0, err
	}

	if err = riderRepo.Update(ctx, aggregate); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return balance, nil
}
