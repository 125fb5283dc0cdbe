package commands

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/core/domain/model/rider"
	"kabalen/internal/pkg/errs"
)

// RegisterRiderCommandHandler handles adding riders to the directory.
// Rider usernames are unique the same way client usernames are; the check
// and the insert share one transaction.
type RegisterRiderCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewRegisterRiderCommandHandler creates a handler for rider registration.
// Requires a RiderUoWFactory for transactional persistence.
func NewRegisterRiderCommandHandler(uowFactory RiderUoWFactory) RegisterRiderCommandHandler {
	return RegisterRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command and returns the new rider's id.
// Returns ErrUsernameIsTaken when a rider already uses the username.
func (h RegisterRiderCommandHandler) Handle(ctx context.Context, cmd RegisterRiderCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.ID{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
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

	riderRepo := uow.RiderRepository()

	_, err = riderRepo.GetByUsername(ctx, cmd.Username())
	if err == nil {
		return kernel.ID{}, ErrUsernameIsTaken
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.ID{}, err
	}

	aggregate, err := rider.NewRider(cmd.Name(), cmd.Phone(), cmd.Username(), string(hash))
	if err != nil {
		return kernel.ID{}, err
	}

	if err = riderRepo.Add(ctx, aggregate); err != nil {
		return kernel.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	return aggregate.ID(), nil
}
