package commands

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"kabalen/internal/core/domain/model/client"
	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/pkg/errs"
)

// ErrUsernameIsTaken is returned when the requested username is already in use.
var ErrUsernameIsTaken = errs.NewConflictError("username")

// RegisterClientCommandHandler handles the business logic for client registration.
// Enforces username uniqueness inside the registration transaction and hashes
// the password before the aggregate is built, so plaintext never leaves the handler.
type RegisterClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewRegisterClientCommandHandler creates a handler for client registration.
// Requires a ClientUoWFactory for transactional persistence.
func NewRegisterClientCommandHandler(uowFactory ClientUoWFactory) RegisterClientCommandHandler {
	return RegisterClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command and returns the new client's id.
// The uniqueness check and the insert share one transaction, so two
// registrations racing for the same username cannot both succeed.
// Returns ErrUsernameIsTaken when the username is already in use.
func (h RegisterClientCommandHandler) Handle(ctx context.Context, cmd RegisterClientCommand) (kernel.ID, error) {
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

	clientRepo := uow.ClientRepository()

	taken, err := clientRepo.ExistsWithUsername(ctx, cmd.Username())
	if err != nil {
		return kernel.ID{}, err
	}
	if taken {
		return kernel.ID{}, ErrUsernameIsTaken
	}

	aggregate, err := client.NewClient(
		cmd.Fullname(),
		cmd.Address(),
		cmd.Phone(),
		cmd.Username(),
		string(hash),
		cmd.ValidIDRef(),
		cmd.SelfieRef(),
	)
	if err != nil {
		return kernel.ID{}, err
	}

	if err = clientRepo.Add(ctx, aggregate); err != nil {
		return kernel.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	return aggregate.ID(), nil
}
