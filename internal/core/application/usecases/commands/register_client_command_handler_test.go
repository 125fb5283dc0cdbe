package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"kabalen/internal/core/application/usecases/commands"
	"kabalen/internal/core/domain/model/client"
	"kabalen/internal/pkg/errs"
)

func registerClientCommand(t *testing.T) commands.RegisterClientCommand {
	t.Helper()
	cmd, err := commands.NewRegisterClientCommand(
		"Maria Santos", "12 Mabini St", "+639171234567",
		"maria", "s3cret-pw", "validId_ref.jpg", "selfie_ref.jpg",
	)
	require.NoError(t, err)
	return cmd
}

func TestRegisterClientCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := registerClientCommand(t)

	clientRepo := new(MockClientRepository)
	uow := new(MockUoW)

	var added *client.Client
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("ExistsWithUsername", ctx, "maria").Return(false, nil).Once(),
		clientRepo.On("Add", ctx, mock.AnythingOfType("*client.Client")).
			Run(func(args mock.Arguments) {
				added = args.Get(1).(*client.Client)
				require.NoError(t, added.AssignID(mustID(t, 11)))
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClientUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterClientCommandHandler(factory)
	id, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(11), id.Int64())
	require.NotNil(t, added)
	assert.Equal(t, "maria", added.Username())
	// the stored hash must verify against the submitted password and must
	// not be the plaintext itself
	assert.NotEqual(t, "s3cret-pw", added.PasswordHash())
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(added.PasswordHash()), []byte("s3cret-pw")))
	clientRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterClientCommandHandler_Handle_UsernameTaken(t *testing.T) {
	ctx := t.Context()
	cmd := registerClientCommand(t)

	clientRepo := new(MockClientRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("ExistsWithUsername", ctx, "maria").Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClientUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterClientCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	clientRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestRegisterClientCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterClientCommand{} // not constructed properly

	factory := new(MockClientUoWFactory)
	handler := commands.NewRegisterClientCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRegisterClientCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestRegisterClientCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := registerClientCommand(t)

	clientRepo := new(MockClientRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("ExistsWithUsername", ctx, "maria").Return(false, nil).Once(),
		clientRepo.On("Add", ctx, mock.AnythingOfType("*client.Client")).
			Return(errors.New("insert error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClientUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterClientCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "insert error")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewRegisterClientCommand_MissingFields(t *testing.T) {
	_, err := commands.NewRegisterClientCommand("", "", "", "", "", "", "")

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
