package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"kabalen/internal/core/application/usecases/commands"
	"kabalen/internal/core/domain/model/rider"
	"kabalen/internal/pkg/errs"
)

func TestRegisterRiderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterRiderCommand("Jun Cruz", "+639170000001", "jun", "rider-pw")
	require.NoError(t, err)

	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	var added *rider.Rider
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("GetByUsername", ctx, "jun").
			Return(nil, errs.NewObjectNotFoundError("rider", "jun")).Once(),
		riderRepo.On("Add", ctx, mock.AnythingOfType("*rider.Rider")).
			Run(func(args mock.Arguments) {
				added = args.Get(1).(*rider.Rider)
				require.NoError(t, added.AssignID(mustID(t, 5)))
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRiderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterRiderCommandHandler(factory)
	id, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(5), id.Int64())
	require.NotNil(t, added)
	assert.InDelta(t, 0, added.Credit(), 0.0001)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(added.PasswordHash()), []byte("rider-pw")))
	riderRepo.AssertExpectations(t)
}

func TestRegisterRiderCommandHandler_Handle_UsernameTaken(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterRiderCommand("Jun Cruz", "+639170000001", "jun", "rider-pw")
	require.NoError(t, err)

	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("GetByUsername", ctx, "jun").Return(storedRider(t, 5), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRiderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterRiderCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	riderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestNewRegisterRiderCommand_MissingPassword(t *testing.T) {
	_, err := commands.NewRegisterRiderCommand("Jun Cruz", "+639170000001", "jun", "")

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRegisterRiderCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.RegisterRiderCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRegisterRiderCommandIsNotConstructed)
}
