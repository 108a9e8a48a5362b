package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateStoreCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateStoreCommand(kernel.NewUUID(), kernel.NewUUID(), "Acme Goods", "Everything acme")
	require.NoError(t, err)

	storeRepo := new(MockStoreRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StoreRepository").Return(storeRepo).Once(),
		storeRepo.On("Add", mock.Anything, mock.AnythingOfType("*store.Store")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStoreUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateStoreCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	storeRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateStoreCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	intruderID := kernel.NewUUID()

	owned, err := store.NewStore(kernel.NewUUID(), ownerID, "Acme Goods", "")
	require.NoError(t, err)

	cmd, err := commands.NewUpdateStoreCommand(owned.ID(), intruderID, "Hijacked", "")
	require.NoError(t, err)

	storeRepo := new(MockStoreRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StoreRepository").Return(storeRepo).Once(),
		storeRepo.On("Get", mock.Anything, owned.ID()).Return(owned, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStoreUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateStoreCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	storeRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestNewCreateStoreCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateStoreCommand(kernel.NewUUID(), kernel.NewUUID(), "", "desc")
	require.ErrorIs(t, err, commands.ErrStoreNameIsRequired)
}
