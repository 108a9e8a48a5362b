package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/inventory"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	owned, err := store.NewStore(kernel.NewUUID(), ownerID, "Acme Goods", "")
	require.NoError(t, err)

	cmd, err := commands.NewAddProductCommand(
		kernel.NewUUID(), kernel.NewUUID(), owned.ID(), ownerID,
		"Walnut desk", "Solid worktop", 45900, 12,
	)
	require.NoError(t, err)

	storeRepo := new(MockStoreRepository)
	inventoryRepo := new(MockInventoryRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StoreRepository").Return(storeRepo).Once(),
		storeRepo.On("Get", mock.Anything, owned.ID()).Return(owned, nil).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		inventoryRepo.On("Add", mock.Anything, mock.MatchedBy(func(i *inventory.Inventory) bool {
			return i.Stock() == 12 && i.Price().Amount() == 45900
		})).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Add", mock.Anything, mock.MatchedBy(func(p *product.Product) bool {
			return p.Name() == "Walnut desk" && p.StoreID().IsEqual(owned.ID())
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddProductCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	inventoryRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddProductCommandHandler_Handle_ClosedStore(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	closed, err := store.NewStore(kernel.NewUUID(), ownerID, "Acme Goods", "")
	require.NoError(t, err)
	closed.MarkDeleted(time.Now())

	cmd, err := commands.NewAddProductCommand(
		kernel.NewUUID(), kernel.NewUUID(), closed.ID(), ownerID,
		"Walnut desk", "", 100, 1,
	)
	require.NoError(t, err)

	storeRepo := new(MockStoreRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StoreRepository").Return(storeRepo).Once(),
		storeRepo.On("Get", mock.Anything, closed.ID()).Return(closed, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestRemoveStoreCommandHandler_Handle_CascadesToProducts(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	owned, err := store.NewStore(kernel.NewUUID(), ownerID, "Acme Goods", "")
	require.NoError(t, err)

	listing, err := product.NewProduct(kernel.NewUUID(), owned.ID(), kernel.NewUUID(), "Walnut desk", "")
	require.NoError(t, err)

	cmd, err := commands.NewRemoveStoreCommand(owned.ID(), ownerID)
	require.NoError(t, err)

	storeRepo := new(MockStoreRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StoreRepository").Return(storeRepo).Once(),
		storeRepo.On("Get", mock.Anything, owned.ID()).Return(owned, nil).Once(),
		storeRepo.On("Update", mock.Anything, owned).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetAllByStore", mock.Anything, owned.ID()).
			Return([]*product.Product{listing}, nil).Once(),
		productRepo.On("Update", mock.Anything, listing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveStoreCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.True(t, owned.IsDeleted())
	require.True(t, listing.IsDeleted())
}
