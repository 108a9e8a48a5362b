package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddItemToCartCommandHandler_Handle_CreatesCart(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	listing, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "Walnut desk", "")
	require.NoError(t, err)

	cmd, err := commands.NewAddItemToCartCommand(customerID, listing.ID(), 2)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, listing.ID()).Return(listing, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomer", mock.Anything, customerID).
			Return(nil, errs.NewObjectNotFoundError("customerId", customerID.String())).Once(),
		cartRepo.On("Add", mock.Anything, mock.AnythingOfType("*cart.Cart")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddItemToCartCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddItemToCartCommandHandler_Handle_ReplacesQuantity(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	listing, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "Walnut desk", "")
	require.NoError(t, err)

	existing, err := cart.NewCart(kernel.NewUUID(), customerID, time.Now())
	require.NoError(t, err)
	require.NoError(t, existing.AddItem(listing.ID(), 1, time.Now()))

	cmd, err := commands.NewAddItemToCartCommand(customerID, listing.ID(), 4)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, listing.ID()).Return(listing, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomer", mock.Anything, customerID).Return(existing, nil).Once(),
		cartRepo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddItemToCartCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	lines := existing.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, 4, lines[0].Quantity)
}

func TestAddItemToCartCommandHandler_Handle_DeletedProduct(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	listing, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "Walnut desk", "")
	require.NoError(t, err)
	listing.MarkDeleted(time.Now())

	cmd, err := commands.NewAddItemToCartCommand(customerID, listing.ID(), 1)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, listing.ID()).Return(listing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddItemToCartCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewAddItemToCartCommand_InvalidQuantity(t *testing.T) {
	_, err := commands.NewAddItemToCartCommand(kernel.NewUUID(), kernel.NewUUID(), 0)
	require.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
}
