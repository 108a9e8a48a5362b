package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPaidOrder(t *testing.T, customerID kernel.UUID) (*order.Order, *order.Item) {
	t.Helper()

	price, err := kernel.NewMoney(1999)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 3, price, "Jane Doe", "12 Elm Street")
	require.NoError(t, err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), customerID)
	require.NoError(t, err)
	require.NoError(t, aggregate.AddItem(item))

	return aggregate, item
}

func TestCancelOrderItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	aggregate, item := newPaidOrder(t, customerID)
	cmd, _ := commands.NewCancelOrderItemCommand(customerID, item.ID())

	orderRepo := new(MockOrderRepository)
	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockUoW)
	publisher := new(MockOrderEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByItem", mock.Anything, item.ID()).Return(aggregate, nil).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		inventoryRepo.On("Release", mock.Anything, item.InventoryID(), 3).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("PublishOrderItemCancelled", mock.Anything, aggregate, item).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderItemCommandHandler(factory, publisher)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Cancelled, item.Status())

	orderRepo.AssertExpectations(t)
	inventoryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCancelOrderItemCommandHandler_Handle_AlreadyCancelled(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	aggregate, item := newPaidOrder(t, customerID)
	_, err := aggregate.CancelItem(item.ID())
	require.NoError(t, err)

	cmd, _ := commands.NewCancelOrderItemCommand(customerID, item.ID())

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByItem", mock.Anything, item.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderItemCommandHandler(factory, new(MockOrderEventPublisher))
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCancelOrderItemCommandHandler_Handle_ItemNotFound(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	itemID := kernel.NewUUID()
	cmd, _ := commands.NewCancelOrderItemCommand(customerID, itemID)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByItem", mock.Anything, itemID).
			Return(nil, errs.NewObjectNotFoundError("orderItemId", itemID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderItemCommandHandler(factory, new(MockOrderEventPublisher))
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCancelOrderItemCommandHandler_Handle_ForeignItem_Unauthorized(t *testing.T) {
	ctx := t.Context()
	owner := kernel.NewUUID()
	caller := kernel.NewUUID()
	aggregate, item := newPaidOrder(t, owner)
	cmd, _ := commands.NewCancelOrderItemCommand(caller, item.ID())

	orderRepo := new(MockOrderRepository)
	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByItem", mock.Anything, item.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderItemCommandHandler(factory, new(MockOrderEventPublisher))
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	require.NotErrorIs(t, err, errs.ErrObjectNotFound)
	require.Equal(t, order.Paid, item.Status())

	inventoryRepo.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
