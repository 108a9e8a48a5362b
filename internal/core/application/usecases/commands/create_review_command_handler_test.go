package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func orderWithInventory(t *testing.T, customerID, inventoryID kernel.UUID) (*order.Order, error) {
	t.Helper()

	price, err := kernel.NewMoney(500)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), inventoryID, 1, price, "Jane Doe", "12 Elm Street")
	require.NoError(t, err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), customerID)
	require.NoError(t, err)

	return aggregate, aggregate.AddItem(item)
}

func TestCreateReviewCommandHandler_Handle_VerifiedPurchase(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()

	listing, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "Walnut desk", "")
	require.NoError(t, err)

	// order history containing the product's inventory record
	aggregate, err := orderWithInventory(t, customerID, listing.InventoryID())
	require.NoError(t, err)

	cmd, err := commands.NewCreateReviewCommand(kernel.NewUUID(), listing.ID(), customerID, 5, "Excellent")
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	reviewRepo := new(MockReviewRepository)
	orderRepo := new(MockOrderRepository)
	summaryRepo := new(MockSummaryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, listing.ID()).Return(listing, nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("GetByProductAndCustomer", mock.Anything, listing.ID(), customerID).
			Return(nil, errs.NewObjectNotFoundError("productId", listing.ID().String())).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByCustomer", mock.Anything, customerID).Return(aggregate, nil).Once(),
		reviewRepo.On("Add", mock.Anything, mock.MatchedBy(func(r *review.Review) bool {
			return r.VerifiedPurchase() && r.Rating() == 5
		})).Return(nil).Once(),
		uow.On("SummaryRepository").Return(summaryRepo).Once(),
		summaryRepo.On("Get", mock.Anything, listing.ID()).
			Return(nil, errs.NewObjectNotFoundError("productId", listing.ID().String())).Once(),
		summaryRepo.On("Save", mock.Anything, mock.MatchedBy(func(s *review.Summary) bool {
			return s.ReviewsCount() == 1 && s.Rating() == 5.0
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateReviewCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	reviewRepo.AssertExpectations(t)
	summaryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateReviewCommandHandler_Handle_DuplicateReview(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()

	listing, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "Walnut desk", "")
	require.NoError(t, err)

	existing, err := review.NewReview(kernel.NewUUID(), listing.ID(), customerID, 3, "Fine", false)
	require.NoError(t, err)

	cmd, err := commands.NewCreateReviewCommand(kernel.NewUUID(), listing.ID(), customerID, 5, "Changed my mind")
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	reviewRepo := new(MockReviewRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, listing.ID()).Return(listing, nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("GetByProductAndCustomer", mock.Anything, listing.ID(), customerID).
			Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateReviewCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewCreateReviewCommand_RatingOutOfRange(t *testing.T) {
	_, err := commands.NewCreateReviewCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 6, "")
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = commands.NewCreateReviewCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 0, "")
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
