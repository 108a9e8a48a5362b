package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// CreateReviewCommandHandler handles posting product reviews.
// The review and the product's rating summary change in one transaction,
// so the summary always reflects exactly the live reviews.
//
// Example:
//
//	handler := NewCreateReviewCommandHandler(uowFactory)
//	cmd, _ := NewCreateReviewCommand(kernel.NewUUID(), productID, customerID, 4, "Solid")
//
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    log.Println("Customer already reviewed this product")
//	}
type CreateReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewCreateReviewCommandHandler creates a handler for review creation.
// Requires a ReviewUoWFactory for transactional persistence.
func NewCreateReviewCommandHandler(uowFactory ReviewUoWFactory) CreateReviewCommandHandler {
	return CreateReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review creation command.
// Verifies the product is live, rejects duplicate reviews from the same
// customer, marks the review as a verified purchase when the customer's
// order history contains the product, and folds the rating into the
// product's summary.
func (h CreateReviewCommandHandler) Handle(ctx context.Context, cmd CreateReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	listing, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}
	if listing.IsDeleted() {
		return errs.NewObjectNotFoundError("productId", cmd.ProductID().String())
	}

	reviewRepo := uow.ReviewRepository()
	existing, err := reviewRepo.GetByProductAndCustomer(ctx, cmd.ProductID(), cmd.CustomerID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil && !existing.IsDeleted() {
		return errs.NewConflictError("productId")
	}

	verified, err := h.hasPurchased(ctx, uow, cmd, listing.InventoryID())
	if err != nil {
		return err
	}

	posted, err := review.NewReview(
		cmd.ReviewID(), cmd.ProductID(), cmd.CustomerID(),
		cmd.Rating(), cmd.Content(), verified,
	)
	if err != nil {
		return err
	}

	if err = reviewRepo.Add(ctx, posted); err != nil {
		return err
	}

	if err = h.addToSummary(ctx, uow.SummaryRepository(), cmd); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h CreateReviewCommandHandler) hasPurchased(
	ctx context.Context,
	uow ReviewUoW,
	cmd CreateReviewCommand,
	inventoryID kernel.UUID,
) (bool, error) {
	aggregate, err := uow.OrderRepository().GetByCustomer(ctx, cmd.CustomerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return aggregate.ContainsInventory(inventoryID), nil
}

func (h CreateReviewCommandHandler) addToSummary(
	ctx context.Context,
	summaryRepo ports.SummaryRepository,
	cmd CreateReviewCommand,
) error {
	summary, err := summaryRepo.Get(ctx, cmd.ProductID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		summary, err = review.NewSummary(cmd.ProductID())
	}
	if err != nil {
		return err
	}

	if err = summary.Add(cmd.Rating()); err != nil {
		return err
	}

	return summaryRepo.Save(ctx, summary)
}
