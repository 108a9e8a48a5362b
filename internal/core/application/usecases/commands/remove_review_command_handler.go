package commands

import (
	"context"
	"time"

	"marketplace/internal/pkg/errs"
)

// RemoveReviewCommandHandler handles retracting reviews.
// The retracted rating is removed from the product's summary in the same
// transaction.
type RemoveReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewRemoveReviewCommandHandler creates a handler for review retraction.
func NewRemoveReviewCommandHandler(uowFactory ReviewUoWFactory) RemoveReviewCommandHandler {
	return RemoveReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review retraction command.
func (h RemoveReviewCommandHandler) Handle(ctx context.Context, cmd RemoveReviewCommand) error {
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

	reviewRepo := uow.ReviewRepository()
	posted, err := reviewRepo.Get(ctx, cmd.ReviewID())
	if err != nil {
		return err
	}
	if posted.IsDeleted() {
		return errs.NewObjectNotFoundError("reviewId", cmd.ReviewID().String())
	}

	if err = posted.EnsureAuthoredBy(cmd.CallerID()); err != nil {
		return err
	}

	posted.MarkDeleted(time.Now())

	if err = reviewRepo.Update(ctx, posted); err != nil {
		return err
	}

	summaryRepo := uow.SummaryRepository()
	summary, err := summaryRepo.Get(ctx, posted.ProductID())
	if err != nil {
		return err
	}

	if err = summary.Retract(posted.Rating()); err != nil {
		return err
	}

	if err = summaryRepo.Save(ctx, summary); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
