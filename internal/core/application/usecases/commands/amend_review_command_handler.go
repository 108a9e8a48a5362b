package commands

import (
	"context"

	"marketplace/internal/pkg/errs"
)

// AmendReviewCommandHandler handles review amendments.
// The rating summary is adjusted by the difference between the old and new
// rating in the same transaction.
type AmendReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewAmendReviewCommandHandler creates a handler for review amendments.
func NewAmendReviewCommandHandler(uowFactory ReviewUoWFactory) AmendReviewCommandHandler {
	return AmendReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review amendment command.
func (h AmendReviewCommandHandler) Handle(ctx context.Context, cmd AmendReviewCommand) error {
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

	previousRating, err := posted.Amend(cmd.Rating(), cmd.Content())
	if err != nil {
		return err
	}

	if err = reviewRepo.Update(ctx, posted); err != nil {
		return err
	}

	summaryRepo := uow.SummaryRepository()
	summary, err := summaryRepo.Get(ctx, posted.ProductID())
	if err != nil {
		return err
	}

	if err = summary.Amend(previousRating, cmd.Rating()); err != nil {
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
