package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ratingReconciliationSchedule runs the rebuild at 03:00 every night,
// when review traffic is lowest.
const ratingReconciliationSchedule = "0 3 * * *"

// RatingReconciliationJob rebuilds every product's rating summary from the
// live reviews. The request path maintains summaries incrementally with
// floating-point arithmetic; the nightly rebuild corrects any drift.
type RatingReconciliationJob struct {
	handler commands.ReconcileRatingsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRatingReconciliationJob creates the nightly rating rebuild job.
func NewRatingReconciliationJob(handler commands.ReconcileRatingsCommandHandler, logger *slog.Logger) *RatingReconciliationJob {
	return &RatingReconciliationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "rating_reconciliation_job"),
	}
}

// Start schedules the nightly rebuild.
func (j *RatingReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(ratingReconciliationSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewReconcileRatingsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Rating reconciliation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rating reconciliation job started (running nightly at 03:00)")
	return nil
}

// Stop stops the rating reconciliation job.
func (j *RatingReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Rating reconciliation job stopped")
}
