package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const (
	// cartCleanupSchedule runs the sweep at the top of every hour.
	cartCleanupSchedule = "0 * * * *"

	// abandonedCartAge is how long a cart may go untouched before the
	// sweep deletes it.
	abandonedCartAge = 30 * 24 * time.Hour
)

// CartCleanupJob deletes carts nobody has touched for thirty days. Every
// cart mutation refreshes its touched-at timestamp, so only genuinely
// abandoned carts age out.
type CartCleanupJob struct {
	handler commands.RemoveAbandonedCartsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCartCleanupJob creates the hourly abandoned-cart sweep.
func NewCartCleanupJob(handler commands.RemoveAbandonedCartsCommandHandler, logger *slog.Logger) *CartCleanupJob {
	return &CartCleanupJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "cart_cleanup_job"),
	}
}

// Start schedules the hourly sweep.
func (j *CartCleanupJob) Start() error {
	_, err := j.cron.AddFunc(cartCleanupSchedule, func() {
		ctx := context.Background()
		cmd, err := commands.NewRemoveAbandonedCartsCommand(abandonedCartAge)
		if err != nil {
			j.logger.ErrorContext(ctx, "Cart cleanup job misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Cart cleanup job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart cleanup job started (running hourly)")
	return nil
}

// Stop stops the cart cleanup job.
func (j *CartCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cart cleanup job stopped")
}
