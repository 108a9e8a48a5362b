// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the request path should not pay for.
//
// # Available Jobs
//
// 1. RatingReconciliationJob - Runs nightly to rebuild every product's rating
// summary from the live reviews, correcting running-mean drift
// 2. CartCleanupJob - Runs hourly to delete carts nobody has touched for
// thirty days
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reconcileHandler, cleanupHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Rating reconciliation runs at 03:00 every night ("0 3 * * *"). Cart
// cleanup runs at the top of every hour ("0 * * * *"). Both are cheap
// enough that overlap with live traffic is not a concern.
//
// # Error Handling
//
// Both jobs log failures and let the next scheduled run retry; neither
// has business errors worth suppressing.
package jobs
