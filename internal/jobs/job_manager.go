// Package jobs provides the scheduled background tasks of the marketplace,
// built on github.com/robfig/cron/v3. The only job today is the stale-order
// watch; jobs never mutate state.
package jobs

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"kabalen/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleOrdersJob *StaleOrdersJob
}

// NewJobManager creates a job manager with all required jobs wired to their
// query handlers.
func NewJobManager(
	staleOrdersHandler queries.GetStalePendingOrdersQueryHandler,
	staleThreshold time.Duration,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		staleOrdersJob: NewStaleOrdersJob(staleOrdersHandler, staleThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.staleOrdersJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale orders job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleOrdersJob.Stop()
}
