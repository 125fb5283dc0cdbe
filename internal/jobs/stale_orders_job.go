package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"kabalen/internal/core/application/usecases/queries"
)

// StaleOrdersJob periodically reports pending orders that have sat on the
// board past the configured threshold. The job only reads and logs; acting on
// the backlog stays with the admin.
type StaleOrdersJob struct {
	handler   queries.GetStalePendingOrdersQueryHandler
	olderThan time.Duration
	cron      *cron.Cron
	logger    *zap.Logger
}

// NewStaleOrdersJob creates the watch job. It runs once a minute.
func NewStaleOrdersJob(
	handler queries.GetStalePendingOrdersQueryHandler,
	olderThan time.Duration,
	logger *zap.Logger,
) *StaleOrdersJob {
	return &StaleOrdersJob{
		handler:   handler,
		olderThan: olderThan,
		cron:      cron.New(),
		logger:    logger.With(zap.String("component", "stale_orders_job")),
	}
}

// Start schedules the watch.
func (j *StaleOrdersJob) Start() error {
	_, err := j.cron.AddFunc("@every 1m", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("stale orders job started",
		zap.Duration("older_than", j.olderThan))
	return nil
}

// Stop stops the watch.
func (j *StaleOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.Info("stale orders job stopped")
}

func (j *StaleOrdersJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetStalePendingOrdersQuery(j.olderThan)
	if err != nil {
		j.logger.Error("stale orders query rejected", zap.Error(err))
		return
	}

	stale, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.Error("stale orders check failed", zap.Error(err))
		return
	}

	if len(stale) == 0 {
		return
	}

	for _, o := range stale {
		j.logger.Warn("order unclaimed past threshold",
			zap.Int64("order_id", o.ID.Int64()),
			zap.String("pickup", o.Pickup),
			zap.String("dropoff", o.Dropoff),
			zap.Time("created_at", o.CreatedAt))
	}
}
