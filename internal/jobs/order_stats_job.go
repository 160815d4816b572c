// Package jobs provides scheduled background tasks. Jobs are built on
// github.com/robfig/cron/v3 and managed through JobManager, which starts
// and stops them as a group.
package jobs

import (
	"context"
	"log/slog"

	"ordertrack/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// orderStatsSchedule runs the stats snapshot at the top of every minute.
const orderStatsSchedule = "0 * * * * *"

// statsReader is the slice of the query layer the job needs. Satisfied
// by queries.GetOrderStatsQueryHandler.
type statsReader interface {
	Handle(ctx context.Context, query queries.GetOrderStatsQuery) (queries.GetOrderStatsQueryResponse, error)
}

// OrderStatsJob periodically logs a per-status order count snapshot.
// The log line is the operational pulse of the system: a stalled
// Pendiente count is the first sign the administrator fell behind.
type OrderStatsJob struct {
	handler statsReader
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderStatsJob creates the stats snapshot job.
func NewOrderStatsJob(handler statsReader, logger *slog.Logger) *OrderStatsJob {
	return &OrderStatsJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_stats_job"),
	}
}

// Start begins the stats job on its per-minute schedule.
func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc(orderStatsSchedule, func() {
		ctx := context.Background()

		stats, err := j.handler.Handle(ctx, queries.NewGetOrderStatsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Order stats job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Order stats",
			"pending", stats.Pending,
			"loaded", stats.Loaded,
			"operated", stats.Operated,
			"total", stats.Total,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order stats job started (running every minute)")
	return nil
}

// Stop stops the stats job.
func (j *OrderStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order stats job stopped")
}
