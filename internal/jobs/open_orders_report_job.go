package jobs

import (
	"context"
	"log/slog"

	"github.com/vkotsiuba99/rust-example-app/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OpenOrdersReportJob periodically logs how many orders currently hold line
// items. It gives operators a cheap pulse on shop activity without a metrics
// stack.
type OpenOrdersReportJob struct {
	handler queries.CountOpenOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOpenOrdersReportJob creates a job that reports the open-order count
// every minute.
func NewOpenOrdersReportJob(handler queries.CountOpenOrdersQueryHandler, logger *slog.Logger) *OpenOrdersReportJob {
	return &OpenOrdersReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "open_orders_report_job"),
	}
}

// Start schedules the report to run every minute.
func (j *OpenOrdersReportJob) Start() error {
	_, err := j.cron.AddFunc("@every 1m", func() {
		ctx := context.Background()
		query := queries.NewCountOpenOrdersQuery()

		count, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Open orders report failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Open orders report", "open_orders", count)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Open orders report job started (running every minute)")
	return nil
}

// Stop stops the report job.
func (j *OpenOrdersReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Open orders report job stopped")
}
