package jobs

import (
	"context"
	"log/slog"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// DefaultReconciliationSchedule runs the job at second 0 of every minute.
const DefaultReconciliationSchedule = "0 * * * * *"

// ReleaseIdleDriversHandler releases drivers stuck in DELIVERY.
type ReleaseIdleDriversHandler interface {
	Handle(ctx context.Context, cmd commands.ReleaseIdleDriversCommand) (int64, error)
}

// DriverReconciliationJob returns to FREE every driver in DELIVERY that no
// open order references. Such drivers are left behind when an order is
// deleted before completion.
type DriverReconciliationJob struct {
	handler  ReleaseIdleDriversHandler
	schedule string
	metrics  *metrics.Metrics
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDriverReconciliationJob creates the job. schedule is a six-field cron
// expression (with seconds); empty means DefaultReconciliationSchedule.
func NewDriverReconciliationJob(
	handler ReleaseIdleDriversHandler,
	schedule string,
	m *metrics.Metrics,
	logger *slog.Logger,
) *DriverReconciliationJob {
	if schedule == "" {
		schedule = DefaultReconciliationSchedule
	}
	return &DriverReconciliationJob{
		handler:  handler,
		schedule: schedule,
		metrics:  m,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "driver_reconciliation_job"),
	}
}

// Start schedules the job. It fails on an invalid cron expression.
func (j *DriverReconciliationJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Driver reconciliation job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *DriverReconciliationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Driver reconciliation job stopped")
}

// Run performs one reconciliation pass.
func (j *DriverReconciliationJob) Run(ctx context.Context) {
	released, err := j.handler.Handle(ctx, commands.NewReleaseIdleDriversCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Driver reconciliation failed", "error", err)
		return
	}

	j.metrics.DriversReleased(released)
	if released > 0 {
		j.logger.InfoContext(ctx, "Released idle drivers", "count", released)
	}
}
