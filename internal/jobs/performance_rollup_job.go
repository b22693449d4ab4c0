package jobs

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PerformanceRollupJob recomputes the per-agent monthly performance snapshot
// on a schedule. The snapshot backs reporting dashboards, so a stale run is
// harmless; the next run replaces it.
type PerformanceRollupJob struct {
	handler  commands.RefreshAgentPerformanceCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPerformanceRollupJob creates a job that refreshes the rollups on the
// given cron schedule. The schedule uses the six-field format with seconds.
func NewPerformanceRollupJob(
	handler commands.RefreshAgentPerformanceCommandHandler,
	schedule string,
	logger *slog.Logger,
) *PerformanceRollupJob {
	return &PerformanceRollupJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "performance_rollup_job"),
	}
}

// Start begins the scheduled rollup refreshes.
func (j *PerformanceRollupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewRefreshAgentPerformanceCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Performance rollup refresh failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Performance rollup job started", "schedule", j.schedule)
	return nil
}

// Stop stops the rollup job.
func (j *PerformanceRollupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Performance rollup job stopped")
}
