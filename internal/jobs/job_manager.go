package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	cron    *cron.Cron
	overdue *OverdueOrdersJob
	spec    string
	logger  *slog.Logger
}

// NewJobManager creates a job manager. An empty overdueSpec falls back to
// DefaultOverdueSchedule; specs use the six-field form with seconds.
func NewJobManager(overdue *OverdueOrdersJob, overdueSpec string, logger *slog.Logger) *JobManager {
	if overdueSpec == "" {
		overdueSpec = DefaultOverdueSchedule
	}
	return &JobManager{
		cron:    cron.New(cron.WithSeconds()),
		overdue: overdue,
		spec:    overdueSpec,
		logger:  logger.With("component", "job_manager"),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to be scheduled.
func (jm *JobManager) StartAll() error {
	_, err := jm.cron.AddFunc(jm.spec, func() {
		ctx := context.Background()
		if _, err := jm.overdue.Run(ctx); err != nil {
			jm.logger.ErrorContext(ctx, "Overdue orders job failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule overdue orders job: %w", err)
	}

	jm.cron.Start()
	jm.logger.Info("Jobs started", "overdue_orders", jm.spec)
	return nil
}

// StopAll stops the scheduler and waits for running jobs to finish.
func (jm *JobManager) StopAll() {
	<-jm.cron.Stop().Done()
	jm.logger.Info("Jobs stopped")
}
