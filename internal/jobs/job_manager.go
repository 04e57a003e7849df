// Package jobs provides scheduled background tasks, built on
// github.com/robfig/cron/v3 and managed through JobManager.
package jobs

import (
	"fmt"
	"log/slog"

	"profast/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	riderReleaseJob *RiderReleaseJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	releaseRidersHandler commands.ReleaseRidersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		riderReleaseJob: NewRiderReleaseJob(releaseRidersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.riderReleaseJob.Start(); err != nil {
		return fmt.Errorf("failed to start rider release job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.riderReleaseJob.Stop()
}
