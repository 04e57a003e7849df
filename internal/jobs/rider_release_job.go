package jobs

import (
	"context"
	"log/slog"

	"profast/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RiderReleaseJob reconciles rider work status. Riders flip to in_delivery
// on assignment but nothing flips them back when their last parcel
// completes; this job sweeps in_delivery riders and releases those with no
// active parcels left.
type RiderReleaseJob struct {
	handler commands.ReleaseRidersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRiderReleaseJob creates the reconciliation job.
func NewRiderReleaseJob(handler commands.ReleaseRidersCommandHandler, logger *slog.Logger) *RiderReleaseJob {
	return &RiderReleaseJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "rider_release_job"),
	}
}

// Start begins the rider release job, running every 30 seconds.
func (j *RiderReleaseJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewReleaseRidersCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Rider release job failed to build command", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Rider release job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rider release job started (running every 30 seconds)")
	return nil
}

// Stop stops the rider release job.
func (j *RiderReleaseJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Rider release job stopped")
}
