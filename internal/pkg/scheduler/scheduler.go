package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/sentinela-app/sentinela/internal/pkg/logger"
)

// Job is a named unit of recurring background work
type Job struct {
	Name     string
	Schedule string // cron expression or descriptor like "@every 1h"
	Run      func(ctx context.Context) error
}

// Scheduler runs recurring maintenance jobs on cron schedules
type Scheduler struct {
	cron *cron.Cron
}

// NewScheduler creates a scheduler with support for @every descriptors
func NewScheduler() *Scheduler {
	return &Scheduler{
		cron: cron.New(),
	}
}

// AddJob registers a job; errors from the job are logged, not fatal
func (s *Scheduler) AddJob(job Job) error {
	_, err := s.cron.AddFunc(job.Schedule, func() {
		if err := job.Run(context.Background()); err != nil {
			logger.Error("Scheduled job failed",
				logger.String("job", job.Name),
				logger.Err(err))
			return
		}
		logger.Debug("Scheduled job completed",
			logger.String("job", job.Name))
	})
	return err
}

// Start begins running scheduled jobs in their own goroutine
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the scheduler and waits for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
