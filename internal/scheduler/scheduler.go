// Package scheduler runs periodic jobs on a cron schedule in a fixed time zone.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultDayRollover fires at local midnight
const DefaultDayRollover = "0 0 * * *"

// Job is executed on every scheduled run
type Job func(ctx context.Context)

// Scheduler executes a job on a cron schedule
type Scheduler struct {
	name     string
	schedule cron.Schedule
	loc      *time.Location
	job      Job
	logger   *zap.Logger
	now      func() time.Time
	stopChan chan struct{}
	done     chan struct{}

	mu       sync.Mutex
	started  bool
	stopped  bool
	stopOnce sync.Once
}

// NewScheduler creates a scheduler for a standard cron expression evaluated in loc
func NewScheduler(name, cronExpr string, loc *time.Location, job Job, logger *zap.Logger) (*Scheduler, error) {
	schedule, err := cron.ParseStandard(cronExpr)
	if err != nil {
		return nil, fmt.Errorf("invalid cron expression: %w", err)
	}
	if loc == nil {
		loc = time.UTC
	}

	return &Scheduler{
		name:     name,
		schedule: schedule,
		loc:      loc,
		job:      job,
		logger:   logger,
		now:      time.Now,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// CalculateNextRun calculates the next run time from a cron expression
func CalculateNextRun(cronExpr string, fromTime time.Time) (time.Time, error) {
	schedule, err := cron.ParseStandard(cronExpr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid cron expression: %w", err)
	}

	return schedule.Next(fromTime), nil
}

// NextRun returns the first run after t
func (s *Scheduler) NextRun(t time.Time) time.Time {
	return s.schedule.Next(t.In(s.loc))
}

// Start starts the scheduler. Starting twice or after Stop does nothing.
func (s *Scheduler) Start() {
	s.mu.Lock()
	if s.started || s.stopped {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	s.logger.Info("Scheduler started", zap.String("job", s.name), zap.Time("next_run", s.NextRun(s.now())))
	go s.run()
}

// Stop stops the scheduler and waits for a running job to finish.
// It is safe to call more than once and without a prior Start.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		s.stopped = true
		started := s.started
		s.mu.Unlock()

		close(s.stopChan)
		if started {
			<-s.done
		}
		s.logger.Info("Scheduler stopped", zap.String("job", s.name))
	})
}

// run executes the scheduler loop
func (s *Scheduler) run() {
	defer close(s.done)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for {
		now := s.now()
		timer := time.NewTimer(s.NextRun(now).Sub(now))

		select {
		case <-timer.C:
			s.logger.Debug("Running scheduled job", zap.String("job", s.name))
			s.job(ctx)
		case <-s.stopChan:
			timer.Stop()
			return
		}
	}
}
