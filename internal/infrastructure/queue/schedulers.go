package queue

import (
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"venue-content-backend/internal/domains/instagram/job"
	"venue-content-backend/internal/shared"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
	schedule  string
}

func NewScheduler(redis asynq.RedisConnOpt, syncSchedule string) *Scheduler {
	scheduler := asynq.NewScheduler(redis, &asynq.SchedulerOpts{
		Location: time.UTC,
		LogLevel: asynq.WarnLevel,
	})
	return &Scheduler{scheduler: scheduler, schedule: syncSchedule}
}

// RegisterJobs registers every periodic task. An empty schedule disables the feed sync.
func (s *Scheduler) RegisterJobs() error {
	if s.schedule == "" {
		log.Warn().Msg("instagram sync schedule empty, periodic sync disabled")
		return nil
	}
	return s.registerInstagramSync()
}

func (s *Scheduler) registerInstagramSync() error {
	sched, err := cron.ParseStandard(s.schedule)
	if err != nil {
		return fmt.Errorf("invalid instagram sync schedule %q: %w", s.schedule, err)
	}

	task, err := job.NewSyncTask("schedule")
	if err != nil {
		return err
	}
	_, err = s.scheduler.Register(s.schedule, task,
		asynq.Queue(shared.QueueFeed),
		asynq.MaxRetry(2),
		asynq.Timeout(5*time.Minute),
		// a slow run must not pile up behind the next tick
		asynq.Unique(30*time.Minute),
	)
	if err != nil {
		return fmt.Errorf("register instagram sync: %w", err)
	}

	log.Info().
		Str("schedule", s.schedule).
		Time("next_run", sched.Next(time.Now().UTC())).
		Msg("registered instagram sync")
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Start()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
