package main

import (
	"github.com/rs/zerolog/log"

	"venue-content-backend/internal/infrastructure/queue"
	"venue-content-backend/pkg/container"
)

type asynqScheduler struct {
	*queue.Scheduler
}

func setupScheduler(c *container.Container) *asynqScheduler {
	scheduler := queue.NewScheduler(container.RedisConnOpt(c.Config), c.Config.Jobs.InstagramSyncSchedule)

	if err := scheduler.RegisterJobs(); err != nil {
		log.Fatal().Err(err).Msg("[Scheduler] failed to register")
	}

	go func() {
		log.Info().Msg("[Scheduler] starting")
		if err := scheduler.Start(); err != nil {
			log.Fatal().Err(err).Msg("[Scheduler] failed")
		}
	}()

	return &asynqScheduler{Scheduler: scheduler}
}

func (s *asynqScheduler) Shutdown() {
	log.Info().Msg("[Scheduler] shutting down")
	s.Scheduler.Shutdown()
}
