package main

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"venue-content-backend/internal/shared"
	"venue-content-backend/pkg/container"
)

type asynqServer struct {
	*asynq.Server
}

func setupAsynqServer(c *container.Container, handlers *HandlerRegistry) *asynqServer {
	mux := asynq.NewServeMux()
	handlers.RegisterHandlers(mux)

	srv := asynq.NewServer(
		container.RedisConnOpt(c.Config),
		asynq.Config{
			Queues: shared.QueueWeights,
			// A sync holds the feed for minutes; more workers only queue up behind the guard.
			Concurrency:     4,
			ShutdownTimeout: 30 * time.Second,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("type", task.Type()).Msg("[Asynq] task failed")
			}),
		},
	)

	go func() {
		log.Info().Msg("[Worker] starting")
		if err := srv.Run(mux); err != nil {
			log.Fatal().Err(err).Msg("[Worker] failed")
		}
	}()

	return &asynqServer{Server: srv}
}

// Shutdown waits for in-flight tasks up to asynq's ShutdownTimeout.
func (s *asynqServer) Shutdown() {
	log.Info().Msg("[Worker] shutting down")
	s.Server.Shutdown()
	log.Info().Msg("[Worker] stopped")
}
