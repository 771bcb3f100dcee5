package main

import (
	"github.com/hibiken/asynq"

	"venue-content-backend/internal/domains/instagram/job"
	"venue-content-backend/internal/shared"
	"venue-content-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	instagramSync *job.SyncHandler
}

func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		instagramSync: job.NewSyncHandler(c.Synchronizer),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeInstagramSync, h.instagramSync.ProcessTask)
}
