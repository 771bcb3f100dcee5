package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"venue-content-backend/pkg/container"
)

type HealthChecker struct {
	c *container.Container
}

// startServices runs startup checks and exposes /health and /ready for probes.
func startServices(c *container.Container) error {
	checker := &HealthChecker{c: c}
	if err := checker.checkAll(); err != nil {
		return err
	}

	go startHealthCheckServer(checker)
	return nil
}

func (h *HealthChecker) checkAll() error {
	checks := []struct {
		name string
		fn   func(ctx context.Context) error
	}{
		{"Database", h.c.DB.Ping},
		{"Redis", h.c.Redis.Connect},
	}

	for _, check := range checks {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := check.fn(ctx)
		cancel()
		if err != nil {
			return fmt.Errorf("%s failed: %w", check.name, err)
		}
		log.Info().Str("check", check.name).Msg("[Startup] ok")
	}

	if !h.c.Synchronizer.Configured() {
		log.Warn().Msg("[Startup] INSTAGRAM_ACCESS_TOKEN not set, scheduled syncs will be skipped")
	}
	return nil
}

func startHealthCheckServer(h *HealthChecker) {
	r := gin.New()
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "service": "venue-content-worker"})
	})
	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.c.DB.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "NOT_READY"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "READY", "instagramSync": h.c.Synchronizer.State().String()})
	})

	log.Info().Msg("[Health] listening on :9999")
	if err := http.ListenAndServe(":9999", r); err != nil {
		log.Error().Err(err).Msg("[Health] failed to start")
	}
}
