package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"venue-content-backend/internal/shared"
	"venue-content-backend/internal/shared/apperror"
)

// SyncPayload is the body of an instagram:sync task.
type SyncPayload struct {
	Trigger string `json:"trigger,omitempty"` // "schedule" or "admin"
}

func NewSyncTask(trigger string) (*asynq.Task, error) {
	payload, err := json.Marshal(SyncPayload{Trigger: trigger})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(shared.TypeInstagramSync, payload), nil
}

type syncer interface {
	Sync(ctx context.Context) (int, error)
}

type SyncHandler struct {
	sync syncer
}

func NewSyncHandler(s syncer) *SyncHandler {
	return &SyncHandler{sync: s}
}

// ProcessTask runs one sync. Outcomes a retry cannot fix are not retried.
func (h *SyncHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload SyncPayload
	if len(task.Payload()) > 0 {
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			return fmt.Errorf("decode %s payload: %v: %w", task.Type(), err, asynq.SkipRetry)
		}
	}

	count, err := h.sync.Sync(ctx)
	switch {
	case err == nil:
		log.Info().Str("trigger", payload.Trigger).Int("synced", count).Msg("instagram sync task done")
		return nil
	case apperror.Is(err, apperror.KindSyncInProgress),
		apperror.Is(err, apperror.KindMissingConfiguration),
		apperror.Is(err, apperror.KindEmptyFeed):
		log.Warn().Err(err).Str("trigger", payload.Trigger).Msg("instagram sync task skipped")
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	default:
		return err
	}
}
