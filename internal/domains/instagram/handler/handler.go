package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	content "venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/domains/instagram/job"
	"venue-content-backend/internal/domains/instagram/model"
	"venue-content-backend/internal/domains/instagram/service"
	"venue-content-backend/internal/shared"
	"venue-content-backend/internal/shared/apperror"
	"venue-content-backend/internal/shared/form"
	"venue-content-backend/internal/shared/response"
	"venue-content-backend/pkg/keycodec"
)

const publicLimit = 12

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type syncer interface {
	Sync(ctx context.Context) (int, error)
	State() service.State
}

type Handler struct {
	posts service.PostService
	sync  syncer
	queue Enqueuer
}

func NewHandler(posts service.PostService, sync syncer, queue Enqueuer) *Handler {
	return &Handler{posts: posts, sync: sync, queue: queue}
}

// Sync handles POST /admin/instagram/sync and runs the sync inline.
func (h *Handler) Sync(c *gin.Context) {
	count, err := h.sync.Sync(c.Request.Context())
	if err != nil {
		var partial *service.SyncError
		if errors.As(err, &partial) {
			response.ErrorWithDetails(c, http.StatusBadGateway, apperror.CodePersistence, err.Error(),
				gin.H{"processed": partial.Processed, "total": partial.Total})
			return
		}
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"synced": count})
}

// SyncAsync handles POST /admin/instagram/sync/async.
func (h *Handler) SyncAsync(c *gin.Context) {
	if h.queue == nil {
		response.FromError(c, apperror.MissingConfiguration("job queue"))
		return
	}
	task, err := job.NewSyncTask("admin")
	if err != nil {
		response.FromError(c, err)
		return
	}
	info, err := h.queue.Enqueue(task, asynq.Queue(shared.QueueFeed), asynq.MaxRetry(2))
	if err != nil {
		log.Error().Err(err).Msg("enqueue instagram sync failed")
		response.InternalServerError(c, "could not enqueue sync")
		return
	}
	response.Success(c, http.StatusAccepted, gin.H{"taskId": info.ID, "queue": info.Queue})
}

// Status handles GET /admin/instagram/sync.
func (h *Handler) Status(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"state": h.sync.State().String()})
}

// AdminList handles GET /admin/instagram
func (h *Handler) AdminList(c *gin.Context) {
	items, err := h.posts.List(c.Request.Context(), model.PostFilter{})
	if err != nil {
		response.FromError(c, err)
		return
	}
	respondList(c, items)
}

// Curate handles PATCH /admin/instagram/:id
func (h *Handler) Curate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.FromError(c, apperror.InvalidField("id", "must be a valid id"))
		return
	}
	values, err := form.Parse(c, 1<<20)
	if err != nil {
		response.FromError(c, err)
		return
	}
	patch, err := bindPatch(values)
	if err != nil {
		response.FromError(c, err)
		return
	}
	post, err := h.posts.Curate(c.Request.Context(), id, patch)
	if err != nil {
		response.FromError(c, err)
		return
	}
	obj, err := keycodec.EncodeStruct(post)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, obj)
}

// Delete handles DELETE /admin/instagram/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.FromError(c, apperror.InvalidField("id", "must be a valid id"))
		return
	}
	if err := h.posts.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id})
}

// PublicList handles GET /venues/:venue/instagram
func (h *Handler) PublicList(c *gin.Context) {
	venue, err := content.ParseVenueScope(c.Param("venue"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	items, err := h.posts.List(c.Request.Context(), model.PostFilter{Venue: venue, VisibleOnly: true, Limit: publicLimit})
	if err != nil {
		response.DegradedList(c, err)
		return
	}
	respondList(c, items)
}

func bindPatch(v *form.Values) (*model.PostPatch, error) {
	patch := &model.PostPatch{}
	if v.Has("isVisible") {
		b := v.Bool("isVisible")
		patch.IsVisible = &b
	}
	if v.Has("venueTag") {
		venue := content.VenueTag(v.String("venueTag"))
		patch.VenueTag = &venue
	}
	order, err := v.OptInt("displayOrder")
	if err != nil {
		return nil, err
	}
	patch.DisplayOrder = order
	return patch, nil
}

func respondList(c *gin.Context, items []model.Post) {
	objs, err := keycodec.EncodeSlice(items)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, objs, &response.Meta{Total: len(objs)})
}
