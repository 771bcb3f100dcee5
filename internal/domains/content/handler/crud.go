package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/domains/content/service"
	"venue-content-backend/internal/shared/apperror"
	"venue-content-backend/internal/shared/form"
	"venue-content-backend/internal/shared/response"
	"venue-content-backend/pkg/keycodec"
)

// writer is what every image-bearing entity service offers.
type writer[T any, F any, R any] interface {
	service.Reader[T, F]
	Create(ctx context.Context, req *R) (*T, error)
	Update(ctx context.Context, id uuid.UUID, req *R) (*T, error)
}

// crud wires one entity's service to the shared admin and public routes.
type crud[T any, F any, R any] struct {
	svc       writer[T, F, R]
	bind      func(v *form.Values) (*R, error)
	public    func(c *gin.Context, venue model.VenueTag) (F, error)
	admin     func(c *gin.Context) (F, error)
	visible   func(item *T) bool // public single-item visibility; nil = always
	maxUpload int64
}

// =====================================================
// ADMIN
// =====================================================

// Create handles POST /admin/<entity>
func (h *crud[T, F, R]) Create(c *gin.Context) {
	req, ok := h.parse(c)
	if !ok {
		return
	}
	item, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	respondItem(c, http.StatusCreated, item)
}

// Update handles PUT /admin/<entity>/:id
func (h *crud[T, F, R]) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	req, ok := h.parse(c)
	if !ok {
		return
	}
	item, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	respondItem(c, http.StatusOK, item)
}

// Delete handles DELETE /admin/<entity>/:id
func (h *crud[T, F, R]) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id})
}

// AdminGet handles GET /admin/<entity>/:id
func (h *crud[T, F, R]) AdminGet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	respondItem(c, http.StatusOK, item)
}

// AdminList handles GET /admin/<entity>
func (h *crud[T, F, R]) AdminList(c *gin.Context) {
	filter, err := h.admin(c)
	if err != nil {
		response.FromError(c, err)
		return
	}
	items, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		response.FromError(c, err)
		return
	}
	respondList(c, items)
}

// =====================================================
// PUBLIC
// =====================================================

// PublicList handles GET /venues/:venue/<entity>. Store failures degrade to an empty
// list flagged with dataError.
func (h *crud[T, F, R]) PublicList(c *gin.Context) {
	venue, err := model.ParseVenueScope(c.Param("venue"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	filter, err := h.public(c, venue)
	if err != nil {
		response.FromError(c, err)
		return
	}
	items, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		response.DegradedList(c, err)
		return
	}
	respondList(c, items)
}

// PublicGet handles GET /<entity>/:id
func (h *crud[T, F, R]) PublicGet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.svc.Get(c.Request.Context(), id)
	if err == nil && h.visible != nil && !h.visible(item) {
		err = apperror.NotFound("item")
	}
	if err != nil {
		response.FromError(c, err)
		return
	}
	respondItem(c, http.StatusOK, item)
}

func (h *crud[T, F, R]) parse(c *gin.Context) (*R, bool) {
	values, err := form.Parse(c, h.maxUpload)
	if err != nil {
		response.FromError(c, err)
		return nil, false
	}
	req, err := h.bind(values)
	if err != nil {
		response.FromError(c, err)
		return nil, false
	}
	return req, true
}

// =====================================================
// HELPERS
// =====================================================

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.FromError(c, apperror.InvalidField("id", "must be a valid id"))
		return uuid.Nil, false
	}
	return id, true
}

// respondItem renders the entity in its external camelCase form.
func respondItem(c *gin.Context, status int, item any) {
	obj, err := keycodec.EncodeStruct(item)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, status, obj)
}

func respondList[T any](c *gin.Context, items []T) {
	objs, err := keycodec.EncodeSlice(items)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, objs, &response.Meta{Total: len(objs)})
}
