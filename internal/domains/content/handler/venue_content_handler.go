package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/domains/content/service"
	"venue-content-backend/internal/shared/form"
	"venue-content-backend/internal/shared/response"
)

type VenueContentHandler struct {
	service   service.VenueContentService
	maxUpload int64
}

func NewVenueContentHandler(svc service.VenueContentService, maxUpload int64) *VenueContentHandler {
	return &VenueContentHandler{service: svc, maxUpload: maxUpload}
}

// Upsert handles PUT /admin/content
func (h *VenueContentHandler) Upsert(c *gin.Context) {
	values, err := form.Parse(c, h.maxUpload)
	if err != nil {
		response.FromError(c, err)
		return
	}
	item, err := h.service.Upsert(c.Request.Context(), bindVenueContent(values))
	if err != nil {
		response.FromError(c, err)
		return
	}
	respondItem(c, http.StatusOK, item)
}

// Delete handles DELETE /admin/content/:id
func (h *VenueContentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id})
}

// AdminList handles GET /admin/content
func (h *VenueContentHandler) AdminList(c *gin.Context) {
	venue, err := adminVenue(c)
	if err != nil {
		response.FromError(c, err)
		return
	}
	items, err := h.service.List(c.Request.Context(), model.VenueContentFilter{Venue: venue})
	if err != nil {
		response.FromError(c, err)
		return
	}
	respondList(c, items)
}

// PublicList handles GET /venues/:venue/content and returns a key -> content map
// alongside the rows.
func (h *VenueContentHandler) PublicList(c *gin.Context) {
	venue, err := model.ParseVenueScope(c.Param("venue"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	items, err := h.service.List(c.Request.Context(), model.VenueContentFilter{Venue: venue})
	if err != nil {
		response.DegradedList(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"content": model.ContentMap(items)})
}
