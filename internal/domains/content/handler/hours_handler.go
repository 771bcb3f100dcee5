package handler

import (
	"github.com/gin-gonic/gin"

	"venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/domains/content/service"
	"venue-content-backend/internal/shared/apperror"
	"venue-content-backend/internal/shared/form"
	"venue-content-backend/internal/shared/response"
)

type OperatingHourHandler struct {
	crud[model.OperatingHour, model.OperatingHourFilter, model.OperatingHourRequest]
	service service.OperatingHourService
}

func NewOperatingHourHandler(svc service.OperatingHourService, maxUpload int64) *OperatingHourHandler {
	return &OperatingHourHandler{
		crud: crud[model.OperatingHour, model.OperatingHourFilter, model.OperatingHourRequest]{
			svc:  svc,
			bind: bindOperatingHour,
			public: func(_ *gin.Context, venue model.VenueTag) (model.OperatingHourFilter, error) {
				return model.OperatingHourFilter{Venue: venue}, nil
			},
			admin: func(c *gin.Context) (model.OperatingHourFilter, error) {
				venue, err := adminVenue(c)
				return model.OperatingHourFilter{Venue: venue}, err
			},
			maxUpload: maxUpload,
		},
		service: svc,
	}
}

type replaceWeekRequest struct {
	Hours []map[string]any `json:"hours"`
}

// ReplaceWeek handles PUT /admin/hours/week
func (h *OperatingHourHandler) ReplaceWeek(c *gin.Context) {
	var body replaceWeekRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.FromError(c, apperror.InvalidField("hours", "expected {\"hours\": [...]}"))
		return
	}

	reqs := make([]*model.OperatingHourRequest, 0, len(body.Hours))
	for _, raw := range body.Hours {
		req, err := bindOperatingHour(form.New(raw))
		if err != nil {
			response.FromError(c, err)
			return
		}
		reqs = append(reqs, req)
	}

	hours, err := h.service.ReplaceWeek(c.Request.Context(), reqs)
	if err != nil {
		response.FromError(c, err)
		return
	}
	respondList(c, hours)
}
