package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	content "venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/domains/dashboard/model"
	"venue-content-backend/internal/shared/apperror"
	"venue-content-backend/internal/shared/response"
	"venue-content-backend/pkg/cache"
	"venue-content-backend/pkg/keycodec"
)

const (
	FreshPagePattern = "page:fresh:*"
	countsKey        = "dashboard:counts"
	pageWarning      = "some content is temporarily unavailable"
	countsWarning    = "counts are temporarily unavailable"
)

func freshKey(v content.VenueTag) string { return "page:fresh:" + string(v) }
func staleKey(v content.VenueTag) string { return "page:stale:" + string(v) }

type aggregator interface {
	Counts(ctx context.Context) (*model.Counts, error)
	VenuePage(ctx context.Context, venue content.VenueTag, now time.Time) (*model.VenuePage, error)
	ExportEvents(ctx context.Context, venue content.VenueTag) (*excelize.File, int, error)
}

type Config struct {
	PageTTL  time.Duration
	StaleTTL time.Duration
}

type Handler struct {
	agg   aggregator
	cache cache.Cache // optional
	cfg   Config
	now   func() time.Time
}

func NewHandler(agg aggregator, c cache.Cache, cfg Config) *Handler {
	return &Handler{agg: agg, cache: c, cfg: cfg, now: time.Now}
}

// VenuePage handles GET /venues/:venue/page.
// Order of preference: fresh cache, live read, stale copy, empty page.
func (h *Handler) VenuePage(c *gin.Context) {
	venue, err := content.ParseVenueScope(c.Param("venue"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	ctx := c.Request.Context()

	var cached keycodec.Object
	if h.lookup(ctx, freshKey(venue), &cached) {
		response.SuccessWithMeta(c, http.StatusOK, cached, &response.Meta{Cached: "fresh"})
		return
	}

	now := h.now()
	page, err := h.agg.VenuePage(ctx, venue, now)
	if err == nil {
		obj, encErr := page.External()
		if encErr == nil {
			h.store(ctx, freshKey(venue), obj, h.cfg.PageTTL)
			h.store(ctx, staleKey(venue), obj, h.cfg.StaleTTL)
			response.Success(c, http.StatusOK, obj)
			return
		}
		err = encErr
	}

	log.Warn().Err(err).Str("venue", string(venue)).Msg("venue page degraded")
	meta := &response.Meta{DataError: true, Warning: pageWarning}
	if h.lookup(ctx, staleKey(venue), &cached) {
		meta.Cached = "stale"
		response.SuccessWithMeta(c, http.StatusOK, cached, meta)
		return
	}
	empty, encErr := model.EmptyPage(venue, now.Weekday().String()).External()
	if encErr != nil {
		response.FromError(c, encErr)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, empty, meta)
}

// Counts handles GET /admin/dashboard.
func (h *Handler) Counts(c *gin.Context) {
	ctx := c.Request.Context()
	counts, err := h.agg.Counts(ctx)
	if err == nil {
		h.store(ctx, countsKey, counts, 0)
		respondCounts(c, counts, nil)
		return
	}

	log.Warn().Err(err).Msg("dashboard counts degraded")
	meta := &response.Meta{DataError: true, Warning: countsWarning}
	var last model.Counts
	if h.lookup(ctx, countsKey, &last) {
		meta.Cached = "stale"
		respondCounts(c, &last, meta)
		return
	}
	respondCounts(c, &model.Counts{}, meta)
}

// ExportEvents handles GET /admin/events/export?venue=.
func (h *Handler) ExportEvents(c *gin.Context) {
	venue := content.VenueTag(strings.ReplaceAll(strings.ToLower(c.Query("venue")), "-", "_"))
	if venue != "" && !venue.Valid() {
		response.FromError(c, apperror.InvalidField("venue", "must be rob_roy, konfusion or both"))
		return
	}

	f, n, err := h.agg.ExportEvents(c.Request.Context(), venue)
	if err != nil {
		response.FromError(c, err)
		return
	}
	defer f.Close()

	name := "events"
	if venue != "" {
		name += "-" + string(venue)
	}
	filename := fmt.Sprintf("%s-%s.xlsx", name, h.now().Format("20060102"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		log.Error().Err(err).Msg("write events export")
		return
	}
	log.Info().Str("venue", string(venue)).Int("events", n).Msg("events exported")
}

func respondCounts(c *gin.Context, counts *model.Counts, meta *response.Meta) {
	obj, err := keycodec.EncodeStruct(counts)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, obj, meta)
}

func (h *Handler) lookup(ctx context.Context, key string, dest interface{}) bool {
	if h.cache == nil {
		return false
	}
	found, err := h.cache.Get(ctx, key, dest)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		return false
	}
	return found
}

func (h *Handler) store(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Set(ctx, key, value, ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}
