package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/domains/content/service"
)

// =====================================================
// PERFORMERS
// =====================================================

type PerformerHandler struct {
	crud[model.Performer, model.PerformerFilter, model.PerformerRequest]
}

func NewPerformerHandler(svc service.PerformerService, maxUpload int64) *PerformerHandler {
	filter := func(c *gin.Context, venue model.VenueTag) (model.PerformerFilter, error) {
		alumni, err := queryOptBool(c, "alumni")
		if err != nil {
			return model.PerformerFilter{}, err
		}
		limit, err := queryLimit(c, 0)
		return model.PerformerFilter{
			Venue:        venue,
			Type:         model.PerformerType(c.Query("type")),
			FeaturedOnly: queryBool(c, "featured"),
			Alumni:       alumni,
			Limit:        limit,
		}, err
	}
	return &PerformerHandler{crud[model.Performer, model.PerformerFilter, model.PerformerRequest]{
		svc:       svc,
		bind:      bindPerformer,
		public:    filter,
		admin:     func(c *gin.Context) (model.PerformerFilter, error) { return adminFilter(c, filter) },
		maxUpload: maxUpload,
	}}
}

// =====================================================
// EVENTS
// =====================================================

type EventHandler struct {
	crud[model.Event, model.EventFilter, model.EventRequest]
}

func NewEventHandler(svc service.EventService, maxUpload int64) *EventHandler {
	return &EventHandler{crud[model.Event, model.EventFilter, model.EventRequest]{
		svc:  svc,
		bind: bindEvent,
		// Public listings show published events from today on, plus weekly events.
		public: func(c *gin.Context, venue model.VenueTag) (model.EventFilter, error) {
			today := time.Now()
			performer, err := queryUUID(c, "performerId")
			if err != nil {
				return model.EventFilter{}, err
			}
			limit, err := queryLimit(c, 0)
			f := model.EventFilter{Venue: venue, Status: model.EventPublished, PerformerID: performer, Limit: limit}
			if !queryBool(c, "past") {
				f.UpcomingFrom = &today
			}
			return f, err
		},
		admin: func(c *gin.Context) (model.EventFilter, error) {
			venue, err := adminVenue(c)
			if err != nil {
				return model.EventFilter{}, err
			}
			performer, err := queryUUID(c, "performerId")
			return model.EventFilter{Venue: venue, Status: model.EventStatus(c.Query("status")), PerformerID: performer}, err
		},
		visible:   func(e *model.Event) bool { return e.Status == model.EventPublished },
		maxUpload: maxUpload,
	}}
}

// =====================================================
// DEALS
// =====================================================

type DealHandler struct {
	crud[model.Deal, model.DealFilter, model.DealRequest]
}

func NewDealHandler(svc service.DealService, maxUpload int64) *DealHandler {
	return &DealHandler{crud[model.Deal, model.DealFilter, model.DealRequest]{
		svc:  svc,
		bind: bindDeal,
		public: func(c *gin.Context, venue model.VenueTag) (model.DealFilter, error) {
			day, err := queryDay(c, time.Now())
			return model.DealFilter{Venue: venue, Day: day, ActiveOnly: true}, err
		},
		admin: func(c *gin.Context) (model.DealFilter, error) {
			venue, err := adminVenue(c)
			if err != nil {
				return model.DealFilter{}, err
			}
			day, err := queryDay(c, time.Now())
			return model.DealFilter{Venue: venue, Day: day, ActiveOnly: queryBool(c, "active")}, err
		},
		visible:   func(d *model.Deal) bool { return d.IsActive },
		maxUpload: maxUpload,
	}}
}

// =====================================================
// GALLERY
// =====================================================

type GalleryImageHandler struct {
	crud[model.GalleryImage, model.GalleryFilter, model.GalleryImageRequest]
}

func NewGalleryImageHandler(svc service.GalleryImageService, maxUpload int64) *GalleryImageHandler {
	filter := func(c *gin.Context, venue model.VenueTag) (model.GalleryFilter, error) {
		event, err := queryUUID(c, "eventId")
		if err != nil {
			return model.GalleryFilter{}, err
		}
		limit, err := queryLimit(c, 0)
		return model.GalleryFilter{
			Venue:        venue,
			Category:     c.Query("category"),
			EventID:      event,
			FeaturedOnly: queryBool(c, "featured"),
			Limit:        limit,
		}, err
	}
	return &GalleryImageHandler{crud[model.GalleryImage, model.GalleryFilter, model.GalleryImageRequest]{
		svc:       svc,
		bind:      bindGalleryImage,
		public:    filter,
		admin:     func(c *gin.Context) (model.GalleryFilter, error) { return adminFilter(c, filter) },
		maxUpload: maxUpload,
	}}
}

// =====================================================
// VIDEOS
// =====================================================

type VideoHandler struct {
	crud[model.Video, model.VideoFilter, model.VideoRequest]
}

func NewVideoHandler(svc service.VideoService, maxUpload int64) *VideoHandler {
	filter := func(c *gin.Context, venue model.VenueTag) (model.VideoFilter, error) {
		performer, err := queryUUID(c, "performerId")
		if err != nil {
			return model.VideoFilter{}, err
		}
		limit, err := queryLimit(c, 0)
		return model.VideoFilter{Venue: venue, PerformerID: performer, FeaturedOnly: queryBool(c, "featured"), Limit: limit}, err
	}
	return &VideoHandler{crud[model.Video, model.VideoFilter, model.VideoRequest]{
		svc:       svc,
		bind:      bindVideo,
		public:    filter,
		admin:     func(c *gin.Context) (model.VideoFilter, error) { return adminFilter(c, filter) },
		maxUpload: maxUpload,
	}}
}

// =====================================================
// POSTS
// =====================================================

type PostHandler struct {
	crud[model.Post, model.PostFilter, model.PostRequest]
}

func NewPostHandler(svc service.PostService, maxUpload int64) *PostHandler {
	return &PostHandler{crud[model.Post, model.PostFilter, model.PostRequest]{
		svc:  svc,
		bind: bindPost,
		public: func(c *gin.Context, venue model.VenueTag) (model.PostFilter, error) {
			limit, err := queryLimit(c, 20)
			return model.PostFilter{Venue: venue, PublishedOnly: true, Limit: limit}, err
		},
		admin: func(c *gin.Context) (model.PostFilter, error) {
			venue, err := adminVenue(c)
			return model.PostFilter{Venue: venue, PublishedOnly: queryBool(c, "published")}, err
		},
		visible:   func(p *model.Post) bool { return p.IsPublished },
		maxUpload: maxUpload,
	}}
}

// =====================================================
// SPECIAL OFFERINGS
// =====================================================

type SpecialOfferingHandler struct {
	crud[model.SpecialOffering, model.SpecialOfferingFilter, model.SpecialOfferingRequest]
}

func NewSpecialOfferingHandler(svc service.SpecialOfferingService, maxUpload int64) *SpecialOfferingHandler {
	return &SpecialOfferingHandler{crud[model.SpecialOffering, model.SpecialOfferingFilter, model.SpecialOfferingRequest]{
		svc:  svc,
		bind: bindSpecialOffering,
		public: func(c *gin.Context, venue model.VenueTag) (model.SpecialOfferingFilter, error) {
			return model.SpecialOfferingFilter{Venue: venue, Type: model.OfferingType(c.Query("type")), ActiveOnly: true}, nil
		},
		admin: func(c *gin.Context) (model.SpecialOfferingFilter, error) {
			venue, err := adminVenue(c)
			return model.SpecialOfferingFilter{Venue: venue, Type: model.OfferingType(c.Query("type")), ActiveOnly: queryBool(c, "active")}, err
		},
		visible:   func(o *model.SpecialOffering) bool { return o.IsActive },
		maxUpload: maxUpload,
	}}
}

// adminFilter reuses a public filter builder with the optional admin ?venue= scope.
func adminFilter[F any](c *gin.Context, public func(*gin.Context, model.VenueTag) (F, error)) (F, error) {
	venue, err := adminVenue(c)
	if err != nil {
		var zero F
		return zero, err
	}
	return public(c, venue)
}
