package model

import (
	"github.com/google/uuid"

	content "venue-content-backend/internal/domains/content/model"
	instagram "venue-content-backend/internal/domains/instagram/model"
)

// Counts is the admin dashboard's row totals.
type Counts struct {
	Performers     int64 `json:"performers"`
	Events         int64 `json:"events"`
	Deals          int64 `json:"deals"`
	GalleryImages  int64 `json:"gallery_images"`
	Videos         int64 `json:"videos"`
	Posts          int64 `json:"posts"`
	OperatingHours int64 `json:"operating_hours"`
	Offerings      int64 `json:"special_offerings"`
	VenueContent   int64 `json:"venue_content"`
	InstagramPosts int64 `json:"instagram_posts"`
}

// PerformerRef is the slice of a performer shown next to an event.
type PerformerRef struct {
	ID              uuid.UUID             `json:"id"`
	Name            string                `json:"name"`
	PerformerType   content.PerformerType `json:"performer_type"`
	ProfileImageURL string                `json:"profile_image_url"`
}

// EventWithPerformer joins an event to its performer. Performer is nil when the event
// has none or the referenced performer is gone.
type EventWithPerformer struct {
	content.Event
	ScheduleLabel string        `json:"schedule_label"`
	Performer     *PerformerRef `json:"performer"`
}

// VenuePage is everything a venue's home page renders.
type VenuePage struct {
	Venue              content.VenueTag          `json:"venue"`
	Day                string                    `json:"day"`
	UpcomingEvents     []EventWithPerformer      `json:"upcoming_events"`
	TodaysDeals        []content.Deal            `json:"todays_deals"`
	FeaturedPerformers []content.Performer       `json:"featured_performers"`
	Hours              []content.OperatingHour   `json:"hours"`
	Offerings          []content.SpecialOffering `json:"offerings"`
	LatestPosts        []content.Post            `json:"latest_posts"`
	Gallery            []content.GalleryImage    `json:"gallery"`
	Instagram          []instagram.Post          `json:"instagram"`
	// Content keys are data, not field names; they are rendered verbatim.
	Content map[string]string `json:"-"`
}

// EmptyPage is the shape served when nothing else is available.
func EmptyPage(venue content.VenueTag, day string) *VenuePage {
	return &VenuePage{
		Venue:              venue,
		Day:                day,
		UpcomingEvents:     []EventWithPerformer{},
		TodaysDeals:        []content.Deal{},
		FeaturedPerformers: []content.Performer{},
		Hours:              []content.OperatingHour{},
		Offerings:          []content.SpecialOffering{},
		LatestPosts:        []content.Post{},
		Gallery:            []content.GalleryImage{},
		Instagram:          []instagram.Post{},
		Content:            map[string]string{},
	}
}
