package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"venue-content-backend/internal/domains/content/attachment"
	"venue-content-backend/pkg/keycodec"
)

// Deal is a drink or food special. A nil DayOfWeek means it runs every day.
//
// DATABASE MAPPING: deals
type Deal struct {
	ID           uuid.UUID `db:"id" json:"id"`
	VenueTag     VenueTag  `db:"venue_tag" json:"venue_tag"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	DayOfWeek    *string   `db:"day_of_week" json:"day_of_week"`
	StartTime    *string   `db:"start_time" json:"start_time"`
	EndTime      *string   `db:"end_time" json:"end_time"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	ImageURL     *string   `db:"image_url" json:"image_url"`
	DisplayOrder int       `db:"display_order" json:"display_order"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// RunsOn reports whether the deal applies on the given weekday.
func (d *Deal) RunsOn(day string) bool {
	return d.DayOfWeek == nil || *d.DayOfWeek == day
}

type DealRequest struct {
	VenueTag     VenueTag
	Title        string
	Description  string
	DayOfWeek    *string
	StartTime    *string
	EndTime      *string
	IsActive     bool
	ImageURL     string
	Image        *attachment.File
	DisplayOrder int
}

func (r *DealRequest) Validate() error {
	r.StartTime = blankToNil(r.StartTime)
	r.EndTime = blankToNil(r.EndTime)

	if err := firstError(
		field("title", r.Title, validation.Required, validation.Length(1, 200)),
		field("description", r.Description, validation.Required),
		field("venueTag", r.VenueTag, validation.Required, validation.In(VenueTags...)),
		field("startTime", r.StartTime, ClockTime),
		field("endTime", r.EndTime, ClockTime),
		field("displayOrder", r.DisplayOrder, validation.Min(0)),
	); err != nil {
		return err
	}
	return normalizeDayPtr("dayOfWeek", &r.DayOfWeek)
}

func (r *DealRequest) ImageInput(previous *string) attachment.Input {
	return attachment.Input{
		Field:    "imageUrl",
		File:     r.Image,
		URL:      r.ImageURL,
		Folder:   attachment.FolderDeals,
		Previous: previous,
	}
}

func (r *DealRequest) Row(imageURL *string) keycodec.Object {
	return keycodec.Object{
		{Key: "venueTag", Value: r.VenueTag},
		{Key: "title", Value: r.Title},
		{Key: "description", Value: r.Description},
		{Key: "dayOfWeek", Value: r.DayOfWeek},
		{Key: "startTime", Value: r.StartTime},
		{Key: "endTime", Value: r.EndTime},
		{Key: "isActive", Value: r.IsActive},
		{Key: "imageUrl", Value: imageURL},
		{Key: "displayOrder", Value: r.DisplayOrder},
	}
}

type DealFilter struct {
	Venue      VenueTag
	Day        string // deals for this weekday plus daily deals
	ActiveOnly bool
}
