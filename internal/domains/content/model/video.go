package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"venue-content-backend/internal/domains/content/attachment"
	"venue-content-backend/pkg/keycodec"
)

// DATABASE MAPPING: videos (performer_id, event_id ON DELETE SET NULL)
type Video struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	VenueTag     VenueTag   `db:"venue_tag" json:"venue_tag"`
	Title        string     `db:"title" json:"title"`
	VideoURL     string     `db:"video_url" json:"video_url"`
	ThumbnailURL *string    `db:"thumbnail_url" json:"thumbnail_url"`
	PerformerID  *uuid.UUID `db:"performer_id" json:"performer_id"`
	EventID      *uuid.UUID `db:"event_id" json:"event_id"`
	IsFeatured   bool       `db:"is_featured" json:"is_featured"`
	DisplayOrder int        `db:"display_order" json:"display_order"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

type VideoRequest struct {
	VenueTag     VenueTag
	Title        string
	VideoURL     string
	ThumbnailURL string
	Thumbnail    *attachment.File
	PerformerID  *uuid.UUID
	EventID      *uuid.UUID
	IsFeatured   bool
	DisplayOrder int
}

func (r *VideoRequest) Validate() error {
	return firstError(
		field("title", r.Title, validation.Required, validation.Length(1, 200)),
		field("videoUrl", r.VideoURL, validation.Required, is.URL),
		field("venueTag", r.VenueTag, validation.Required, validation.In(VenueTags...)),
		field("displayOrder", r.DisplayOrder, validation.Min(0)),
	)
}

func (r *VideoRequest) ImageInput(previous *string) attachment.Input {
	return attachment.Input{
		Field:    "thumbnailUrl",
		File:     r.Thumbnail,
		URL:      r.ThumbnailURL,
		Folder:   attachment.FolderVideos,
		Previous: previous,
	}
}

func (r *VideoRequest) Row(thumbnailURL *string) keycodec.Object {
	return keycodec.Object{
		{Key: "venueTag", Value: r.VenueTag},
		{Key: "title", Value: r.Title},
		{Key: "videoUrl", Value: r.VideoURL},
		{Key: "thumbnailUrl", Value: thumbnailURL},
		{Key: "performerId", Value: r.PerformerID},
		{Key: "eventId", Value: r.EventID},
		{Key: "isFeatured", Value: r.IsFeatured},
		{Key: "displayOrder", Value: r.DisplayOrder},
	}
}

type VideoFilter struct {
	Venue        VenueTag
	PerformerID  *uuid.UUID
	FeaturedOnly bool
	Limit        int
}
