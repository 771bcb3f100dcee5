package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"venue-content-backend/internal/domains/content/attachment"
	"venue-content-backend/pkg/keycodec"
)

// DATABASE MAPPING: gallery_images (event_id ON DELETE SET NULL)
type GalleryImage struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	VenueTag     VenueTag   `db:"venue_tag" json:"venue_tag"`
	ImageURL     string     `db:"image_url" json:"image_url"`
	Caption      *string    `db:"caption" json:"caption"`
	EventID      *uuid.UUID `db:"event_id" json:"event_id"`
	Category     *string    `db:"category" json:"category"`
	IsFeatured   bool       `db:"is_featured" json:"is_featured"`
	DisplayOrder int        `db:"display_order" json:"display_order"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

type GalleryImageRequest struct {
	VenueTag     VenueTag
	ImageURL     string
	Image        *attachment.File
	Caption      *string
	EventID      *uuid.UUID
	Category     *string
	IsFeatured   bool
	DisplayOrder int
}

func (r *GalleryImageRequest) Validate() error {
	r.Caption = blankToNil(r.Caption)
	r.Category = blankToNil(r.Category)

	return firstError(
		field("venueTag", r.VenueTag, validation.Required, validation.In(VenueTags...)),
		field("category", r.Category, validation.Length(1, 50)),
		field("displayOrder", r.DisplayOrder, validation.Min(0)),
	)
}

func (r *GalleryImageRequest) ImageInput(previous *string) attachment.Input {
	return attachment.Input{
		Field:    "imageUrl",
		File:     r.Image,
		URL:      r.ImageURL,
		Folder:   attachment.FolderGallery,
		Required: true,
		Previous: previous,
	}
}

func (r *GalleryImageRequest) Row(imageURL string) keycodec.Object {
	return keycodec.Object{
		{Key: "venueTag", Value: r.VenueTag},
		{Key: "imageUrl", Value: imageURL},
		{Key: "caption", Value: r.Caption},
		{Key: "eventId", Value: r.EventID},
		{Key: "category", Value: r.Category},
		{Key: "isFeatured", Value: r.IsFeatured},
		{Key: "displayOrder", Value: r.DisplayOrder},
	}
}

type GalleryFilter struct {
	Venue        VenueTag
	Category     string
	EventID      *uuid.UUID
	FeaturedOnly bool
	Limit        int
}
