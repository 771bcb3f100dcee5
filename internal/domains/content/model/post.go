package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"venue-content-backend/internal/domains/content/attachment"
	"venue-content-backend/pkg/keycodec"
)

// DATABASE MAPPING: posts
type Post struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	VenueTag    VenueTag   `db:"venue_tag" json:"venue_tag"`
	Title       string     `db:"title" json:"title"`
	Content     string     `db:"content" json:"content"`
	Excerpt     *string    `db:"excerpt" json:"excerpt"`
	ImageURL    *string    `db:"image_url" json:"image_url"`
	IsPublished bool       `db:"is_published" json:"is_published"`
	PublishedAt *time.Time `db:"published_at" json:"published_at"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

type PostRequest struct {
	VenueTag    VenueTag
	Title       string
	Content     string
	Excerpt     *string
	ImageURL    string
	Image       *attachment.File
	IsPublished bool
}

func (r *PostRequest) Validate() error {
	r.Excerpt = blankToNil(r.Excerpt)

	return firstError(
		field("title", r.Title, validation.Required, validation.Length(1, 200)),
		field("content", r.Content, validation.Required),
		field("venueTag", r.VenueTag, validation.Required, validation.In(VenueTags...)),
		field("excerpt", r.Excerpt, validation.Length(0, 500)),
	)
}

func (r *PostRequest) ImageInput(previous *string) attachment.Input {
	return attachment.Input{
		Field:    "imageUrl",
		File:     r.Image,
		URL:      r.ImageURL,
		Folder:   attachment.FolderPosts,
		Previous: previous,
	}
}

// PublishedAt returns the publish timestamp to store. A post keeps its original
// timestamp while it stays published and loses it when unpublished.
func (r *PostRequest) PublishedAt(previous *time.Time, now time.Time) *time.Time {
	if !r.IsPublished {
		return nil
	}
	if previous != nil {
		return previous
	}
	return &now
}

func (r *PostRequest) Row(imageURL *string, publishedAt *time.Time) keycodec.Object {
	return keycodec.Object{
		{Key: "venueTag", Value: r.VenueTag},
		{Key: "title", Value: r.Title},
		{Key: "content", Value: r.Content},
		{Key: "excerpt", Value: r.Excerpt},
		{Key: "imageUrl", Value: imageURL},
		{Key: "isPublished", Value: r.IsPublished},
		{Key: "publishedAt", Value: publishedAt},
	}
}

type PostFilter struct {
	Venue         VenueTag
	PublishedOnly bool
	Limit         int
}
