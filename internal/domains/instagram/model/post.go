package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	content "venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/shared/apperror"
	"venue-content-backend/pkg/keycodec"
)

// Post is an Instagram media item mirrored into the store. InstagramID is the natural
// key; re-syncs update in place.
//
// DATABASE MAPPING: instagram_posts (UNIQUE instagram_id)
type Post struct {
	ID           uuid.UUID         `db:"id" json:"id"`
	InstagramID  string            `db:"instagram_id" json:"instagram_id"`
	ImageURL     string            `db:"image_url" json:"image_url"`
	Caption      *string           `db:"caption" json:"caption"`
	Permalink    string            `db:"permalink" json:"permalink"`
	Timestamp    time.Time         `db:"timestamp" json:"timestamp"`
	IsVisible    bool              `db:"is_visible" json:"is_visible"`
	VenueTag     *content.VenueTag `db:"venue_tag" json:"venue_tag"`
	DisplayOrder int               `db:"display_order" json:"display_order"`
	CreatedAt    time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time         `db:"updated_at" json:"updated_at"`
}

// FeedItem is a normalized upstream item, ready to be upserted.
type FeedItem struct {
	InstagramID string
	ImageURL    string
	Caption     *string
	Permalink   string
	Timestamp   time.Time
}

// Row is the insert shape of a freshly seen item. On conflict only the upstream fields
// are overwritten; visibility, venue and order stay as curated.
func (i FeedItem) Row(displayOrder int) keycodec.Object {
	return keycodec.Object{
		{Key: "instagramId", Value: i.InstagramID},
		{Key: "imageUrl", Value: i.ImageURL},
		{Key: "caption", Value: i.Caption},
		{Key: "permalink", Value: i.Permalink},
		{Key: "timestamp", Value: i.Timestamp},
		{Key: "isVisible", Value: true},
		{Key: "displayOrder", Value: displayOrder},
	}
}

// PostPatch is the curation an admin may apply to a mirrored post.
type PostPatch struct {
	IsVisible    *bool
	VenueTag     *content.VenueTag // pointer to "" clears the venue
	DisplayOrder *int
}

func (p *PostPatch) Validate() error {
	if p.IsVisible == nil && p.VenueTag == nil && p.DisplayOrder == nil {
		return apperror.InvalidField("isVisible", "nothing to update")
	}
	if p.VenueTag != nil && *p.VenueTag != "" {
		if err := validation.Validate(*p.VenueTag, validation.In(content.VenueTags...)); err != nil {
			return apperror.InvalidField("venueTag", err.Error())
		}
	}
	if p.DisplayOrder != nil && *p.DisplayOrder < 0 {
		return apperror.InvalidField("displayOrder", "must not be negative")
	}
	return nil
}

func (p *PostPatch) Row() keycodec.Object {
	row := keycodec.Object{}
	if p.IsVisible != nil {
		row = append(row, keycodec.Field{Key: "isVisible", Value: *p.IsVisible})
	}
	if p.VenueTag != nil {
		var venue *content.VenueTag
		if *p.VenueTag != "" {
			venue = p.VenueTag
		}
		row = append(row, keycodec.Field{Key: "venueTag", Value: venue})
	}
	if p.DisplayOrder != nil {
		row = append(row, keycodec.Field{Key: "displayOrder", Value: *p.DisplayOrder})
	}
	return row
}

type PostFilter struct {
	Venue       content.VenueTag // public scope; untagged posts show on every venue
	VisibleOnly bool
	Limit       int
}
